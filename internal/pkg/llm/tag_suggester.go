package llm

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

var ErrNotEnabled = errors.New("llm client is not enabled")

const tagSuggestPrompt = `You label AI models in a catalog. Given a model name and description,
reply with 3 to 6 short lowercase tags, comma separated, nothing else.
Example reply: nlp, text-generation, transformer`

// SuggestTags asks the model for candidate tags. The reply is parsed as
// a comma separated list; empty or oversized entries are dropped.
func SuggestTags(ctx context.Context, modelName, description string) ([]string, error) {
	if llmClient == nil {
		return nil, ErrNotEnabled
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(tagSuggestPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart("Name: " + modelName + "\nDescription: " + description),
			},
		},
	}

	resp, err := llmClient.GenerateContent(ctx, messages, llms.WithTemperature(0.2))
	if err != nil {
		log.ErrorContext(ctx, "tag suggestion request failed", "err", err)
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion")
	}

	return parseTagList(resp.Choices[0].Content), nil
}

func parseTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.ToLower(strings.TrimSpace(p))
		tag = strings.Trim(tag, ".\"'`")
		if tag == "" || len(tag) > 50 {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
