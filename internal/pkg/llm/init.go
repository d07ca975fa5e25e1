package llm

import (
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"

	"github.com/pramanandasarkar02/toolsai/internal/api/config"
)

var llmClient llms.Model

// TextSem caps concurrent completion requests.
var TextSem = semaphore.NewWeighted(4)

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("LLM client init failed", "err", err)
		return err
	}

	llmClient = llm
	return nil
}

// Enabled reports whether a client is available.
func Enabled() bool {
	return llmClient != nil
}
