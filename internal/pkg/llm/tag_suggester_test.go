package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagList(t *testing.T) {
	assert.Equal(t,
		[]string{"nlp", "chatbot", "text generation"},
		parseTagList(`NLP, "chatbot", text generation.`))

	assert.Equal(t, []string{"vision"}, parseTagList("  Vision  "))

	// Blank segments and oversized tags are dropped.
	long := strings.Repeat("x", 51)
	assert.Empty(t, parseTagList(" , ,, "+long))
}
