package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"GPT Helper v2":    "gpt-helper-v2",
		"  Vision / OCR  ": "vision-ocr",
		"already-slugged":  "already-slugged",
		"---":              "",
		"中文名称":             "",
		"A--B":             "a-b",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestRoundHalfUp2(t *testing.T) {
	assert.Equal(t, 4.33, RoundHalfUp2(13.0/3.0))
	assert.Equal(t, 4.67, RoundHalfUp2(14.0/3.0))
	assert.Equal(t, 4.5, RoundHalfUp2(4.5))
	assert.Equal(t, 0.0, RoundHalfUp2(0))
}

func TestStrSliceToUint64Slice(t *testing.T) {
	out, err := StrSliceToUint64Slice([]string{"1", "42", "9000"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 42, 9000}, out)

	_, err = StrSliceToUint64Slice([]string{"1", "nope"})
	assert.Error(t, err)
}

func TestNormalizePage(t *testing.T) {
	page, size := NormalizePage(0, 0, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = NormalizePage(3, 500, 100)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, size)

	page, size = NormalizePage(-2, 10, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)
}
