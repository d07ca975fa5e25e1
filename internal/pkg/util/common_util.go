package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses every non-alphanumeric run to a dash.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// RoundHalfUp2 rounds to two decimal places, half away from zero.
func RoundHalfUp2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StrSliceToUint64Slice converts redis set members back to ids.
func StrSliceToUint64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// NormalizePage clamps page/pageSize to sane bounds.
func NormalizePage(page, pageSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

// PtrStr converts a string to *string.
func PtrStr(s string) *string {
	return &s
}

// PtrFloat64 converts a float64 to *float64.
func PtrFloat64(f float64) *float64 {
	return &f
}

// PtrInt converts an int to *int.
func PtrInt(i int) *int {
	return &i
}
