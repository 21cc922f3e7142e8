package utils

import (
	"math"
	"testing"

	"aideal-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseJSONSliceFallback(t *testing.T) {
	fallback := []string{"default"}

	assert.Equal(t, fallback, ParseJSONSlice("", fallback))
	assert.Equal(t, fallback, ParseJSONSlice("not json at all", fallback))
	assert.Equal(t, fallback, ParseJSONSlice("{\"a\":1}", fallback))
	assert.Equal(t, fallback, ParseJSONSlice("null", fallback))
}

func TestParseJSONSliceValid(t *testing.T) {
	got := ParseJSONSlice(`["ChatGPT","Notion"]`, nil)
	assert.Equal(t, []string{"ChatGPT", "Notion"}, got)

	// An empty fallback works too.
	got = ParseJSONSlice("garbage", []string{})
	assert.Equal(t, []string{}, got)
}

func TestMarshalJSONOrDefault(t *testing.T) {
	logger.Log = zap.NewNop()

	assert.Equal(t, `["a","b"]`, MarshalJSONOrDefault([]string{"a", "b"}))

	// Unserializable input degrades to the fixed default instead of failing.
	assert.Equal(t, "{}", MarshalJSONOrDefault(math.Inf(1)))
	assert.Equal(t, "{}", MarshalJSONOrDefault(func() {}))
}
