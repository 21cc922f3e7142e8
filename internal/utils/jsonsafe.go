package utils

import (
	"encoding/json"

	"aideal-backend/pkg/logger"

	"go.uber.org/zap"
)

// ParseJSONSlice decodes a JSON array stored as text. Empty or malformed
// input returns the caller-supplied fallback instead of an error, so one bad
// row never fails a whole request.
func ParseJSONSlice(raw string, fallback []string) []string {
	if raw == "" {
		return fallback
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fallback
	}
	if out == nil {
		return fallback
	}
	return out
}

// MarshalJSONOrDefault encodes v for storage in a text column. Encoding
// failures are logged and replaced with "{}" rather than propagated.
func MarshalJSONOrDefault(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Warn("failed to serialize payload field, storing default",
			zap.Error(err),
		)
		return "{}"
	}
	return string(data)
}
