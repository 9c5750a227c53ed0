package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a builder for serialised report payloads
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes v to JSON
func (rb *responseBuilder) BuildJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
