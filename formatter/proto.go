package formatter

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoContentType is the media type of BuildProto output.
const ProtoContentType = "application/x-protobuf"

// ToStruct converts v into a google.protobuf.Struct using its JSON field names.
func ToStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	return structpb.NewStruct(m)
}

// BuildProto serializes v as a binary google.protobuf.Struct
func (rb *responseBuilder) BuildProto(v any) ([]byte, error) {
	s, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}
