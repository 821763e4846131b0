package stream

import (
	"NopeNet/internal/model"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// InputMessage is the payload published on the input subject.
type InputMessage struct {
	Source string `json:"source"`
	Input  string `json:"input"`
}

// ResultMessage is the payload published on the result subject.
type ResultMessage struct {
	Batch           *model.DetectionBatch  `json:"batch"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// EncodeInput serializes an input batch to protobuf.
func EncodeInput(msg InputMessage) ([]byte, error) {
	return encode(msg)
}

// DecodeInput deserializes a protobuf input payload.
func DecodeInput(data []byte) (InputMessage, error) {
	var msg InputMessage
	err := decode(data, &msg)
	return msg, err
}

// EncodeResult serializes a classified batch and its recommendations to protobuf.
func EncodeResult(msg ResultMessage) ([]byte, error) {
	return encode(msg)
}

// DecodeResult deserializes a protobuf result payload.
func DecodeResult(data []byte) (ResultMessage, error) {
	var msg ResultMessage
	err := decode(data, &msg)
	return msg, err
}

// encode maps v through its JSON form into a structpb.Struct, so the wire
// fields carry the same names as the HTTP API.
func encode(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to convert payload: %w", err)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf struct: %w", err)
	}
	return proto.Marshal(s)
}

func decode(data []byte, v interface{}) error {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("failed to convert payload: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
