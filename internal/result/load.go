package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedInput       = errors.New("malformed result input")
	ErrUnsupportedInputType = errors.New("unsupported result input type")
)

// ParsePlayerRecord accepts a JSON document (string, []byte, json.RawMessage) or an
// already decoded map.
func ParsePlayerRecord(raw any) (*PlayerRecord, error) {
	data, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	var player PlayerRecord
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return &player, nil
}

// ParseGameResult accepts the same input kinds as ParsePlayerRecord
func ParseGameResult(raw any) (*GameResult, error) {
	data, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	var game GameResult
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return &game, nil
}

// Maps go back through encoding/json so both input kinds share one decoding path
func normalize(raw any) ([]byte, error) {
	var data []byte

	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		data = encoded
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInputType, raw)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}
	if trimmed := bytes.TrimSpace(data); trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedInput)
	}
	return data, nil
}

// decodeNested replaces a JSON encoded string with its decoded value and keeps
// anything else, including undecodable strings, as it was.
func decodeNested(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return v
	}
	return decoded
}
