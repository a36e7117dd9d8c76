package youtrack

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// marshalTyped encodes v and reinserts the $type discriminator so the server
// can identify the variant on receipt. v must encode to a JSON object.
func marshalTyped(typeName string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, &MalformedPayloadError{Detail: typeName + ": entity did not encode to an object"}
	}

	out := make([]byte, 0, len(body)+len(typeName)+12)
	out = append(out, `{"$type":`...)
	out = strconv.AppendQuote(out, typeName)
	if len(body) == 2 { // "{}"
		return append(out, '}'), nil
	}
	out = append(out, ',')
	return append(out, body[1:]...), nil
}

// peekType extracts the $type discriminator from a payload without decoding
// the rest of it.
func peekType(data []byte) (string, error) {
	var envelope struct {
		Type string `json:"$type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", codecError(err)
	}
	return envelope.Type, nil
}

// decodeVariant dispatches a discriminated payload through the union's
// constructor table. Payloads without a recognized discriminator fail with
// UnknownVariantError; non-object payloads fail with MalformedPayloadError.
func decodeVariant[T any](data []byte, union string, table map[string]func() T) (T, error) {
	var zero T

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return zero, &MalformedPayloadError{Detail: union + ": expected a JSON object"}
	}

	disc, err := peekType(data)
	if err != nil {
		return zero, err
	}
	ctor, ok := table[disc]
	if !ok {
		return zero, &UnknownVariantError{Union: union, Discriminator: disc}
	}

	v := ctor()
	if err := json.Unmarshal(data, v); err != nil {
		return zero, codecError(err)
	}
	return v, nil
}

// decodeVariantList decodes a JSON array of discriminated payloads.
func decodeVariantList[T any](data []byte, union string, table map[string]func() T) ([]T, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, codecError(err)
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decodeVariant(raw, union, table)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
