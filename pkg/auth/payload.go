package auth

import (
	"encoding/base64"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// json sorts map keys, so equal maps always serialize to identical bytes.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

var emptyObject = []byte("{}")

// CanonicalJSON returns the JSON bytes that are signed for payload.
//
// A nil payload (including a typed nil pointer or map) is treated as the empty
// object. Values implementing [Payload] provide their own bytes.
func CanonicalJSON(payload any) ([]byte, error) {
	if isNil(payload) {
		return emptyObject, nil
	}
	if p, ok := payload.(Payload); ok {
		return p.DeterministicBytes(), nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadEncoding, err)
	}
	return b, nil
}

// EncodePayload serializes payload to canonical JSON and encodes it
// using standard base64.
func EncodePayload(payload any) (EncodedPayload, error) {
	b, err := CanonicalJSON(payload)
	if err != nil {
		return "", err
	}
	return EncodedPayload(base64.StdEncoding.EncodeToString(b)), nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
