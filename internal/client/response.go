package client

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"go.wusul.io/sdk/pkg/apierr"
)

// envelope is the wrapper the API puts around most successful responses.
type envelope struct {
	Success *bool               `json:"success"`
	Data    jsoniter.RawMessage `json:"data"`
}

// WholeBody is implemented by response types that describe the envelope
// itself, such as types.APIResponse. They are never unwrapped.
type WholeBody interface {
	DecodeWholeBody()
}

// handleResponse classifies a response by status code and decodes
// successful bodies into response.
func handleResponse(status int, body []byte, response any) error {
	if status < 200 || status > 299 {
		return apierr.FromStatus(status, string(body))
	}

	if response == nil || (status == http.StatusNoContent && len(body) == 0) {
		return nil
	}
	if err := decode(body, response); err != nil {
		return apierr.Serialization(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// decode unmarshals body into response, unwrapping the data field when the
// body is an envelope. Anything else, and any WholeBody response, is decoded
// as-is.
func decode(body []byte, response any) error {
	if _, ok := response.(WholeBody); ok {
		return json.Unmarshal(body, response)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Success != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		body = env.Data
	}
	return json.Unmarshal(body, response)
}
