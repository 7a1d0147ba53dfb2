package types

// APIResponse is returned by operations that have no record to return.
// It holds the whole response body: the success flag, an optional message
// and whatever data the API reported about the change.
type APIResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// DecodeWholeBody marks APIResponse as decoded from the full response
// rather than from the data field of its envelope.
func (*APIResponse) DecodeWholeBody() {}

// Health is the status document returned by the health endpoint.
type Health map[string]any

// Uint32 returns a pointer to v, for the optional pagination fields.
func Uint32(v uint32) *uint32 {
	return &v
}
