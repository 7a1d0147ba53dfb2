package auth

// Payload is implemented by values that know their own canonical JSON form.
//
// When a Payload is passed to [EncodePayload] or [NewHeaders] its bytes are
// signed as-is instead of being run through the JSON encoder.
type Payload interface {
	// DeterministicBytes returns a deterministic byte slice that represents the payload.
	DeterministicBytes() []byte
}

// BytesPayload is a payload that is represented by a byte slice
// of already encoded JSON.
type BytesPayload []byte

func (b BytesPayload) DeterministicBytes() []byte {
	if len(b) == 0 {
		return emptyObject
	}
	return b
}

// EncodedPayload is the base64 (standard alphabet, padded) form of the
// canonical JSON serialization of a payload.
type EncodedPayload string

// Signature is the lowercase hex encoded SHA-256 digest of the shared secret
// followed by an [EncodedPayload].
type Signature string

// SignatureLength is the length in characters of every [Signature].
const SignatureLength = 64
