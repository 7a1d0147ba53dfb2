package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the signature of encoded using the shared secret.
//
// The digest is taken over the secret immediately followed by the encoded
// payload, with no separator.
func Sign(secret string, encoded EncodedPayload) Signature {
	h := sha256.New()
	_, _ = h.Write([]byte(secret))
	_, _ = h.Write([]byte(encoded))
	return Signature(hex.EncodeToString(h.Sum(nil)))
}

// Verify reports whether signature is the signature of encoded under secret.
func Verify(secret string, encoded EncodedPayload, signature Signature) bool {
	expected := Sign(secret, encoded)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignPayload encodes payload and signs it.
func SignPayload(secret string, payload any) (Signature, error) {
	encoded, err := EncodePayload(payload)
	if err != nil {
		return "", err
	}
	return Sign(secret, encoded), nil
}
