package auth

import (
	"crypto/hmac"
	"fmt"
	"net/http"
)

// The header names are part of the contract with the Wusul API and are sent
// exactly as written here.
const (
	HeaderAccountID = "X-ACCT-ID"
	HeaderSignature = "X-PAYLOAD-SIG"
)

// Headers are the headers that are used to authenticate a request.
type Headers struct {
	AccountID string    `header:"X-ACCT-ID"`
	Signature Signature `header:"X-PAYLOAD-SIG"`
}

// NewHeaders builds the authentication headers for a request carrying payload.
//
// For GET requests payload is the query parameter object, for requests with a
// body it is the body, and for requests with neither it should be nil.
func NewHeaders(accountID, secret string, payload any) (*Headers, error) {
	sig, err := SignPayload(secret, payload)
	if err != nil {
		return nil, err
	}
	return &Headers{
		AccountID: accountID,
		Signature: sig,
	}, nil
}

// Apply writes the headers to h without canonicalizing their names.
func (h *Headers) Apply(header http.Header) {
	header[HeaderAccountID] = []string{h.AccountID}
	header[HeaderSignature] = []string{string(h.Signature)}
}

// Equal returns true if the headers are equal.
//
// Both fields are compared using hmac.Equal to prevent timing attacks.
func (h *Headers) Equal(other *Headers) bool {
	acctMatches := hmac.Equal([]byte(h.AccountID), []byte(other.AccountID))
	sigMatches := hmac.Equal([]byte(h.Signature), []byte(other.Signature))
	return acctMatches && sigMatches
}

// Verify checks the signature against payload using secret.
func (h *Headers) Verify(secret string, payload any) error {
	encoded, err := EncodePayload(payload)
	if err != nil {
		return err
	}
	if !Verify(secret, encoded, h.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

// HeadersFromRequest extracts the authentication headers from req.
func HeadersFromRequest(req *http.Request) (*Headers, error) {
	h := &Headers{
		AccountID: headerValue(req.Header, HeaderAccountID),
		Signature: Signature(headerValue(req.Header, HeaderSignature)),
	}

	switch {
	case h.AccountID == "":
		return nil, ErrNoAccountHeader
	case h.Signature == "":
		return nil, ErrNoSignatureHeader
	case len(h.Signature) != SignatureLength:
		return nil, fmt.Errorf("%w: expected %d hex characters", ErrInvalidSignature, SignatureLength)
	}

	return h, nil
}

// headerValue looks name up both canonically (as received off the wire)
// and verbatim (as written by Apply).
func headerValue(header http.Header, name string) string {
	if v := header.Get(name); v != "" {
		return v
	}
	if vs := header[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
