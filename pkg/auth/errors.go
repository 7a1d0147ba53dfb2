package auth

import (
	"errors"
)

var (
	ErrNoAccountHeader      = errors.New("no account id header provided")
	ErrNoSignatureHeader    = errors.New("no payload signature header provided")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrPayloadEncoding      = errors.New("unable to encode payload")
)
