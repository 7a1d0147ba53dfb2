package wusul

import "go.wusul.io/sdk/pkg/apierr"

// Error is the error type returned by every SDK operation.
// Use errors.Is with the sentinels below to check what went wrong:
//
//	if errors.Is(err, wusul.ErrNotFound) {
//		...
//	}
type Error = apierr.Error

var (
	ErrTransport        = apierr.ErrTransport
	ErrAPI              = apierr.ErrAPI
	ErrSerialization    = apierr.ErrSerialization
	ErrConfig           = apierr.ErrConfig
	ErrAuthentication   = apierr.ErrAuthentication
	ErrInvalidParameter = apierr.ErrInvalidParameter
	ErrNotFound         = apierr.ErrNotFound
	ErrRateLimited      = apierr.ErrRateLimited
	ErrTimeout          = apierr.ErrTimeout
)
