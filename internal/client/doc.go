// Package client provides the signed HTTP transport shared by every Wusul
// resource. It authenticates requests, sends them and classifies responses
// into typed results or [apierr.Error] values.
package client
