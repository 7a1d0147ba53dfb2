// Package types contains the records exchanged with the Wusul API and the
// parameters accepted by the resource clients.
//
// Parameter types implement Validate, which is called before any request is
// signed or sent.
package types
