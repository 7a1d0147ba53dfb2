// Package params validates facade parameters before anything is signed or
// sent, reporting failures as invalid parameter errors.
package params

import (
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"go.wusul.io/sdk/pkg/apierr"
)

var errNilParams = errors.New("params must be provided")

// Validate validates p, which must not be nil.
func Validate(p validation.Validatable) error {
	if p == nil || reflect.ValueOf(p).Kind() == reflect.Pointer && reflect.ValueOf(p).IsNil() {
		return apierr.InvalidParameter(errNilParams)
	}
	if err := p.Validate(); err != nil {
		return apierr.InvalidParameter(err)
	}
	return nil
}

// ID checks that an identifier used in a request path is present.
func ID(name, value string) error {
	if err := validation.Validate(value, validation.Required); err != nil {
		return apierr.InvalidParameter(fmt.Errorf("%s: %w", name, err))
	}
	return nil
}
