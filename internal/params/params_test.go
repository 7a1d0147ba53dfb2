package params

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"go.wusul.io/sdk/pkg/apierr"
	"go.wusul.io/sdk/types"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	var nilParams *types.IssueAccessPassParams
	c.Assert(Validate(nilParams), qt.ErrorIs, apierr.ErrInvalidParameter)
	c.Assert(Validate(nil), qt.ErrorIs, apierr.ErrInvalidParameter)

	err := Validate(&types.IssueAccessPassParams{FullName: "John Doe"})
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)
	c.Assert(err, qt.ErrorMatches, ".*cardTemplateId: cannot be blank.*")

	c.Assert(Validate(&types.ListAccessPassesParams{}), qt.IsNil)
}

func TestID(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	err := ID("access pass id", "")
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)
	c.Assert(err.Error(), qt.Equals, "invalid parameter: access pass id: cannot be blank")
	c.Assert(errors.Is(err, apierr.ErrNotFound), qt.IsFalse)

	c.Assert(ID("access pass id", "ap_1"), qt.IsNil)
}
