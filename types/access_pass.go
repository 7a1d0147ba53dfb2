package types

import (
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DateLayout is the layout of the start and expiration dates of a pass.
const DateLayout = "2006-01-02"

// AccessPass is a digital credential held in a mobile wallet.
type AccessPass struct {
	ID             string          `json:"id"`
	CardTemplateID string          `json:"cardTemplateId"`
	EmployeeID     string          `json:"employeeId,omitempty"`
	TagID          string          `json:"tagId,omitempty"`
	SiteCode       string          `json:"siteCode,omitempty"`
	CardNumber     string          `json:"cardNumber,omitempty"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email,omitempty"`
	PhoneNumber    string          `json:"phoneNumber,omitempty"`
	Classification Classification  `json:"classification,omitempty"`
	StartDate      string          `json:"startDate"`
	ExpirationDate string          `json:"expirationDate"`
	State          AccessPassState `json:"state"`
	URL            string          `json:"url,omitempty"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IssueAccessPassParams are the parameters for issuing a new access pass.
type IssueAccessPassParams struct {
	CardTemplateID string         `json:"cardTemplateId"`
	FullName       string         `json:"fullName"`
	StartDate      string         `json:"startDate"`
	ExpirationDate string         `json:"expirationDate"`
	EmployeeID     string         `json:"employeeId,omitempty"`
	TagID          string         `json:"tagId,omitempty"`
	SiteCode       string         `json:"siteCode,omitempty"`
	CardNumber     string         `json:"cardNumber,omitempty"`
	Email          string         `json:"email,omitempty"`
	PhoneNumber    string         `json:"phoneNumber,omitempty"`
	Classification Classification `json:"classification,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

func (p *IssueAccessPassParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.CardTemplateID, validation.Required),
		validation.Field(&p.FullName, validation.Required),
		validation.Field(&p.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&p.ExpirationDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&p.TagID, tagIDRules...),
		validation.Field(&p.SiteCode, siteCodeRules...),
		validation.Field(&p.CardNumber, cardNumberRules...),
		validation.Field(&p.Email, is.EmailFormat),
		validation.Field(&p.Classification, validation.In(classifications...)),
	)
}

// ListAccessPassesParams filter the passes returned by a list call.
// Empty strings and nil pagination fields are not sent; use [Uint32] to
// send an explicit limit or offset, including zero.
type ListAccessPassesParams struct {
	CardTemplateID string          `json:"cardTemplateId,omitempty"`
	EmployeeID     string          `json:"employeeId,omitempty"`
	State          AccessPassState `json:"state,omitempty"`
	Limit          *uint32         `json:"limit,omitempty"`
	Offset         *uint32         `json:"offset,omitempty"`
}

func (p *ListAccessPassesParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.State, validation.In(passStates...)),
	)
}

// UpdateAccessPassParams are the parameters for updating an access pass.
// AccessPassID selects the pass and is sent in the path only.
type UpdateAccessPassParams struct {
	AccessPassID   string         `json:"-"`
	FullName       string         `json:"fullName,omitempty"`
	Email          string         `json:"email,omitempty"`
	PhoneNumber    string         `json:"phoneNumber,omitempty"`
	Classification Classification `json:"classification,omitempty"`
	StartDate      string         `json:"startDate,omitempty"`
	ExpirationDate string         `json:"expirationDate,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

func (p *UpdateAccessPassParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.AccessPassID, validation.Required),
		validation.Field(&p.Email, is.EmailFormat),
		validation.Field(&p.Classification, validation.In(classifications...)),
		validation.Field(&p.StartDate, validation.Date(DateLayout)),
		validation.Field(&p.ExpirationDate, validation.Date(DateLayout)),
	)
}

var (
	tagIDRules = []validation.Rule{
		validation.Length(14, 14).Error("must be exactly 14 characters (7 bytes)"),
		is.Hexadecimal,
	}
	siteCodeRules = []validation.Rule{
		is.Digit,
		validation.By(maxNumeric(255)),
	}
	cardNumberRules = []validation.Rule{
		is.Digit,
		validation.By(maxNumeric(65535)),
	}
	digits = regexp.MustCompile(`^\d+$`)
)

// maxNumeric returns a rule that checks a numeric string does not exceed max.
func maxNumeric(max uint64) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" || !digits.MatchString(s) {
			return nil
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil || n > max {
			return validation.NewError("validation_max_numeric", "must be no greater than "+strconv.FormatUint(max, 10))
		}
		return nil
	}
}
