package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CardTemplateDesign is the visual design of a card template.
type CardTemplateDesign struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	ForegroundColor string `json:"foregroundColor,omitempty"`
	LabelColor      string `json:"labelColor,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`
	HeroImageURL    string `json:"heroImageUrl,omitempty"`
	StripImageURL   string `json:"stripImageUrl,omitempty"`
}

func (d CardTemplateDesign) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.LogoURL, is.URL),
		validation.Field(&d.HeroImageURL, is.URL),
		validation.Field(&d.StripImageURL, is.URL),
	)
}

// SupportInfo is the support contact shown on passes issued from a template.
type SupportInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

func (s SupportInfo) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, is.EmailFormat),
		validation.Field(&s.Website, is.URL),
	)
}

// CardTemplate is the blueprint access passes are issued from.
type CardTemplate struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Platform    Platform            `json:"platform"`
	UseCase     UseCase             `json:"useCase"`
	Protocol    Protocol            `json:"protocol"`
	Design      *CardTemplateDesign `json:"design,omitempty"`
	SupportInfo *SupportInfo        `json:"supportInfo,omitempty"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// CreateCardTemplateParams are the parameters for creating a card template.
type CreateCardTemplateParams struct {
	Name        string              `json:"name"`
	Platform    Platform            `json:"platform"`
	UseCase     UseCase             `json:"useCase"`
	Protocol    Protocol            `json:"protocol"`
	Design      *CardTemplateDesign `json:"design,omitempty"`
	SupportInfo *SupportInfo        `json:"supportInfo,omitempty"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
}

func (p *CreateCardTemplateParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Platform, validation.Required, validation.In(platforms...)),
		validation.Field(&p.UseCase, validation.Required, validation.In(useCases...)),
		validation.Field(&p.Protocol, validation.Required, validation.In(protocols...)),
		validation.Field(&p.Design),
		validation.Field(&p.SupportInfo),
	)
}

// UpdateCardTemplateParams are the parameters for updating a card template.
// CardTemplateID selects the template and is sent in the path only.
type UpdateCardTemplateParams struct {
	CardTemplateID string              `json:"-"`
	Name           string              `json:"name,omitempty"`
	Design         *CardTemplateDesign `json:"design,omitempty"`
	SupportInfo    *SupportInfo        `json:"supportInfo,omitempty"`
	Metadata       map[string]any      `json:"metadata,omitempty"`
}

func (p *UpdateCardTemplateParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.CardTemplateID, validation.Required),
		validation.Field(&p.Design),
		validation.Field(&p.SupportInfo),
	)
}
