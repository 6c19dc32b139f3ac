package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectType distinguishes the two investment vehicle kinds.
type ProjectType string

const (
	ProjectTypeNatillera    ProjectType = "NATILLERA"
	ProjectTypeTokenization ProjectType = "TOKENIZATION"
)

// Visibility controls who can discover a project.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// ProjectDetails is the sealed detail variant of a project. Exactly one
// concrete type exists per ProjectType, so a project can never carry both
// natillera and tokenization details at once.
type ProjectDetails interface {
	projectDetails()
}

// NatilleraDetails describes a rotating-savings vehicle.
type NatilleraDetails struct {
	QuotaAmount  decimal.Decimal `json:"quotaAmount"`
	Frequency    string          `json:"frequency"`
	MemberLimit  int             `json:"memberLimit"`
	CurrentRound int             `json:"currentRound"`
}

func (NatilleraDetails) projectDetails() {}

// TokenizationDetails describes an asset-tokenization vehicle.
type TokenizationDetails struct {
	TokenSymbol      string          `json:"tokenSymbol"`
	TokenSupply      decimal.Decimal `json:"tokenSupply"`
	TokenPrice       decimal.Decimal `json:"tokenPrice"`
	MinInvestment    decimal.Decimal `json:"minInvestment"`
	ExpectedYieldPct decimal.Decimal `json:"expectedYieldPct"`
}

func (TokenizationDetails) projectDetails() {}

// Project is a crowdfunding or tokenization offering. Details is nil when the
// backend omitted the detail block (list responses do that); when present it
// always matches Type.
type Project struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category,omitempty"`
	CoverAssetID string         `json:"coverAssetId,omitempty"`
	Type         ProjectType    `json:"type"`
	Visibility   Visibility     `json:"visibility"`
	Details      ProjectDetails `json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Natillera returns the natillera details when this is a NATILLERA project
// with a populated detail block.
func (p Project) Natillera() (NatilleraDetails, bool) {
	d, ok := p.Details.(NatilleraDetails)
	return d, ok
}

// Tokenization returns the tokenization details when this is a TOKENIZATION
// project with a populated detail block.
func (p Project) Tokenization() (TokenizationDetails, bool) {
	d, ok := p.Details.(TokenizationDetails)
	return d, ok
}

// MarshalJSON writes the detail variant under the key matching the project
// type, so serialized projects keep the one-of shape consumers expect.
func (p Project) MarshalJSON() ([]byte, error) {
	type alias Project
	out := struct {
		alias
		Natillera    *NatilleraDetails    `json:"natilleraDetails,omitempty"`
		Tokenization *TokenizationDetails `json:"tokenizationDetails,omitempty"`
	}{alias: alias(p)}

	switch d := p.Details.(type) {
	case NatilleraDetails:
		out.Natillera = &d
	case TokenizationDetails:
		out.Tokenization = &d
	}
	return json.Marshal(out)
}
