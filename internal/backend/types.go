package backend

import "github.com/shopspring/decimal"

// Wire DTO shapes are bit-exact contracts with the platform backend. Field
// names and nesting must be preserved verbatim; renaming happens only in the
// domain mapping layer.

// UserDto represents a user record as sent by the platform API. The display
// name historically appeared under the camel-case key "displayName"; current
// responses use "display_name". Both are kept, legacy first.
type UserDto struct {
	ID                string  `json:"id"`
	Email             *string `json:"email,omitempty"`
	Username          *string `json:"username,omitempty"`
	LegacyDisplayName *string `json:"displayName,omitempty"`
	DisplayName       *string `json:"display_name,omitempty"`
	AvatarURL         *string `json:"avatar_url,omitempty"`
	AvatarAssetID     *string `json:"avatar_asset_id,omitempty"`
	WalletAddress     *string `json:"wallet_address,omitempty"`
	Verified          bool    `json:"verified"`
}

// BalancesDto carries the four portfolio balance fields.
type BalancesDto struct {
	COPBalance  decimal.Decimal `json:"cop_balance"`
	USDBalance  decimal.Decimal `json:"usd_balance"`
	CCOPBalance decimal.Decimal `json:"ccop_balance"`
	CELOBalance decimal.Decimal `json:"celo_balance"`
}

// PositionProjectDto is the denormalized project snapshot inside a position.
type PositionProjectDto struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	CoverAssetID *string `json:"cover_asset_id,omitempty"`
}

// PositionDto represents a single investment position.
type PositionDto struct {
	ID           string             `json:"id"`
	Project      PositionProjectDto `json:"project"`
	Amount       decimal.Decimal    `json:"amount"`
	CurrencyCode string             `json:"currency_code"`
	CreatedAt    string             `json:"created_at"`
}

// PortfolioResponseDto represents the response of GET /portfolio.
type PortfolioResponseDto struct {
	Balances  BalancesDto   `json:"balances"`
	Positions []PositionDto `json:"positions"`
}

// NatilleraDetailsDto is the detail block of a NATILLERA project.
type NatilleraDetailsDto struct {
	QuotaAmount  decimal.Decimal `json:"quota_amount"`
	Frequency    string          `json:"frequency"`
	MemberLimit  int             `json:"member_limit"`
	CurrentRound int             `json:"current_round"`
}

// TokenizationDetailsDto is the detail block of a TOKENIZATION project.
type TokenizationDetailsDto struct {
	TokenSymbol      string          `json:"token_symbol"`
	TokenSupply      decimal.Decimal `json:"token_supply"`
	TokenPrice       decimal.Decimal `json:"token_price"`
	MinInvestment    decimal.Decimal `json:"min_investment"`
	ExpectedYieldPct decimal.Decimal `json:"expected_yield_pct"`
}

// ProjectDto represents a project record. At most one of the two detail
// blocks is present, matching the type field.
type ProjectDto struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Description         *string                 `json:"description,omitempty"`
	Category            *string                 `json:"category,omitempty"`
	CoverAssetID        *string                 `json:"cover_asset_id,omitempty"`
	Type                string                  `json:"type"`
	Visibility          string                  `json:"visibility"`
	NatilleraDetails    *NatilleraDetailsDto    `json:"natillera_details,omitempty"`
	TokenizationDetails *TokenizationDetailsDto `json:"tokenization_details,omitempty"`
	CreatedAt           string                  `json:"created_at"`
	UpdatedAt           string                  `json:"updated_at"`
}

// AttachmentDto represents a message attachment.
type AttachmentDto struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

// MessageResponseDto represents a chat message with its embedded sender.
type MessageResponseDto struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Sender         UserDto         `json:"sender"`
	Body           string          `json:"body"`
	Attachments    []AttachmentDto `json:"attachments,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// ConversationResponseDto represents a conversation with members and the most
// recent message.
type ConversationResponseDto struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Name        *string             `json:"name,omitempty"`
	Members     []UserDto           `json:"members"`
	LastMessage *MessageResponseDto `json:"last_message,omitempty"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// UpdateProfileRequestDto is the PATCH /users/me request body. Nil fields are
// left untouched by the backend.
type UpdateProfileRequestDto struct {
	Username      *string `json:"username,omitempty"`
	DisplayName   *string `json:"display_name,omitempty"`
	AvatarAssetID *string `json:"avatar_asset_id,omitempty"`
}

// SendMessageRequestDto is the POST message request body. ClientRef lets the
// backend deduplicate retried sends.
type SendMessageRequestDto struct {
	Body          string   `json:"body"`
	ClientRef     string   `json:"client_ref"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
}
