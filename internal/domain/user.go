package domain

// User is the normalized identity produced from a platform user record.
// Optional attributes are empty strings when the backend did not supply them.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	Username      string `json:"username,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	AvatarAssetID string `json:"avatarAssetId,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
	Verified      bool   `json:"verified"`
}
