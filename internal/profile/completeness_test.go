package profile

import (
	"strings"
	"testing"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
)

func strPtr(s string) *string { return &s }

func completeUser() *backend.UserDto {
	return &backend.UserDto{
		ID:          "u1",
		Email:       strPtr("a@b.com"),
		Username:    strPtr("trader1"),
		DisplayName: strPtr("Ana Gomez"),
	}
}

func TestIsCompleteNilUser(t *testing.T) {
	if IsComplete(nil) {
		t.Error("IsComplete(nil) = true, want false")
	}
}

func TestIsCompleteWellFormedUser(t *testing.T) {
	if !IsComplete(completeUser()) {
		t.Error("IsComplete = false for a well-formed user")
	}
}

func TestIsCompleteMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *backend.UserDto)
	}{
		{"no email", func(u *backend.UserDto) { u.Email = nil }},
		{"no username", func(u *backend.UserDto) { u.Username = nil }},
		{"no display name", func(u *backend.UserDto) { u.DisplayName = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := completeUser()
			tt.mutate(u)
			if IsComplete(u) {
				t.Error("IsComplete = true, want false")
			}
		})
	}
}

func TestIsCompletePlaceholderFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *backend.UserDto)
	}{
		{"temp email domain", func(u *backend.UserDto) { u.Email = strPtr("0xabc@wallet-temp.invierte.co") }},
		{"generated username", func(u *backend.UserDto) { u.Username = strPtr("user_8f2a91") }},
		{"generated display name", func(u *backend.UserDto) { u.DisplayName = strPtr("Wallet 0x8f2a91cc") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := completeUser()
			tt.mutate(u)
			if IsComplete(u) {
				t.Error("IsComplete = true, want false")
			}
		})
	}
}

func TestIsCompleteLegacyDisplayNameChecked(t *testing.T) {
	u := completeUser()
	u.DisplayName = strPtr("Ana Gomez")
	u.LegacyDisplayName = strPtr("Wallet 0x8f2a91cc")

	// Legacy key wins, so the placeholder there makes the profile incomplete.
	if IsComplete(u) {
		t.Error("IsComplete = true, want false when the legacy key holds a placeholder")
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ab_12", true},
		{"abc", true},
		{strings.Repeat("a", 20), true},
		{"Trader_99", true},
		{"ab", false},
		{strings.Repeat("a", 21), false},
		{"has space", false},
		{"has-hyphen", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidUsername(tt.input); got != tt.want {
				t.Errorf("IsValidUsername(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"two chars", "Jo", true},
		{"fifty chars", strings.Repeat("a", 50), true},
		{"single char", "J", false},
		{"fifty-one chars", strings.Repeat("a", 51), false},
		{"whitespace padded valid", "  Ana Gomez  ", true},
		{"whitespace only", "   ", false},
		{"padding around one char", "  J  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDisplayName(tt.input); got != tt.want {
				t.Errorf("IsValidDisplayName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
