// Package profile decides whether a user profile still carries the
// placeholder identity assigned at first wallet login. Completeness is a
// derived property, never stored.
package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
)

const (
	// placeholderEmailDomain is the reserved domain the wallet-auth bridge
	// substitutes when a wallet account has no real email yet.
	placeholderEmailDomain = "@wallet-temp.invierte.co"

	// placeholderUsernamePrefix starts every auto-generated username.
	placeholderUsernamePrefix = "user_"

	// placeholderDisplayPrefix starts every auto-generated display name,
	// followed by the wallet address.
	placeholderDisplayPrefix = "Wallet "
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// IsComplete reports whether the user has replaced all placeholder identity
// fields with real values. A nil user is never complete.
func IsComplete(u *backend.UserDto) bool {
	if u == nil {
		return false
	}

	email := lo.FromPtr(u.Email)
	if email == "" || strings.Contains(email, placeholderEmailDomain) {
		return false
	}

	username := lo.FromPtr(u.Username)
	if username == "" || strings.HasPrefix(username, placeholderUsernamePrefix) {
		return false
	}

	displayName := displayNameOf(u)
	if displayName == "" || strings.HasPrefix(displayName, placeholderDisplayPrefix) {
		return false
	}

	return true
}

// IsValidUsername reports whether s is a well-formed username: 3 to 20
// characters, alphanumeric and underscore only.
func IsValidUsername(s string) bool {
	return usernameRe.MatchString(s)
}

// IsValidDisplayName reports whether s, after trimming, is 2 to 50 characters.
func IsValidDisplayName(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= 2 && n <= 50
}

// displayNameOf resolves the two historical display-name spellings. The
// legacy camel-case key wins when both are present.
func displayNameOf(u *backend.UserDto) string {
	if name := lo.FromPtr(u.LegacyDisplayName); name != "" {
		return name
	}
	return lo.FromPtr(u.DisplayName)
}
