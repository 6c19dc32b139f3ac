package backend

import (
	"context"
	"fmt"
	"net/http"
)

// FetchMe retrieves the authenticated user's profile.
func (c *Client) FetchMe(ctx context.Context, token string) (UserDto, error) {
	var user UserDto
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", token, nil, &user); err != nil {
		return UserDto{}, fmt.Errorf("fetching profile: %w", err)
	}
	return user, nil
}

// UpdateProfile patches the authenticated user's profile and returns the
// updated record.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequestDto) (UserDto, error) {
	var user UserDto
	if err := c.doJSON(ctx, http.MethodPatch, "/api/users/me", token, req, &user); err != nil {
		return UserDto{}, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}
