package mapper

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

// User converts a user DTO into a domain User. The legacy "displayName" key
// takes precedence over "display_name" when both are present.
func User(dto backend.UserDto) (domain.User, error) {
	id, err := require("user.id", dto.ID)
	if err != nil {
		return domain.User{}, err
	}

	displayName := lo.FromPtr(dto.LegacyDisplayName)
	if displayName == "" {
		displayName = lo.FromPtr(dto.DisplayName)
	}

	return domain.User{
		ID:            id,
		Email:         lo.FromPtr(dto.Email),
		Username:      lo.FromPtr(dto.Username),
		DisplayName:   displayName,
		AvatarURL:     lo.FromPtr(dto.AvatarURL),
		AvatarAssetID: lo.FromPtr(dto.AvatarAssetID),
		WalletAddress: lo.FromPtr(dto.WalletAddress),
		Verified:      dto.Verified,
	}, nil
}

// UserWire converts a domain User back into its wire shape. The display name
// is written under the current snake_case key only.
func UserWire(u domain.User) backend.UserDto {
	dto := backend.UserDto{
		ID:       u.ID,
		Verified: u.Verified,
	}
	if u.Email != "" {
		dto.Email = &u.Email
	}
	if u.Username != "" {
		dto.Username = &u.Username
	}
	if u.DisplayName != "" {
		dto.DisplayName = &u.DisplayName
	}
	if u.AvatarURL != "" {
		dto.AvatarURL = &u.AvatarURL
	}
	if u.AvatarAssetID != "" {
		dto.AvatarAssetID = &u.AvatarAssetID
	}
	if u.WalletAddress != "" {
		dto.WalletAddress = &u.WalletAddress
	}
	return dto
}

// Users maps a slice of user DTOs, failing on the first malformed record.
func Users(dtos []backend.UserDto) ([]domain.User, error) {
	users := make([]domain.User, 0, len(dtos))
	for i, dto := range dtos {
		u, err := User(dto)
		if err != nil {
			return nil, fmt.Errorf("user[%d]: %w", i, err)
		}
		users = append(users, u)
	}
	return users, nil
}
