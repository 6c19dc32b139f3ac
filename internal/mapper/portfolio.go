package mapper

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

// Balances converts the wire balance record. Amounts are carried over
// unchanged; no rounding or unit conversion happens here.
func Balances(dto backend.BalancesDto) domain.Balances {
	return domain.Balances{
		COP:  dto.COPBalance,
		USD:  dto.USDBalance,
		CCOP: dto.CCOPBalance,
		CELO: dto.CELOBalance,
	}
}

// Position converts a single position DTO including its denormalized project
// snapshot.
func Position(dto backend.PositionDto) (domain.Position, error) {
	id, err := require("position.id", dto.ID)
	if err != nil {
		return domain.Position{}, err
	}
	projectID, err := require("position.project.id", dto.Project.ID)
	if err != nil {
		return domain.Position{}, err
	}
	createdAt, err := parseTime("position.created_at", dto.CreatedAt)
	if err != nil {
		return domain.Position{}, err
	}

	return domain.Position{
		ID: id,
		Project: domain.PositionProject{
			ID:           projectID,
			Name:         dto.Project.Name,
			Type:         domain.ProjectType(dto.Project.Type),
			CoverAssetID: lo.FromPtr(dto.Project.CoverAssetID),
		},
		Amount:       dto.Amount,
		CurrencyCode: dto.CurrencyCode,
		CreatedAt:    createdAt,
	}, nil
}

// Portfolio converts a portfolio response. An empty wire positions array maps
// to an empty, never nil, slice.
func Portfolio(dto backend.PortfolioResponseDto) (domain.Portfolio, error) {
	positions := make([]domain.Position, 0, len(dto.Positions))
	for i, p := range dto.Positions {
		pos, err := Position(p)
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("position[%d]: %w", i, err)
		}
		positions = append(positions, pos)
	}

	return domain.Portfolio{
		Balances:  Balances(dto.Balances),
		Positions: positions,
	}, nil
}

// PortfolioWire converts a domain Portfolio back into its wire shape.
func PortfolioWire(p domain.Portfolio) backend.PortfolioResponseDto {
	return backend.PortfolioResponseDto{
		Balances: backend.BalancesDto{
			COPBalance:  p.Balances.COP,
			USDBalance:  p.Balances.USD,
			CCOPBalance: p.Balances.CCOP,
			CELOBalance: p.Balances.CELO,
		},
		Positions: lo.Map(p.Positions, func(pos domain.Position, _ int) backend.PositionDto {
			dto := backend.PositionDto{
				ID: pos.ID,
				Project: backend.PositionProjectDto{
					ID:   pos.Project.ID,
					Name: pos.Project.Name,
					Type: string(pos.Project.Type),
				},
				Amount:       pos.Amount,
				CurrencyCode: pos.CurrencyCode,
				CreatedAt:    pos.CreatedAt.Format(time.RFC3339),
			}
			if pos.Project.CoverAssetID != "" {
				dto.Project.CoverAssetID = &pos.Project.CoverAssetID
			}
			return dto
		}),
	}
}
