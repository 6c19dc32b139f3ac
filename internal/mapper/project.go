package mapper

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

// ErrDetailMismatch indicates a project DTO whose detail blocks contradict its
// type field: both blocks present, or a block that belongs to the other type.
var ErrDetailMismatch = errors.New("project detail block does not match type")

// Project converts a project DTO, collapsing the two optional detail blocks
// into the domain's tagged variant. A missing detail block maps to an absent
// variant; a default is never synthesized.
func Project(dto backend.ProjectDto) (domain.Project, error) {
	id, err := require("project.id", dto.ID)
	if err != nil {
		return domain.Project{}, err
	}
	name, err := require("project.name", dto.Name)
	if err != nil {
		return domain.Project{}, err
	}
	createdAt, err := parseTime("project.created_at", dto.CreatedAt)
	if err != nil {
		return domain.Project{}, err
	}
	updatedAt, err := parseTime("project.updated_at", dto.UpdatedAt)
	if err != nil {
		return domain.Project{}, err
	}

	projectType := domain.ProjectType(dto.Type)
	if projectType != domain.ProjectTypeNatillera && projectType != domain.ProjectTypeTokenization {
		return domain.Project{}, fmt.Errorf("project %s: unknown type %q", id, dto.Type)
	}

	details, err := projectDetails(projectType, dto)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project %s: %w", id, err)
	}

	return domain.Project{
		ID:           id,
		Name:         name,
		Description:  lo.FromPtr(dto.Description),
		Category:     lo.FromPtr(dto.Category),
		CoverAssetID: lo.FromPtr(dto.CoverAssetID),
		Type:         projectType,
		Visibility:   domain.Visibility(dto.Visibility),
		Details:      details,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func projectDetails(projectType domain.ProjectType, dto backend.ProjectDto) (domain.ProjectDetails, error) {
	if dto.NatilleraDetails != nil && dto.TokenizationDetails != nil {
		return nil, ErrDetailMismatch
	}

	switch projectType {
	case domain.ProjectTypeNatillera:
		if dto.TokenizationDetails != nil {
			return nil, ErrDetailMismatch
		}
		if dto.NatilleraDetails == nil {
			return nil, nil
		}
		d := dto.NatilleraDetails
		return domain.NatilleraDetails{
			QuotaAmount:  d.QuotaAmount,
			Frequency:    d.Frequency,
			MemberLimit:  d.MemberLimit,
			CurrentRound: d.CurrentRound,
		}, nil
	default:
		if dto.NatilleraDetails != nil {
			return nil, ErrDetailMismatch
		}
		if dto.TokenizationDetails == nil {
			return nil, nil
		}
		d := dto.TokenizationDetails
		return domain.TokenizationDetails{
			TokenSymbol:      d.TokenSymbol,
			TokenSupply:      d.TokenSupply,
			TokenPrice:       d.TokenPrice,
			MinInvestment:    d.MinInvestment,
			ExpectedYieldPct: d.ExpectedYieldPct,
		}, nil
	}
}

// Projects maps a slice of project DTOs, failing on the first malformed record.
func Projects(dtos []backend.ProjectDto) ([]domain.Project, error) {
	projects := make([]domain.Project, 0, len(dtos))
	for i, dto := range dtos {
		p, err := Project(dto)
		if err != nil {
			return nil, fmt.Errorf("project[%d]: %w", i, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// ProjectWire converts a domain Project back into its wire shape, writing the
// detail variant under the key matching the project type.
func ProjectWire(p domain.Project) backend.ProjectDto {
	dto := backend.ProjectDto{
		ID:         p.ID,
		Name:       p.Name,
		Type:       string(p.Type),
		Visibility: string(p.Visibility),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Description != "" {
		dto.Description = &p.Description
	}
	if p.Category != "" {
		dto.Category = &p.Category
	}
	if p.CoverAssetID != "" {
		dto.CoverAssetID = &p.CoverAssetID
	}

	switch d := p.Details.(type) {
	case domain.NatilleraDetails:
		dto.NatilleraDetails = &backend.NatilleraDetailsDto{
			QuotaAmount:  d.QuotaAmount,
			Frequency:    d.Frequency,
			MemberLimit:  d.MemberLimit,
			CurrentRound: d.CurrentRound,
		}
	case domain.TokenizationDetails:
		dto.TokenizationDetails = &backend.TokenizationDetailsDto{
			TokenSymbol:      d.TokenSymbol,
			TokenSupply:      d.TokenSupply,
			TokenPrice:       d.TokenPrice,
			MinInvestment:    d.MinInvestment,
			ExpectedYieldPct: d.ExpectedYieldPct,
		}
	}
	return dto
}
