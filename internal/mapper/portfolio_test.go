package mapper

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

func TestPortfolioMapsBalancesByName(t *testing.T) {
	dto := backend.PortfolioResponseDto{
		Balances: backend.BalancesDto{
			COPBalance:  decimal.NewFromInt(150000),
			USDBalance:  decimal.NewFromFloat(37.5),
			CCOPBalance: decimal.NewFromInt(120000),
			CELOBalance: decimal.NewFromFloat(12.25),
		},
		Positions: []backend.PositionDto{},
	}

	p, err := Portfolio(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.Balances.COP.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("COP = %s, want 150000", p.Balances.COP)
	}
	if !p.Balances.USD.Equal(decimal.NewFromFloat(37.5)) {
		t.Errorf("USD = %s, want 37.5", p.Balances.USD)
	}
	if !p.Balances.CCOP.Equal(decimal.NewFromInt(120000)) {
		t.Errorf("CCOP = %s, want 120000", p.Balances.CCOP)
	}
	if !p.Balances.CELO.Equal(decimal.NewFromFloat(12.25)) {
		t.Errorf("CELO = %s, want 12.25", p.Balances.CELO)
	}
}

func TestPortfolioEmptyPositionsIsEmptySlice(t *testing.T) {
	p, err := Portfolio(backend.PortfolioResponseDto{Positions: []backend.PositionDto{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Positions == nil {
		t.Fatal("Positions is nil, want empty slice")
	}
	if len(p.Positions) != 0 {
		t.Errorf("len(Positions) = %d, want 0", len(p.Positions))
	}
}

func TestPortfolioNilPositionsIsEmptySlice(t *testing.T) {
	p, err := Portfolio(backend.PortfolioResponseDto{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Positions == nil {
		t.Fatal("Positions is nil, want empty slice")
	}
}

func TestPositionMapsProjectSnapshot(t *testing.T) {
	dto := backend.PositionDto{
		ID: "pos1",
		Project: backend.PositionProjectDto{
			ID:           "p1",
			Name:         "Natillera Cafetera",
			Type:         "NATILLERA",
			CoverAssetID: strPtr("cover-1"),
		},
		Amount:       decimal.NewFromInt(50000),
		CurrencyCode: "COP",
		CreatedAt:    "2025-03-15T09:30:00Z",
	}

	pos, err := Position(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Project.ID != "p1" || pos.Project.Type != domain.ProjectTypeNatillera {
		t.Errorf("project snapshot = %+v", pos.Project)
	}
	if !pos.Amount.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Amount = %s, want 50000 unchanged", pos.Amount)
	}
	if pos.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestPositionMissingIDFails(t *testing.T) {
	_, err := Position(backend.PositionDto{
		Project:   backend.PositionProjectDto{ID: "p1"},
		CreatedAt: "2025-03-15T09:30:00Z",
	})
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}

func TestPositionBadTimestampFails(t *testing.T) {
	_, err := Position(backend.PositionDto{
		ID:        "pos1",
		Project:   backend.PositionProjectDto{ID: "p1"},
		CreatedAt: "15/03/2025",
	})
	if err == nil {
		t.Fatal("expected error for malformed created_at")
	}
}

func TestPortfolioWireRoundTrip(t *testing.T) {
	dto := backend.PortfolioResponseDto{
		Balances: backend.BalancesDto{COPBalance: decimal.NewFromInt(1000)},
		Positions: []backend.PositionDto{{
			ID:           "pos1",
			Project:      backend.PositionProjectDto{ID: "p1", Name: "X", Type: "TOKENIZATION"},
			Amount:       decimal.NewFromInt(10),
			CurrencyCode: "USD",
			CreatedAt:    "2025-03-15T09:30:00Z",
		}},
	}

	p, err := Portfolio(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := PortfolioWire(p)
	if !back.Balances.COPBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("cop_balance = %s, want 1000", back.Balances.COPBalance)
	}
	if len(back.Positions) != 1 || back.Positions[0].ID != "pos1" {
		t.Errorf("positions = %+v", back.Positions)
	}
	if back.Positions[0].CreatedAt != "2025-03-15T09:30:00Z" {
		t.Errorf("created_at = %q, want 2025-03-15T09:30:00Z", back.Positions[0].CreatedAt)
	}
}
