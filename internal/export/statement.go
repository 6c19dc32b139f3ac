// Package export renders a portfolio into a downloadable xlsx statement.
package export

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

// StatementRow is one position line of a portfolio statement.
type StatementRow struct {
	ProjectName  string
	ProjectType  domain.ProjectType
	Amount       decimal.Decimal
	CurrencyCode string
	CreatedAt    time.Time
}

// BuildStatement flattens a portfolio's positions into statement rows in the
// order the backend returned them.
func BuildStatement(p domain.Portfolio) []StatementRow {
	return lo.Map(p.Positions, func(pos domain.Position, _ int) StatementRow {
		return StatementRow{
			ProjectName:  pos.Project.Name,
			ProjectType:  pos.Project.Type,
			Amount:       pos.Amount,
			CurrencyCode: pos.CurrencyCode,
			CreatedAt:    pos.CreatedAt,
		}
	})
}
