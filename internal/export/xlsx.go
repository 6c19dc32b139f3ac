package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

const statementSheet = "STATEMENT"

var statementHeaders = []string{"Project", "Type", "Amount", "Currency", "Opened"}

// WriteXLSX renders the balances and statement rows of a portfolio into an
// xlsx workbook and returns its bytes.
func WriteXLSX(p domain.Portfolio) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", statementSheet)

	balanceRows := [][]any{
		{"Balance COP", p.Balances.COP.InexactFloat64()},
		{"Balance USD", p.Balances.USD.InexactFloat64()},
		{"Balance cCOP", p.Balances.CCOP.InexactFloat64()},
		{"Balance CELO", p.Balances.CELO.InexactFloat64()},
	}
	for i, row := range balanceRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(statementSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing balance row: %w", err)
		}
	}

	headerStart := len(balanceRows) + 2
	cell, _ := excelize.CoordinatesToCellName(1, headerStart)
	headers := make([]any, len(statementHeaders))
	for i, h := range statementHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(statementSheet, cell, &headers); err != nil {
		return nil, fmt.Errorf("writing headers: %w", err)
	}

	for i, row := range BuildStatement(p) {
		values := []any{
			row.ProjectName,
			string(row.ProjectType),
			row.Amount.InexactFloat64(),
			row.CurrencyCode,
			row.CreatedAt.Format("2006-01-02"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, headerStart+1+i)
		if err := f.SetSheetRow(statementSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("writing statement row %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
