package backend

import (
	"context"
	"fmt"
	"net/http"
)

// FetchPortfolio retrieves the authenticated user's portfolio with balances
// and positions.
func (c *Client) FetchPortfolio(ctx context.Context, token string) (PortfolioResponseDto, error) {
	var portfolio PortfolioResponseDto
	if err := c.doJSON(ctx, http.MethodGet, "/api/portfolio", token, nil, &portfolio); err != nil {
		return PortfolioResponseDto{}, fmt.Errorf("fetching portfolio: %w", err)
	}
	return portfolio, nil
}
