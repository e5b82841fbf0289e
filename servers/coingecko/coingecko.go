// Package coingecko simulates a CoinGecko MCP server. coins_markets returns market
// rows in the upstream snake_case shape, rebuilt generically from the flat payload.
package coingecko

import (
	"context"
	"fmt"

	"mockmcp"
	"mockmcp/mockapi"
)

var supportedCurrencies = map[string]bool{
	"usd": true, "eur": true, "gbp": true, "jpy": true, "btc": true, "eth": true,
}

// MarketsArgs are the inputs for coins_markets.
type MarketsArgs struct {
	VsCurrency string `json:"vs_currency" jsonschema:"required" description:"Target currency of market data" enum:"usd,eur,gbp,jpy,btc,eth"`
	IDs        string `json:"ids,omitempty" description:"Comma-separated coin ids to filter by"`
	Order      string `json:"order,omitempty" description:"Sort order" enum:"market_cap_desc,market_cap_asc,volume_desc,volume_asc"`
	Page       int    `json:"page,omitempty" description:"Page number, starting at 1"`
	PerPage    int    `json:"per_page,omitempty" description:"Results per page, 1-250"`
	Sparkline  bool   `json:"sparkline,omitempty" description:"Include sparkline data"`
}

// Validate enforces currency support and pagination bounds.
func (a MarketsArgs) Validate() error {
	if !supportedCurrencies[a.VsCurrency] {
		return fmt.Errorf("vs_currency %q is not supported", a.VsCurrency)
	}
	if a.Page < 0 {
		return fmt.Errorf("page must be positive, got %d", a.Page)
	}
	if a.PerPage < 0 || a.PerPage > 250 {
		return fmt.Errorf("per_page must be between 1 and 250, got %d", a.PerPage)
	}
	return nil
}

// MarketsResult is the documented response: the market rows plus echoed paging info.
type MarketsResult struct {
	VsCurrency string           `json:"vs_currency"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	Coins      []map[string]any `json:"coins"`
}

// fetchMarkets simulates the upstream markets endpoint. Keys follow the
// "coin_<i>_<field>" convention; field names keep CoinGecko's snake_case so the
// generic Rows reshaping reproduces the real wire shape.
func fetchMarkets() mockapi.Flat {
	return mockapi.Flat{
		"coin_0_id":                          "bitcoin",
		"coin_0_symbol":                      "btc",
		"coin_0_name":                        "Bitcoin",
		"coin_0_image":                       "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
		"coin_0_current_price":               45000.0,
		"coin_0_market_cap":                  880000000000.0,
		"coin_0_market_cap_rank":             1,
		"coin_0_total_volume":                25000000000.0,
		"coin_0_high_24h":                    46000.0,
		"coin_0_low_24h":                     44000.0,
		"coin_0_price_change_24h":            1200.0,
		"coin_0_price_change_percentage_24h": 2.73,
		"coin_0_circulating_supply":          19500000.0,
		"coin_0_total_supply":                21000000.0,
		"coin_0_max_supply":                  21000000.0,
		"coin_0_ath":                         69000.0,
		"coin_0_ath_change_percentage":       -34.78,
		"coin_0_ath_date":                    "2021-11-10T14:24:11.849Z",
		"coin_0_atl":                         67.81,
		"coin_0_atl_date":                    "2013-07-06T00:00:00.000Z",
		"coin_0_last_updated":                "2023-10-15T12:34:56.789Z",
		"coin_1_id":                          "ethereum",
		"coin_1_symbol":                      "eth",
		"coin_1_name":                        "Ethereum",
		"coin_1_image":                       "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
		"coin_1_current_price":               3200.0,
		"coin_1_market_cap":                  384000000000.0,
		"coin_1_market_cap_rank":             2,
		"coin_1_total_volume":                15000000000.0,
		"coin_1_high_24h":                    3250.0,
		"coin_1_low_24h":                     3150.0,
		"coin_1_price_change_24h":            80.0,
		"coin_1_price_change_percentage_24h": 2.56,
		"coin_1_circulating_supply":          120000000.0,
		"coin_1_total_supply":                120000000.0,
		"coin_1_ath":                         4891.70,
		"coin_1_ath_change_percentage":       -34.58,
		"coin_1_ath_date":                    "2021-11-10T14:24:19.648Z",
		"coin_1_atl":                         0.43,
		"coin_1_atl_date":                    "2015-10-20T00:00:00.000Z",
		"coin_1_last_updated":                "2023-10-15T12:34:56.789Z",
	}
}

// Tools builds the package's mock tools.
func Tools() ([]mockmcp.Tool, error) {
	markets, err := mockmcp.NewTool(
		"coins_markets",
		"List coins with market data: price, market cap, volume, and 24h movement.",
		func(_ context.Context, a MarketsArgs) (MarketsResult, error) {
			page, perPage := a.Page, a.PerPage
			if page == 0 {
				page = 1
			}
			if perPage == 0 {
				perPage = 100
			}
			flat := fetchMarkets()
			return MarketsResult{
				VsCurrency: a.VsCurrency,
				Page:       page,
				PerPage:    perPage,
				Coins:      flat.Rows("coin"),
			}, nil
		},
		mockmcp.WithTags("coingecko"),
	)
	if err != nil {
		return nil, err
	}
	return []mockmcp.Tool{markets}, nil
}
