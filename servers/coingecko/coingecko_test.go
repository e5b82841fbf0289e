package coingecko

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmcp"
)

func coinsMarkets(t *testing.T) mockmcp.Tool {
	t.Helper()
	tools, err := Tools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	return tools[0]
}

func TestCoinsMarkets(t *testing.T) {
	tool := coinsMarkets(t)
	assert.Equal(t, "coins_markets", tool.Name())

	out, err := tool.Execute(context.Background(), []byte(`{"vs_currency": "usd"}`))
	require.NoError(t, err)
	var result MarketsResult
	require.NoError(t, json.Unmarshal(out, &result))

	assert.Equal(t, "usd", result.VsCurrency)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PerPage)
	require.Len(t, result.Coins, 2)

	btc := result.Coins[0]
	assert.Equal(t, "bitcoin", btc["id"])
	assert.Equal(t, "btc", btc["symbol"])
	assert.Equal(t, 45000.0, btc["current_price"])
	assert.Equal(t, 2.73, btc["price_change_percentage_24h"])
	assert.Equal(t, "2021-11-10T14:24:11.849Z", btc["ath_date"])

	eth := result.Coins[1]
	assert.Equal(t, "ethereum", eth["id"])
	assert.Equal(t, 3200.0, eth["current_price"])
}

func TestCoinsMarkets_PagingEchoed(t *testing.T) {
	tool := coinsMarkets(t)
	out, err := tool.Execute(context.Background(),
		[]byte(`{"vs_currency": "eur", "page": 3, "per_page": 25}`))
	require.NoError(t, err)
	var result MarketsResult
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, "eur", result.VsCurrency)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 25, result.PerPage)
}

func TestCoinsMarkets_Validation(t *testing.T) {
	tool := coinsMarkets(t)
	tests := []struct {
		name string
		args string
	}{
		{"unsupported currency", `{"vs_currency": "xyz"}`},
		{"missing currency", `{}`},
		{"per_page too large", `{"vs_currency": "usd", "per_page": 500}`},
		{"negative page", `{"vs_currency": "usd", "page": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(context.Background(), []byte(tt.args))
			require.Error(t, err)
			assert.True(t, mockmcp.IsClientError(err))
		})
	}
}
