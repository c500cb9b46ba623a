package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPayDebitsOnlyWhenCovered(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		amount      string
		wantOK      bool
		wantBalance string
	}{
		{name: "exact balance", balance: "2000", amount: "2000", wantOK: true, wantBalance: "0"},
		{name: "surplus", balance: "2000", amount: "500.25", wantOK: true, wantBalance: "1499.75"},
		{name: "short", balance: "500", amount: "1000", wantOK: false, wantBalance: "500"},
		{name: "zero amount", balance: "0", amount: "0", wantOK: true, wantBalance: "0"},
	}
	for _, k := range Kinds() {
		for _, tt := range tests {
			t.Run(k.Name()+"/"+tt.name, func(t *testing.T) {
				balance := decimal.RequireFromString(tt.balance)

				ok := k.Pay(decimal.RequireFromString(tt.amount), &balance)

				require.Equal(t, tt.wantOK, ok)
				require.True(t, decimal.RequireFromString(tt.wantBalance).Equal(balance), "balance %s", balance)
			})
		}
	}
}

func TestDebitNilBalance(t *testing.T) {
	require.False(t, Debit(decimal.NewFromInt(1), nil))
}

func TestKindNames(t *testing.T) {
	require.Equal(t, "Cash", Cash.Name())
	require.Equal(t, "Card", Card.Name())
	require.Equal(t, "Crypto", Crypto.Name())
	require.Equal(t, "Kind(0)", Kind(0).String())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" crypto ")
	require.NoError(t, err)
	require.Equal(t, Crypto, k)

	_, err = ParseKind("cheque")
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestKindSatisfiesMethod(t *testing.T) {
	var m Method = Card
	require.Equal(t, "Card", m.Name())
}
