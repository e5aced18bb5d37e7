package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcurementMode(t *testing.T) {
	cases := map[string]ProcurementMode{
		"Shopping":              ModeShopping,
		"shopping":              ModeShopping,
		"SHOPPING":              ModeShopping,
		"Small Value":           ModeSmallValue,
		"small value":           ModeSmallValue,
		"Competitive Bidding":   ModeCompetitiveBidding,
		"competitive BIDDING":   ModeCompetitiveBidding,
		"Other":                 ModeUnknown,
		"":                      ModeUnknown,
		"SmallValue":            ModeUnknown,
		" Shopping ":            ModeShopping,
		"Small Value\n":         ModeSmallValue,
		"\tcompetitive bidding": ModeCompetitiveBidding,
		"   ":                   ModeUnknown,
	}
	for label, want := range cases {
		assert.Equal(t, want, ParseProcurementMode(label), "label %q", label)
	}
}

func TestProcurementModeString(t *testing.T) {
	assert.Equal(t, "Small Value", ModeSmallValue.String())
	assert.Equal(t, "Unknown", ModeUnknown.String())
}

func TestAmountMarshalsTwoFractionDigits(t *testing.T) {
	b, err := json.Marshal(struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}{
		A: NewAmount(decimal.NewFromInt(1000)),
		B: NewAmount(decimal.RequireFromString("100.005")),
		C: Amount{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1000.00,"b":100.01,"c":0.00}`, string(b))
	assert.Contains(t, string(b), `"a":1000.00`)
}

func TestAmountUnmarshal(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &a))
	assert.True(t, a.Equal(decimal.RequireFromString("12.5")))
}
