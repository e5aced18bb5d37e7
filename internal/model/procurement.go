package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProcurementMode is the normalized form of a purchase request's procurement mode label
type ProcurementMode int

const (
	ModeUnknown ProcurementMode = iota
	ModeShopping
	ModeSmallValue
	ModeCompetitiveBidding
)

var procurementModeLabels = map[ProcurementMode]string{
	ModeShopping:           "Shopping",
	ModeSmallValue:         "Small Value",
	ModeCompetitiveBidding: "Competitive Bidding",
}

// ParseProcurementMode matches a trimmed label case-insensitively against the recognized modes.
// Anything else yields ModeUnknown.
func ParseProcurementMode(label string) ProcurementMode {
	label = strings.TrimSpace(label)
	for mode, known := range procurementModeLabels {
		if strings.EqualFold(label, known) {
			return mode
		}
	}
	return ModeUnknown
}

func (m ProcurementMode) String() string {
	if label, ok := procurementModeLabels[m]; ok {
		return label
	}
	return "Unknown"
}

// Amount is a monetary value rendered in JSON as a number with exactly two fractional digits
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d rounded half away from zero to two places
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(2)}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}
