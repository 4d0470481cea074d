// Package report is the presentation layer: it scales and formats
// computed prices and Greeks for display. Nothing here feeds back into
// the model.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-greeks/internal/pricing"
)

// DaysPerYear converts the model's per-year theta to calendar-day theta.
const DaysPerYear = 365

// displayScale is the conventional x100 rescaling applied to per-day
// theta for display (theta quoted per contract of 100 shares).
const displayScale = 100

// PerDayTheta converts a per-year theta to per-calendar-day.
func PerDayTheta(annual float64) float64 {
	return annual / DaysPerYear
}

// DisplayTheta converts a per-year theta to the quoted display form:
// per-day theta rescaled by 100.
func DisplayTheta(annual float64) float64 {
	return PerDayTheta(annual) * displayScale
}

// Summary carries every value the CLI prints, quantized via decimal so
// output is stable across platforms and JSON encodes without float noise.
type Summary struct {
	Contract  string          `json:"contract"`
	Spot      decimal.Decimal `json:"spot"`
	Strike    decimal.Decimal `json:"strike"`
	Rate      decimal.Decimal `json:"rate"`
	Years     decimal.Decimal `json:"years"`
	Vol       decimal.Decimal `json:"vol"`
	D1        decimal.Decimal `json:"d1"`
	D2        decimal.Decimal `json:"d2"`
	CallPrice decimal.Decimal `json:"call_price"`
	PutPrice  decimal.Decimal `json:"put_price"`
	Delta     decimal.Decimal `json:"delta"`
	Gamma     decimal.Decimal `json:"gamma"`
	// ThetaYear is the raw per-year sensitivity from the model;
	// ThetaDay and ThetaDisplay are derived presentation values.
	ThetaYear    decimal.Decimal `json:"theta_year"`
	ThetaDay     decimal.Decimal `json:"theta_day"`
	ThetaDisplay decimal.Decimal `json:"theta_display"`
}

func round(f float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(places)
}

// BuildSummary assembles a display summary from computed results.
func BuildSummary(m pricing.MarketInputs, aux pricing.Auxiliaries,
	call, put float64, greeks pricing.Greeks, contract pricing.ContractType) Summary {

	return Summary{
		Contract:     contract.String(),
		Spot:         round(m.Spot, 4),
		Strike:       round(m.Strike, 4),
		Rate:         round(m.Rate, 6),
		Years:        round(m.Years, 6),
		Vol:          round(m.Vol, 6),
		D1:           round(aux.D1, 6),
		D2:           round(aux.D2, 6),
		CallPrice:    round(call, 4),
		PutPrice:     round(put, 4),
		Delta:        round(greeks.Delta, 6),
		Gamma:        round(greeks.Gamma, 7),
		ThetaYear:    round(greeks.Theta, 4),
		ThetaDay:     round(PerDayTheta(greeks.Theta), 4),
		ThetaDisplay: round(DisplayTheta(greeks.Theta), 2),
	}
}

// Render writes the summary as aligned plain text.
func (s Summary) Render(w io.Writer) error {
	rows := []struct {
		label string
		value string
	}{
		{"contract", s.Contract},
		{"spot (S)", s.Spot.String()},
		{"strike (K)", s.Strike.String()},
		{"rate (r)", s.Rate.String()},
		{"years (t)", s.Years.String()},
		{"vol (sigma)", s.Vol.String()},
		{"d1", s.D1.String()},
		{"d2", s.D2.String()},
		{"call price", s.CallPrice.String()},
		{"put price", s.PutPrice.String()},
		{"delta", s.Delta.String()},
		{"gamma", s.Gamma.String()},
		{"theta (per year)", s.ThetaYear.String()},
		{"theta (per day)", s.ThetaDay.String()},
		{"theta (display)", s.ThetaDisplay.String()},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-18s %s\n", r.label, r.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the summary as indented JSON.
func (s Summary) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
