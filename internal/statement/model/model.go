package model

import "github.com/leodido/moneylaundry/internal/filter"

type Request struct {
	Column    string         // amount column; alternatives as "Importo|Amount"
	HeaderRow int            // 1-based
	Options   filter.Options // applied to every cell
}

// Row is the outcome for one amount cell. Value is nil for rejected cells
// and for NaN/Inf, which are reported in Special instead.
type Row struct {
	Line    int      `json:"row"`
	Raw     string   `json:"raw"`
	Value   *float64 `json:"value,omitempty"`
	Special string   `json:"special,omitempty"`
	OK      bool     `json:"ok"`
	Reason  string   `json:"reason,omitempty"`
	Path    string   `json:"path,omitempty"`
}

type Column struct {
	Requested string   `json:"requested"`
	Resolved  string   `json:"resolved"`
	Method    string   `json:"method"` // exact | normalized | contains | fuzzy
	Score     *float64 `json:"score,omitempty"`
}

type Totals struct {
	Accepted  int     `json:"accepted"`
	Rejected  int     `json:"rejected"`
	Skipped   int     `json:"skipped"`
	Sum       float64 `json:"sum"`
	Formatted string  `json:"formatted,omitempty"`
	// Inexact is set when some amount did not fit the decimal sum and
	// Sum was accumulated in float64.
	Inexact bool `json:"inexact,omitempty"`
}

type Report struct {
	Column       Column         `json:"column"`
	CurrencyCode string         `json:"currency_code"`
	Options      filter.Options `json:"options"`
	Rows         []Row          `json:"rows"`
	Totals       Totals         `json:"totals"`
}
