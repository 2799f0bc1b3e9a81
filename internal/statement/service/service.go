package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/rs/zerolog/log"

	"github.com/leodido/moneylaundry/internal/fileio"
	"github.com/leodido/moneylaundry/internal/filter"
	"github.com/leodido/moneylaundry/internal/statement/model"
)

// Normalize parses the amount column of a statement with one Uncurrency
// configured from req.Options and totals the accepted finite amounts.
func Normalize(tab fileio.Table, req model.Request) (model.Report, error) {
	col, err := resolveColumn(tab.Headers, req.Column)
	if err != nil {
		return model.Report{}, err
	}
	unc, err := filter.NewUncurrency(req.Options)
	if err != nil {
		return model.Report{}, err
	}
	cur, err := filter.NewCurrency(req.Options)
	if err != nil {
		return model.Report{}, err
	}

	rep := model.Report{Column: col, Rows: make([]model.Row, 0, len(tab.Records))}
	// sum is exact until an amount overflows the decimal type, then
	// approx takes over and the totals are flagged inexact
	sum, approx, inexact := decimal.Zero, 0.0, false
	for _, rec := range tab.Records {
		raw := strings.TrimSpace(rec.Fields[col.Resolved])
		// blank cells and header rows repeated on every exported page
		if raw == "" || raw == col.Resolved {
			rep.Totals.Skipped++
			continue
		}

		res := unc.Parse(raw)
		row := model.Row{Line: rec.Line, Raw: raw, OK: res.OK, Path: res.Path.String()}
		if !res.OK {
			row.Reason = res.Reason.String()
			rep.Totals.Rejected++
			rep.Rows = append(rep.Rows, row)
			continue
		}
		rep.Totals.Accepted++

		if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
			row.Special = strconv.FormatFloat(res.Value, 'f', -1, 64)
			rep.Rows = append(rep.Rows, row)
			continue
		}
		v := res.Value
		row.Value = &v
		rep.Rows = append(rep.Rows, row)

		approx += v
		if inexact {
			continue
		}
		d, err := decimal.Parse(strconv.FormatFloat(v, 'f', -1, 64))
		if err == nil {
			sum, err = sum.Add(d)
		}
		if err != nil {
			inexact = true
			log.Warn().Err(err).Int("line", rec.Line).Msg("amount beyond decimal precision, totals are approximate")
		}
	}

	total := approx
	if !inexact {
		total, _ = sum.Float64()
	}
	rep.Totals.Sum = total
	rep.Totals.Inexact = inexact
	rep.Totals.Formatted, _ = cur.Format(total)
	rep.CurrencyCode = unc.CurrencyCode()
	rep.Options = unc.Options()

	log.Debug().
		Str("column", col.Resolved).
		Str("method", col.Method).
		Int("accepted", rep.Totals.Accepted).
		Int("rejected", rep.Totals.Rejected).
		Msg("statement normalized")
	return rep, nil
}
