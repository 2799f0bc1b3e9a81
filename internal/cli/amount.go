package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/leodido/moneylaundry/internal/filter"
	"github.com/leodido/moneylaundry/internal/validator"
)

var (
	ErrNotFormatted = errors.New("amount not formatted")
	ErrNotParsed    = errors.New("amount not parsed")
	ErrInvalid      = errors.New("amount not valid")
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// numberText prints NaN and the infinities the way strconv spells them.
func numberText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>",
		Short: "Render a number as locale formatted currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", ErrNotFormatted, args[0])
			}
			c, err := filter.NewCurrency(f.options().Options)
			if err != nil {
				return err
			}
			s, ok := c.Format(v)
			if !ok {
				return fmt.Errorf("%w: %s exceeds the scale of %s", ErrNotFormatted, args[0], c.CurrencyCode())
			}
			if f.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]string{"result": s, "currency_code": c.CurrencyCode()})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func parseCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Turn locale formatted currency text into a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := filter.NewUncurrency(f.options().Options)
			if err != nil {
				return err
			}
			res := u.Parse(args[0])
			if f.asJSON {
				out := map[string]any{"ok": res.OK, "path": res.Path.String(), "reason": res.Reason.String()}
				if res.OK {
					out["result"] = numberText(res.Value)
					if !math.IsNaN(res.Value) && !math.IsInf(res.Value, 0) {
						out["result"] = res.Value
					}
				}
				if err := printJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			if !res.OK {
				return fmt.Errorf("%w: %s (%s path)", ErrNotParsed, res.Reason, res.Path)
			}
			if !f.asJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), numberText(res.Value))
			}
			return err
		},
	}
}

func validateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <text>",
		Short: "Check that text is a well formatted currency amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := validator.NewCurrency(f.options())
			if err != nil {
				return err
			}
			valid := v.IsValid(args[0])
			if f.asJSON {
				if err := printJSON(cmd.OutOrStdout(), map[string]any{"valid": valid, "messages": v.Messages()}); err != nil {
					return err
				}
			} else {
				for _, m := range v.Messages() {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
			}
			if !valid {
				return ErrInvalid
			}
			if !f.asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			}
			return nil
		},
	}
}
