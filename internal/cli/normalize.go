package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leodido/moneylaundry/internal/fileio"
	"github.com/leodido/moneylaundry/internal/statement/model"
	"github.com/leodido/moneylaundry/internal/statement/service"
)

func normalizeCmd(f *flags) *cobra.Command {
	var (
		column    string
		headerRow int
	)
	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Parse the amount column of a CSV, XLS or XLSX statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			tab, err := fileio.Read(fh, args[0], headerRow)
			if err != nil {
				return err
			}
			rep, err := service.Normalize(tab, model.Request{
				Column:    column,
				HeaderRow: headerRow,
				Options:   f.options().Options,
			})
			if err != nil {
				return err
			}
			if f.asJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			return printReport(cmd, rep)
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "Amount column header; alternatives separated by |")
	cmd.Flags().IntVar(&headerRow, "header-row", 1, "1-based row holding the headers")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func printReport(cmd *cobra.Command, rep model.Report) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ROW\tRAW\tVALUE\tREASON\n")
	for _, r := range rep.Rows {
		value := r.Special
		if r.Value != nil {
			value = numberText(*r.Value)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Line, r.Raw, value, r.Reason)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	total := rep.Totals.Formatted
	if rep.Totals.Inexact {
		total += " (approximate)"
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "\ncolumn %q (%s), %d accepted, %d rejected, %d skipped, total %s\n",
		rep.Column.Resolved, rep.Column.Method,
		rep.Totals.Accepted, rep.Totals.Rejected, rep.Totals.Skipped, total)
	return err
}
