package cli

import (
	"github.com/spf13/cobra"

	"github.com/leodido/moneylaundry/internal/config"
	"github.com/leodido/moneylaundry/internal/validator"
)

type flags struct {
	locale              string
	currency            string
	scaleCorrectness    bool
	currencyCorrectness bool
	negativeAllowed     bool
	asJSON              bool
}

func (f *flags) options() validator.ValidationOptions {
	o := validator.DefaultValidationOptions()
	o.Locale = f.locale
	o.CurrencyCode = f.currency
	o.ScaleCorrectness = f.scaleCorrectness
	o.CurrencyCorrectness = f.currencyCorrectness
	o.NegativeAllowed = f.negativeAllowed
	return o
}

// NewRootCmd builds the command tree; flag defaults come from cfg.
func NewRootCmd(cfg config.Config) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "moneylaundry",
		Short:         "Format, parse and validate locale formatted currency amounts",
		Long:          "Converts amounts between numbers and locale formatted currency text, with scale and currency checks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.locale, "locale", cfg.Locale, "Locale, e.g. it_IT (default: from the environment)")
	pf.StringVar(&f.currency, "currency", cfg.CurrencyCode, "ISO 4217 currency code (default: the locale's)")
	pf.BoolVar(&f.scaleCorrectness, "scale-correctness", cfg.ScaleCorrectness, "Require exactly the currency's fraction digits")
	pf.BoolVar(&f.currencyCorrectness, "currency-correctness", cfg.CurrencyCorrectness, "Require the currency symbol")
	pf.BoolVar(&f.negativeAllowed, "negative-allowed", cfg.NegativeAllowed, "Accept negative amounts when validating")
	pf.BoolVar(&f.asJSON, "json", false, "Print JSON")

	root.AddCommand(formatCmd(f), parseCmd(f), validateCmd(f), normalizeCmd(f))
	return root
}

func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.LogFile = ""
	config.SetupLogger(cfg)
	return NewRootCmd(cfg).Execute()
}
