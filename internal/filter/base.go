package filter

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/leodido/moneylaundry/internal/intl"
)

const nbsp = "\u00a0"

// state is everything derived from (locale, currency, formatter). A nil
// *state means the filter has not been set up yet.
type state struct {
	currency *intl.NumberFormatter
	decimal  *intl.NumberFormatter
	code     string
	symbols  SymbolTable
	regex    RegexComponents

	allowed  *regexp.Regexp
	digits   *regexp.Regexp
	negative *regexp.Regexp // nil when currency and decimal negatives agree
	negRepl  string
}

// base carries what Currency and Uncurrency share: options, the lazily
// built state and the lock guarding both.
type base struct {
	mu       sync.Mutex
	opts     Options
	locale   intl.Locale
	custom   *intl.NumberFormatter
	resolver Resolver
	st       *state
}

func (b *base) init(opts Options) error {
	loc, opts, err := opts.resolve()
	if err != nil {
		return err
	}
	b.opts, b.locale = opts, loc
	b.resolver = NewResolver(intl.Catalog{})
	return nil
}

// refresh drops the derived state; the next call rebuilds it.
func (b *base) refresh() { b.st = nil }

func (b *base) Options() Options {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opts
}

func (b *base) Locale() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opts.Locale
}

// SetLocale switches locale and discards any formatter set with
// SetFormatter.
func (b *base) SetLocale(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var loc intl.Locale
	if id == "" {
		loc = intl.DefaultLocale()
	} else {
		l, err := intl.ParseLocale(id)
		if err != nil {
			return fmt.Errorf("set locale: %w", err)
		}
		loc = l
	}
	b.locale = loc
	b.opts.Locale = loc.String()
	b.custom = nil
	b.refresh()
	return nil
}

// CurrencyCode is the explicit code, else the resolved one, else "" when
// the filter has not been used yet.
func (b *base) CurrencyCode() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opts.CurrencyCode != "" {
		return b.opts.CurrencyCode
	}
	if b.st != nil {
		return b.st.code
	}
	return ""
}

// SetCurrencyCode sets an ISO 4217 code; "" goes back to the locale's
// currency.
func (b *base) SetCurrencyCode(code string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if code != "" {
		c, err := intl.CanonicalCurrency(code)
		if err != nil {
			return fmt.Errorf("set currency code: %w", err)
		}
		code = c
	}
	b.opts.CurrencyCode = code
	b.refresh()
	return nil
}

func (b *base) ScaleCorrectness() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opts.ScaleCorrectness
}

func (b *base) SetScaleCorrectness(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opts.ScaleCorrectness = v
}

func (b *base) CurrencyCorrectness() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opts.CurrencyCorrectness
}

func (b *base) SetCurrencyCorrectness(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opts.CurrencyCorrectness = v
}

// SetFormatter replaces the currency formatter. The filter adopts its
// locale.
func (b *base) SetFormatter(f *intl.NumberFormatter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.custom = f
	b.locale = f.Locale()
	b.opts.Locale = b.locale.String()
	b.refresh()
}

// SetSymbolSource changes where currency symbols are looked up.
func (b *base) SetSymbolSource(src SymbolSource) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resolver = NewResolver(src)
	b.refresh()
}

// Formatter returns the currency formatter, building the state if needed.
func (b *base) Formatter() (*intl.NumberFormatter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, err := b.ready()
	if err != nil {
		return nil, err
	}
	return st.currency, nil
}

// SymbolTable reports false until the filter has been set up.
func (b *base) SymbolTable() (SymbolTable, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.st == nil {
		return SymbolTable{}, false
	}
	return b.st.symbols, true
}

// RegexComponents reports false until the filter has been set up.
func (b *base) RegexComponents() (RegexComponents, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.st == nil {
		return RegexComponents{}, false
	}
	return b.st.regex, true
}

// ready returns the state, building it on first use. Callers hold b.mu.
func (b *base) ready() (*state, error) {
	if b.st != nil {
		return b.st, nil
	}

	cur := b.custom
	if cur == nil {
		f, err := intl.NewForLocale(b.locale, intl.CurrencyStyle)
		if err != nil {
			return nil, err
		}
		cur = f
	}
	code := b.opts.CurrencyCode
	if code == "" {
		code = cur.TextAttribute(intl.CurrencyCode)
	}
	if err := cur.SetTextAttribute(intl.CurrencyCode, code); err != nil {
		return nil, err
	}
	cur.SetSymbol(intl.CurrencySymbol, b.resolver.Resolve(b.locale, code))

	dec, err := intl.NewForLocale(b.locale, intl.DecimalStyle)
	if err != nil {
		return nil, err
	}

	st := &state{
		currency: cur,
		decimal:  dec,
		code:     cur.TextAttribute(intl.CurrencyCode),
		symbols:  NewSymbolTable(cur),
		regex:    NewRegexComponents(),
	}
	if err := st.compile(); err != nil {
		return nil, err
	}
	b.st = st
	return st, nil
}

func (st *state) compile() error {
	var err error
	if st.allowed, err = st.regex.allowedChars(st.symbols.Symbols()); err != nil {
		return fmt.Errorf("allowed chars pattern: %w", err)
	}
	st.digits = st.regex.digits()

	curPrefix := strings.ReplaceAll(st.symbols.NegativePrefix, nbsp, "")
	curSuffix := strings.ReplaceAll(st.symbols.NegativeSuffix, nbsp, "")
	decPrefix := st.decimal.TextAttribute(intl.NegativePrefix)
	decSuffix := st.decimal.TextAttribute(intl.NegativeSuffix)
	if curPrefix == decPrefix && curSuffix == decSuffix {
		return nil
	}
	st.negative, err = st.regex.negativeNotation(curPrefix, curSuffix,
		st.symbols.DecimalSeparator, st.symbols.GroupSeparator)
	if err != nil {
		return fmt.Errorf("negative notation pattern: %w", err)
	}
	st.negRepl = literalReplacement(decPrefix) + "${1}" + literalReplacement(decSuffix)
	return nil
}

// decimalDigits counts the digits after the last decimal separator once
// the currency symbol is removed.
func (st *state) decimalDigits(s string) int {
	if sym := st.symbols.CurrencySymbol; sym != "" {
		s = strings.ReplaceAll(s, sym, "")
	}
	sep := st.symbols.DecimalSeparator
	if sep == "" {
		return 0
	}
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return 0
	}
	return len(st.digits.FindAllStringIndex(s[i+len(sep):], -1))
}

// hasCurrency reports whether the display symbol occurs in s. An ISO code
// only counts where it is the display symbol.
func (st *state) hasCurrency(s string) bool {
	sym := st.symbols.CurrencySymbol
	return sym != "" && strings.Contains(s, sym)
}
