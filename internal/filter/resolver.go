package filter

import "github.com/leodido/moneylaundry/internal/intl"

// maxLocaleDepth caps the walk towards root.
const maxLocaleDepth = 8

// SymbolSource looks a currency symbol up for exactly one locale level.
type SymbolSource interface {
	LookupCurrencySymbol(l intl.Locale, code string) (string, bool)
}

// Resolver finds the display symbol of a currency for a locale, walking
// it_IT -> it -> root. The ISO code is the symbol of last resort.
type Resolver struct {
	Source SymbolSource
}

func NewResolver(src SymbolSource) Resolver {
	return Resolver{Source: src}
}

func (r Resolver) Resolve(l intl.Locale, code string) string {
	src := r.Source
	if src == nil {
		src = intl.Catalog{}
	}
	cur := l
	for i := 0; i < maxLocaleDepth; i++ {
		if s, ok := src.LookupCurrencySymbol(cur, code); ok {
			return s
		}
		if cur.IsRoot() {
			break
		}
		cur, _ = cur.Parent()
	}
	return code
}
