package intl

// localeData is a slice of CLDR number data for one locale. Empty fields
// are inherited from the parent locale.
type localeData struct {
	decimal, group    string
	minus, plus       string
	exponential       string
	infinity, nan     string
	zero              rune
	decimalPattern    string
	currencyPattern   string
	scientificPattern string
	currencies        map[string]string
}

const nbsp = "\u00a0"

var table = map[string]localeData{
	rootID: {
		decimal:           ".",
		group:             ",",
		minus:             "-",
		plus:              "+",
		exponential:       "E",
		infinity:          "∞",
		nan:               "NaN",
		zero:              '0',
		decimalPattern:    "#,##0.###",
		currencyPattern:   "¤" + nbsp + "#,##0.00",
		scientificPattern: "#E0",
	},
	"en": {
		currencyPattern: "¤#,##0.00",
		currencies: map[string]string{
			"USD": "$",
			"EUR": "€",
			"GBP": "£",
			"JPY": "¥",
			"INR": "₹",
		},
	},
	"en_GB": {
		currencies: map[string]string{"USD": "US$"},
	},
	"en_IN": {
		decimalPattern:  "#,##,##0.###",
		currencyPattern: "¤#,##,##0.00",
	},
	"it": {
		decimal:         ",",
		group:           ".",
		currencyPattern: "#,##0.00" + nbsp + "¤",
		currencies:      map[string]string{"EUR": "€"},
	},
	"it_CH": {
		decimal:         ".",
		group:           "’",
		currencyPattern: "¤" + nbsp + "#,##0.00;¤-#,##0.00",
	},
	"de": {
		decimal:         ",",
		group:           ".",
		currencyPattern: "#,##0.00" + nbsp + "¤",
		currencies:      map[string]string{"EUR": "€"},
	},
	"de_CH": {
		decimal:         ".",
		group:           "’",
		currencyPattern: "¤" + nbsp + "#,##0.00;¤-#,##0.00",
	},
	"fr": {
		decimal:         ",",
		group:           "\u202f",
		currencyPattern: "#,##0.00" + nbsp + "¤",
		currencies:      map[string]string{"EUR": "€"},
	},
	"es": {
		decimal:         ",",
		group:           ".",
		currencyPattern: "#,##0.00" + nbsp + "¤",
		currencies:      map[string]string{"EUR": "€"},
	},
	"pt": {
		decimal:         ",",
		group:           ".",
		currencyPattern: "¤" + nbsp + "#,##0.00",
		currencies:      map[string]string{"BRL": "R$"},
	},
	"nl": {
		decimal:         ",",
		group:           ".",
		currencyPattern: "¤" + nbsp + "#,##0.00;¤" + nbsp + "-#,##0.00",
		currencies:      map[string]string{"EUR": "€"},
	},
	"ru": {
		decimal:         ",",
		group:           nbsp,
		nan:             "не" + nbsp + "число",
		currencyPattern: "#,##0.00" + nbsp + "¤",
		currencies:      map[string]string{"RUB": "₽"},
	},
	"ja": {
		currencyPattern: "¤#,##0.00",
		currencies:      map[string]string{"JPY": "￥"},
	},
	"bn": {
		zero:            '০',
		nan:             "সংখ্যা" + nbsp + "না",
		decimalPattern:  "#,##,##0.###",
		currencyPattern: "#,##,##0.00¤;(#,##,##0.00¤)",
		currencies:      map[string]string{"BDT": "৳"},
	},
}

// lookupData merges the table entries along the fallback chain of l.
func lookupData(l Locale) localeData {
	var d localeData
	for _, loc := range l.Chain() {
		if e, ok := table[loc.String()]; ok {
			d.inherit(e)
		}
	}
	return d
}

func (d *localeData) inherit(e localeData) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&d.decimal, e.decimal)
	fill(&d.group, e.group)
	fill(&d.minus, e.minus)
	fill(&d.plus, e.plus)
	fill(&d.exponential, e.exponential)
	fill(&d.infinity, e.infinity)
	fill(&d.nan, e.nan)
	fill(&d.decimalPattern, e.decimalPattern)
	fill(&d.currencyPattern, e.currencyPattern)
	fill(&d.scientificPattern, e.scientificPattern)
	if d.zero == 0 {
		d.zero = e.zero
	}
}
