package filter

// Reason tells why a value was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotString
	ReasonUnparsable
	ReasonIncompleteParse
	ReasonCurrencyMismatch
	ReasonScaleMismatch
	ReasonCurrencyMissing
	ReasonDisallowedChars
	ReasonNotInitialized
)

var reasonNames = map[Reason]string{
	ReasonNone:             "",
	ReasonNotString:        "not_string",
	ReasonUnparsable:       "unparsable",
	ReasonIncompleteParse:  "incomplete_parse",
	ReasonCurrencyMismatch: "currency_mismatch",
	ReasonScaleMismatch:    "scale_mismatch",
	ReasonCurrencyMissing:  "currency_missing",
	ReasonDisallowedChars:  "disallowed_chars",
	ReasonNotInitialized:   "not_initialized",
}

func (r Reason) String() string { return reasonNames[r] }

// Path tells which stage of the parser produced a Result.
type Path int

const (
	PathNone Path = iota
	PathNaN
	PathStrict
	PathFallback
)

func (p Path) String() string {
	switch p {
	case PathNaN:
		return "nan"
	case PathStrict:
		return "strict"
	case PathFallback:
		return "fallback"
	}
	return ""
}

// Result is the outcome of Uncurrency.Parse. When OK is false the filter
// hands back its input unchanged.
type Result struct {
	Value  float64
	OK     bool
	Reason Reason
	Path   Path
}

func accept(v float64, p Path) Result {
	return Result{Value: v, OK: true, Path: p}
}

func reject(r Reason, p Path) Result {
	return Result{Reason: r, Path: p}
}
