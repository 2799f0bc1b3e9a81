package service

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/leodido/moneylaundry/internal/statement/model"
)

var ErrColumnNotFound = errors.New("amount column not found")

// fuzzyThreshold is the minimum similarity for a fuzzy header match.
const fuzzyThreshold = 0.75

var rxNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeader lowercases, drops punctuation and sorts the words, so
// "Importo (EUR)" and "eur importo" compare equal.
func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	words := strings.Fields(rxNonWord.ReplaceAllString(s, " "))
	sort.Strings(words)
	return strings.Join(words, " ")
}

// resolveColumn finds the header matching want, trying exact names,
// normalized names, containment and finally edit distance. want may list
// alternatives separated by "|".
func resolveColumn(headers []string, want string) (model.Column, error) {
	col := model.Column{Requested: want}
	var alts []string
	for _, a := range strings.Split(want, "|") {
		if a = strings.TrimSpace(a); a != "" {
			alts = append(alts, a)
		}
	}
	if len(alts) == 0 {
		return col, fmt.Errorf("%w: no column requested", ErrColumnNotFound)
	}

	for _, a := range alts {
		for _, h := range headers {
			if h == a {
				col.Resolved, col.Method = h, "exact"
				return col, nil
			}
		}
	}

	norm := make([]string, len(alts))
	for i, a := range alts {
		norm[i] = normHeader(a)
	}
	for _, n := range norm {
		for _, h := range headers {
			if normHeader(h) == n {
				col.Resolved, col.Method = h, "normalized"
				return col, nil
			}
		}
	}

	// "saldo importo eur" contains "importo"; longest wanted name wins
	best, bestLen := "", 0
	for _, h := range headers {
		nh := normHeader(h)
		for _, n := range norm {
			if n != "" && nh != "" && (strings.Contains(nh, n) || strings.Contains(n, nh)) && len(n) > bestLen {
				best, bestLen = h, len(n)
			}
		}
	}
	if best != "" {
		col.Resolved, col.Method = best, "contains"
		return col, nil
	}

	bestScore := 0.0
	for _, h := range headers {
		nh := normHeader(h)
		for _, n := range norm {
			if s := similarity(nh, n); s > bestScore {
				best, bestScore = h, s
			}
		}
	}
	if bestScore >= fuzzyThreshold {
		col.Resolved, col.Method, col.Score = best, "fuzzy", &bestScore
		return col, nil
	}
	return col, fmt.Errorf("%w: %q", ErrColumnNotFound, want)
}
