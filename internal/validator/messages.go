package validator

import (
	"fmt"
	"maps"
	"strings"
)

// messages collects the failures of the last IsValid call, keyed by code.
type messages map[string]string

func (m messages) add(code, template string, vars map[string]any) {
	pairs := make([]string, 0, 2*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "%"+k+"%", fmt.Sprint(v))
	}
	m[code] = strings.NewReplacer(pairs...).Replace(template)
}

func (m messages) clone() map[string]string {
	return maps.Clone(m)
}
