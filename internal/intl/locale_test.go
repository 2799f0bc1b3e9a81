package intl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "it_IT", want: "it_IT"},
		{in: "it-IT", want: "it_IT"},
		{in: "it_IT.UTF-8", want: "it_IT"},
		{in: "de_CH@euro", want: "de_CH"},
		{in: "en", want: "en"},
		{in: "zh_Hant_TW", want: "zh_Hant_TW"},
		{in: "root", want: "root"},
		{in: "", wantErr: true},
		{in: "!!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := ParseLocale(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLocale)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.String())
		})
	}
}

func TestLocaleChain(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "it_IT", want: []string{"it_IT", "it", "root"}},
		{in: "bn", want: []string{"bn", "root"}},
		{in: "zh_Hant_TW", want: []string{"zh_Hant_TW", "zh_Hant", "zh", "root"}},
		{in: "root", want: []string{"root"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got []string
			for _, l := range MustParseLocale(tt.in).Chain() {
				got = append(got, l.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootHasNoParent(t *testing.T) {
	_, ok := Root.Parent()
	assert.False(t, ok)
	assert.True(t, Locale{}.IsRoot())
}

func TestDefaultLocale(t *testing.T) {
	t.Setenv("LC_ALL", "it_IT.UTF-8")
	t.Setenv("LC_MONETARY", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "it_IT", DefaultLocale().String())

	t.Setenv("LC_ALL", "C")
	assert.Equal(t, "en_US", DefaultLocale().String())

	t.Setenv("LANG", "bn_BD.UTF-8")
	assert.Equal(t, "bn_BD", DefaultLocale().String())
}
