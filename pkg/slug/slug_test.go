package slug

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Tabungan", "tabungan"},
		{"spaces", "Kredit Usaha Rakyat", "kredit-usaha-rakyat"},
		{"punctuation", "  Mobile Banking!! (BSB) ", "mobile-banking-bsb"},
		{"diacritics", "Café Crème", "cafe-creme"},
		{"digits", "Deposito 12 Bulan", "deposito-12-bulan"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
		{"repeated separators", "a -- b__c", "a-b-c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMake_Properties(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	alphabet := []rune("abcXYZ019 -_!?é ñ/.,ÄÖ")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		n := rng.Intn(30)
		buf := make([]rune, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		in := string(buf)
		out := Make(in)

		require.Regexp(t, valid, out, "input %q", in)
		assert.NotContains(t, out, "--", "input %q", in)
		assert.False(t, strings.HasPrefix(out, "-"), "input %q", in)
		assert.False(t, strings.HasSuffix(out, "-"), "input %q", in)
		assert.Equal(t, out, Make(in), "deterministic for %q", in)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
