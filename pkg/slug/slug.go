// Package slug формирует URL-безопасные идентификаторы из отображаемых имен.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make возвращает slug для имени: нижний регистр, диакритика снимается,
// любая последовательность символов вне [a-z0-9] заменяется одним дефисом,
// дефисы по краям отбрасываются.
func Make(name string) string {
	folded := foldDiacritics(strings.ToLower(name))
	s := nonAlnum.ReplaceAllString(folded, "-")
	return strings.Trim(s, "-")
}

// NewID генерирует новый уникальный идентификатор записи.
func NewID() string {
	return uuid.NewString()
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
