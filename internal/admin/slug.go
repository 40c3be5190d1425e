package admin

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	nonAlphaNum  = regexp.MustCompile(`[^a-z0-9]+`)
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify turns a title into a URL slug: lowercase, accents stripped, every
// run of non-alphanumeric characters collapsed to one hyphen.
//
//	"Direito Penal e Processual!" -> "direito-penal-e-processual"
func Slugify(title string) string {
	plain, _, err := transform.String(stripAccents, title)
	if err != nil {
		plain = title
	}

	slug := strings.ToLower(plain)
	slug = nonAlphaNum.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
