package pigment

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var codeRegExp *regexp.Regexp

func init() {
	regExp, err := regexp.Compile(`^(.*?)\s*\(([^()]*)\)\s*$`)
	if err != nil {
		panic(err)
	}
	codeRegExp = regExp
}

// splitName splits "Phthalo Blue (PB15)" into "Phthalo Blue" and "PB15".
// Names without a trailing parenthesized code come back unchanged.
func splitName(in string) (base, code string) {
	match := codeRegExp.FindStringSubmatch(in)
	if match == nil || match[1] == "" {
		return strings.TrimSpace(in), ""
	}
	return match[1], strings.TrimSpace(match[2])
}

// foldName is the lookup key for a swatch name. Casers are not safe for
// concurrent use.
func foldName(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}
