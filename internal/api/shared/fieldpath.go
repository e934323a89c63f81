package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// jsonPath turns a validator namespace such as
// "UpdateDeckRequest.FlashCards[0].FrontView.Text" into the JSON path
// "flashCards[0].frontView.text".
func jsonPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToLower(r)) + p[size:]
	}
	return strings.Join(parts, ".")
}
