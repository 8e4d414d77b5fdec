package idl

import (
	"strings"
	"unicode"
)

// Capitalize upper-cases the first letter and lower-cases the rest: "IVY" becomes "Ivy".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// PascalCase splits on anything that is not a letter or digit and capitalizes
// each word: "mix_usdc_to_game" becomes "MixUsdcToGame". Inner capitals are
// lowered, so "sync_ATA" becomes "SyncAta".
func PascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, word := range words {
		b.WriteString(Capitalize(word))
	}
	return b.String()
}

// accountKey normalizes an account field name for the well-known address
// table: letters only, lower case. "system_program" becomes "systemprogram".
func accountKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
