package corrector

import "strings"

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// applyCase shapes a lowercase correction like its source token:
// Title and ALL-CAPS sources keep their casing, anything else stays
// lowercase.
func applyCase(source, corrected string) string {
	switch {
	case source == "":
		return corrected
	case isTitle(source):
		return title(corrected)
	case isUpper(source):
		return strings.ToUpper(corrected)
	default:
		return corrected
	}
}
