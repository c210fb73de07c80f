package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts "kamloops" to "Kamloops" and "blue jeans" to "Blue Jeans"
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
