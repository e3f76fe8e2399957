package agent

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// TitleCase capitalizes each word, for rendering city names in replies.
func TitleCase(s string) string {
	return titleCaser.String(s)
}
