package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

// PadRight, PadLeft and Centre pad s with spaces to the given display width,
// counting wide characters as two cells.
func PadRight(s string, width int) string {
	return s + padding(s, width)
}

func PadLeft(s string, width int) string {
	return padding(s, width) + s
}

func Centre(s string, width int) string {
	pad := padding(s, width)
	left := len(pad) / 2

	return pad[:left] + s + pad[left:]
}

func padding(s string, width int) string {
	count := width - runewidth.StringWidth(s)
	if count <= 0 {
		return ""
	}

	return strings.Repeat(" ", count)
}
