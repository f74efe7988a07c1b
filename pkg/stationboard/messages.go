package stationboard

import (
	"strings"

	"github.com/travigo/railboard/pkg/ldb"
	"golang.org/x/net/html"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// SanitizeMessage strips markup tags and line breaks from an announcement and
// decodes HTML entities. Malformed markup produces a best-effort string.
func SanitizeMessage(value string) string {
	var text strings.Builder

	tokenizer := html.NewTokenizer(strings.NewReader(value))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// Raw holds any unterminated tag left at the end of the input.
			text.WriteString(html.UnescapeString(string(tokenizer.Raw())))
			return lineBreaks.Replace(text.String())
		case html.TextToken:
			text.Write(tokenizer.Text())
		}
	}
}

// SanitizeMessages keeps order and keeps messages that end up empty.
func SanitizeMessages(messages []ldb.Message) []string {
	sanitized := make([]string, len(messages))
	for i, message := range messages {
		sanitized[i] = SanitizeMessage(message.Value)
	}

	return sanitized
}
