package llm

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
)

// subjectLimit is the conventional soft limit for commit subject lines.
const subjectLimit = 50

// bodyWidth is the column the commit body is wrapped at.
const bodyWidth = 72

// CleanMessage trims surrounding whitespace and strips a wrapping triple
// backtick fence some models add around their output.
func CleanMessage(message string) string {
	message = strings.TrimSpace(message)
	if len(message) >= 6 && strings.HasPrefix(message, "```") && strings.HasSuffix(message, "```") {
		message = strings.TrimSpace(message[3 : len(message)-3])
	}
	return message
}

// FormatMessage normalizes a generated message: the subject line is kept
// intact and the body is wrapped at 72 columns. The second return value
// reports whether the subject exceeds the 50 character convention so the
// caller can warn without altering the message.
func FormatMessage(message string) (string, bool) {
	parts := strings.SplitN(message, "\n", 2)
	subject := strings.TrimSpace(parts[0])
	subjectTooLong := utf8.RuneCountInString(subject) > subjectLimit

	body := ""
	if len(parts) > 1 {
		body = strings.TrimSpace(parts[1])
	}
	if body == "" {
		return subject, subjectTooLong
	}
	return subject + "\n\n" + wordwrap.String(body, bodyWidth), subjectTooLong
}
