package prompt

// TruncationMarker is appended whenever diff content was cut for length, so
// both the model and the user know context is missing.
const TruncationMarker = "\n[Truncated]"

// Truncate bounds text to limit characters, appending TruncationMarker when
// content was cut. The limit counts runes, not bytes, so a cut never splits a
// UTF-8 sequence. Truncation is skipped when disabled or when the text fits.
// A limit of zero means "truncation disabled"; negative limits are rejected
// during configuration resolution and treated the same way here.
func Truncate(text string, limit int, disabled bool) (string, bool) {
	if disabled || limit <= 0 {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]) + TruncationMarker, true
}
