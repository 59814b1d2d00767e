package llm

import (
	"strings"
	"testing"
)

func TestCleanMessageStripsFence(t *testing.T) {
	in := "```\nfeat: add hello print\n```"
	if got := CleanMessage(in); got != "feat: add hello print" {
		t.Fatalf("unexpected cleaned message %q", got)
	}
}

func TestCleanMessageTrimsWhitespace(t *testing.T) {
	if got := CleanMessage("  fix: trailing space \n"); got != "fix: trailing space" {
		t.Fatalf("unexpected cleaned message %q", got)
	}
}

func TestCleanMessageKeepsUnfencedBackticks(t *testing.T) {
	in := "```only a leading fence"
	if got := CleanMessage(in); got != in {
		t.Fatalf("message without a closing fence must be untouched, got %q", got)
	}
}

func TestFormatMessageSubjectOnly(t *testing.T) {
	got, tooLong := FormatMessage("feat: add hello print")
	if got != "feat: add hello print" {
		t.Fatalf("unexpected message %q", got)
	}
	if tooLong {
		t.Fatalf("short subject flagged as too long")
	}
}

func TestFormatMessageFlagsLongSubject(t *testing.T) {
	subject := strings.Repeat("a", 51)
	_, tooLong := FormatMessage(subject)
	if !tooLong {
		t.Fatalf("expected long subject to be flagged")
	}
}

func TestFormatMessageCountsSubjectRunes(t *testing.T) {
	subject := strings.Repeat("é", 50) // 100 bytes, 50 runes
	_, tooLong := FormatMessage(subject)
	if tooLong {
		t.Fatalf("a 50 character subject must not be flagged, regardless of byte length")
	}
}

func TestFormatMessageWrapsBody(t *testing.T) {
	body := strings.Repeat("word ", 40)
	got, _ := FormatMessage("fix: wrap body\n" + body)

	lines := strings.Split(got, "\n")
	if lines[0] != "fix: wrap body" {
		t.Fatalf("unexpected subject %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("expected blank line between subject and body")
	}
	for _, line := range lines[2:] {
		if len(line) > 72 {
			t.Fatalf("body line exceeds 72 columns: %q", line)
		}
	}
}
