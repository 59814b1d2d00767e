package prompt

import (
	"strings"
	"testing"
)

func TestBuildConventionalIncludesInstructionAndDiff(t *testing.T) {
	diff := "+ print('hi')"
	out := Build(Input{Style: StyleConventional, Diff: diff})

	if !strings.Contains(out, `style="conventional"`) {
		t.Fatalf("expected conventional message format in prompt")
	}
	if !strings.Contains(out, "* Carefully follow the <commit-style/> Commit Messages format.") {
		t.Fatalf("expected the style constraint in the prompt")
	}
	if !strings.Contains(out, diff) {
		t.Fatalf("expected the full diff in the prompt")
	}
}

func TestBuildSemanticStyle(t *testing.T) {
	out := Build(Input{Style: StyleSemantic, Diff: "+x"})
	if !strings.Contains(out, `style="semantic"`) {
		t.Fatalf("expected semantic message format in prompt")
	}
}

func TestBuildDefaultStyleKeepsStyleConstraint(t *testing.T) {
	out := Build(Input{Style: StyleDefault, Diff: "+x"})
	if !strings.Contains(out, `style="default"`) {
		t.Fatalf("expected default message format in prompt")
	}
	if !strings.Contains(out, "Carefully follow the <commit-style/>") {
		t.Fatalf("the style constraint applies to every style, including default")
	}
}

func TestBuildHintPlacedBetweenStyleAndDiff(t *testing.T) {
	out := Build(Input{Style: StyleConventional, Hint: "touches the auth flow", Diff: "+x"})

	styleIdx := strings.Index(out, "</commit-style>")
	hintIdx := strings.Index(out, "<hint>\ntouches the auth flow\n</hint>")
	diffIdx := strings.Index(out, "<diff>")
	if hintIdx == -1 {
		t.Fatalf("expected hint section in prompt")
	}
	if !(styleIdx < hintIdx && hintIdx < diffIdx) {
		t.Fatalf("hint must appear after the style section and before the diff")
	}
	if !strings.Contains(out, "using information from the provided <hint/>") {
		t.Fatalf("request section must reference the hint")
	}
}

func TestBuildWithoutHintOmitsSection(t *testing.T) {
	out := Build(Input{Style: StyleDefault, Diff: "+x"})
	if strings.Contains(out, "<hint>") {
		t.Fatalf("no hint section expected without a hint")
	}
}

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"semantic":     StyleSemantic,
		"Conventional": StyleConventional,
		"":             StyleDefault,
		"whatever":     StyleDefault,
	}
	for in, want := range cases {
		if got := ParseStyle(in); got != want {
			t.Fatalf("ParseStyle(%q) = %q, want %q", in, got, want)
		}
	}
}
