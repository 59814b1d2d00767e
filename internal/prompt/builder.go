package prompt

import "strings"

const systemPrompt = "You are a professional developer with more than 20 years of " +
	"experience. You're an expert at writing Git commit messages from " +
	"code diffs. Focus on highlighting the added value of changes " +
	"(meta-analysis, what could have happened without this change?), " +
	"followed by bullet points detailing key changes (avoid " +
	"paraphrasing). Use the specified commit Git style, while forbidding " +
	"other syntax markers or tags (e.g., markdown, HTML, etc.). " +
	"The audience is a group of experienced developers, please adapt " +
	"your tone/style accordingly."

// SystemPrompt returns the fixed system instruction for commit generation.
func SystemPrompt() string {
	return systemPrompt
}

// Input carries everything the user prompt is built from. Diff is expected to
// already be truncated when truncation applies.
type Input struct {
	Style Style
	Hint  string
	Diff  string
}

// Build composes the single-string user prompt: style description, optional
// hint, diff body, request and constraints, in that order.
func Build(in Input) string {
	constraints := []string{
		"* Carefully follow the <commit-style/> Commit Messages format.",
		"* Ensure the commit message is concise and follows professional standards.",
		"* Ensure the subject is in present tense and concise.",
		"* Include the relevant details from the diff in items of the commit message.",
		"* Avoid using markdown, HTML, or other syntax markers.",
	}

	request := "Generate a Git commit title and commit message based on the above <diff/>."
	if in.Hint != "" {
		request = "Generate a Git commit title and commit message based on the above <diff/>, and using information from the provided <hint/>."
	}

	sections := []string{
		"<commit-style>",
		styleDescription(in.Style),
		"</commit-style>",
	}
	if in.Hint != "" {
		sections = append(sections, "<hint>", in.Hint, "</hint>")
	}
	sections = append(sections,
		"<diff>",
		"$ git diff --staged --histogram",
		in.Diff,
		"</diff>",
		"<request>",
		request,
		"</request>",
		"<constraints>",
		strings.Join(constraints, "\n"),
		"</constraints>",
	)

	return strings.Join(sections, "\n")
}
