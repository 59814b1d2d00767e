package prompt

import "strings"

// Style selects the commit message convention the model is instructed to use.
type Style string

const (
	StyleDefault      Style = "default"
	StyleConventional Style = "conventional"
	StyleSemantic     Style = "semantic"
)

// ParseStyle maps a user-supplied style name to a known Style. Unknown or
// empty names select the default style.
func ParseStyle(name string) Style {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(StyleSemantic):
		return StyleSemantic
	case string(StyleConventional):
		return StyleConventional
	default:
		return StyleDefault
	}
}

func styleDescription(style Style) string {
	switch style {
	case StyleSemantic:
		return semanticStyleDescription
	case StyleConventional:
		return conventionalStyleDescription
	default:
		return defaultStyleDescription
	}
}

const semanticStyleDescription = `<description>The commit message should include a one-line summary at the top (with change type and optional scope), then an optional description of why the change was made, followed by points for the key changes.
</description>
<message-format style="semantic">
[type][optional scope]: [one-line summary]

[short description of why this change was made]

* [key change 1 and how it was made]
* [key change 2 and how it was made]
* [...]

</message-format>
<examples>
</examples>`

const conventionalStyleDescription = `<description>The commit message should include a one-line summary at the top (with change type, optional scope, and optional mark), then an optional description of why the change was made, followed by points for the key changes.
</description>
<message-format style="conventional">[type][optional scope][optional mark]: [one-line summary]

[short description of why this change was made]

* [key change 1 and how it was made]
* [key change 2 and how it was made]
* [...]

[optional BREAKING CHANGE if applicable]
</message-format>
<examples>
</examples>`

const defaultStyleDescription = `<description>The commit message should include a one-line summary at the top then an optional description of why the change was made, followed by points for the key changes.
</description>
<message-format style="default">[short description of why this change was made]

* [key change 1 and how it was made]
* [key change 2 and how it was made]
* [...]

</message-format>`
