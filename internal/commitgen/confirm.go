package commitgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Decision is the confirmation gate outcome. Message carries the possibly
// user-edited text when approved.
type Decision struct {
	Approved bool
	Message  string
}

// Confirmer blocks for user approval of a generated message.
type Confirmer interface {
	Confirm(message string) (Decision, error)
}

// TerminalConfirmer runs a synchronous yes/no/edit prompt on the terminal.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// launchEditor is swappable in tests.
var launchEditor = runEditor

func (c TerminalConfirmer) Confirm(message string) (Decision, error) {
	fmt.Fprintf(c.Out, "Commit message:\n%s\n\n", message)
	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, "Commit this message? (yes/no/edit): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Decision{}, err
			}
			// EOF on stdin counts as a decline.
			fmt.Fprintln(c.Out)
			return Decision{}, nil
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "yes", "y":
			return Decision{Approved: true, Message: message}, nil
		case "no", "n":
			return Decision{}, nil
		case "edit", "e":
			edited, err := launchEditor(message)
			if err != nil {
				return Decision{}, err
			}
			edited = strings.TrimSpace(edited)
			if edited != "" {
				message = edited
			}
			fmt.Fprintf(c.Out, "Commit message:\n%s\n\n", message)
		default:
			fmt.Fprintln(c.Out, "Please enter 'yes', 'no' or 'edit'.")
		}
	}
}

func runEditor(message string) (string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	tmp, err := os.CreateTemp("", "llm-commit-*.txt")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(message); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	cmd := exec.Command(editor, tmp.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s: %w", editor, err)
	}

	edited, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", err
	}
	return string(edited), nil
}
