package commitgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/roivaz/llm-commit/internal/llm"
	"github.com/roivaz/llm-commit/internal/logging"
	"github.com/roivaz/llm-commit/internal/prompt"
)

// promptTokenWarnThreshold is the estimated prompt size above which a warning
// is logged; small local models typically carry a 4k context window.
const promptTokenWarnThreshold = 4096

// DiffSource returns the staged diff text; empty means nothing is staged.
type DiffSource interface {
	StagedDiff(ctx context.Context) (string, error)
}

// Generator produces a completion for the system/user prompt pair.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Committer creates a commit from the staged changes with the given message.
type Committer interface {
	Commit(ctx context.Context, message string) (string, error)
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeCommitted Outcome = iota
	OutcomeNothingToCommit
	OutcomeCancelled
	OutcomeDryRun
)

// Result couples the terminal outcome with the message the run ended with.
type Result struct {
	Outcome Outcome
	Message string
}

// Pipeline wires the run: collect diff, truncate, build prompt, invoke model,
// confirm, commit. Stateless between runs.
type Pipeline struct {
	cfg     Config
	diffs   DiffSource
	gen     Generator
	confirm Confirmer
	commits Committer
	log     logging.Logger
}

func NewPipeline(cfg Config, diffs DiffSource, gen Generator, confirm Confirmer, commits Committer) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		diffs:   diffs,
		gen:     gen,
		confirm: confirm,
		commits: commits,
		log:     logging.New(cfg.Logger),
	}
}

// Run executes one linear pass. The commit is the last and only mutating
// action, so an abort at any earlier stage leaves the repository untouched.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	diffText, err := p.diffs.StagedDiff(ctx)
	if err != nil {
		return Result{}, &RepositoryError{Op: "diff", Err: err}
	}
	if strings.TrimSpace(diffText) == "" {
		return Result{Outcome: OutcomeNothingToCommit}, nil
	}

	truncated, cut := prompt.Truncate(diffText, p.cfg.TruncationLimit, p.cfg.NoTruncation)
	if cut {
		p.log.Warn("diff is large; truncating", "limit", p.cfg.TruncationLimit, "original_chars", len(diffText))
	}

	userPrompt := prompt.Build(prompt.Input{Style: p.cfg.Style, Hint: p.cfg.Hint, Diff: truncated})
	tokens := prompt.EstimateTokens(userPrompt)
	p.log.Debug("prompt ready", "style", string(p.cfg.Style), "prompt_tokens", tokens)
	if tokens > promptTokenWarnThreshold {
		p.log.Warn("prompt may exceed the model context window", "prompt_tokens", tokens)
	}

	raw, err := p.gen.Generate(ctx, prompt.SystemPrompt(), userPrompt)
	if err != nil {
		return Result{}, &ModelError{Err: err}
	}

	message, subjectTooLong := llm.FormatMessage(llm.CleanMessage(raw))
	if message == "" {
		return Result{}, &ModelError{Err: fmt.Errorf("model returned an empty message")}
	}
	if subjectTooLong {
		p.log.Warn("subject line exceeds 50 characters")
	}

	if p.cfg.DryRun {
		return Result{Outcome: OutcomeDryRun, Message: message}, nil
	}

	if !p.cfg.SkipConfirmation {
		decision, err := p.confirm.Confirm(message)
		if err != nil {
			return Result{}, fmt.Errorf("confirmation prompt: %w", err)
		}
		if !decision.Approved {
			return Result{Outcome: OutcomeCancelled, Message: message}, nil
		}
		if decision.Message != "" {
			message = decision.Message
		}
	}

	if _, err := p.commits.Commit(ctx, message); err != nil {
		return Result{}, &RepositoryError{Op: "commit", Err: err}
	}
	p.log.Info("committed", "subject", strings.SplitN(message, "\n", 2)[0])
	return Result{Outcome: OutcomeCommitted, Message: message}, nil
}
