package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roivaz/llm-commit/internal/commitgen"
	"github.com/roivaz/llm-commit/internal/config"
	"github.com/roivaz/llm-commit/internal/gitrepo"
	"github.com/roivaz/llm-commit/internal/llm"
	"github.com/roivaz/llm-commit/internal/logging"
)

// Exit codes: 0 covers both a successful commit and a clean "nothing staged"
// no-op; every aborted run exits non-zero with a distinct message.
const (
	exitRepository    = 1
	exitConfiguration = 2
	exitModel         = 3
	exitCancelled     = 4
)

var rootCmd = &cobra.Command{
	Use:           "llm-commit",
	Short:         "Generate a commit message for staged changes with a local LLM",
	Long: `llm-commit reads the staged diff, asks a configured language model for a
commit message in the selected style and, after optional confirmation,
commits the staged changes with it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var (
	flagSemantic     bool
	flagConventional bool
	flagDryRun       bool
)

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagSemantic, "semantic", false, "enforce Semantic Commit Messages format")
	f.BoolVar(&flagConventional, "conventional", false, "enforce Conventional Commits format")
	f.BoolVar(&flagDryRun, "dry-run", false, "print the generated message without committing")
	f.BoolP("yes", "y", false, "commit without prompting")
	f.String("model", "llama3.2", "model to use")
	f.Int("max-tokens", 400, "maximum completion tokens")
	f.Float64("temperature", 0.3, "sampling temperature")
	f.Int("truncation-limit", 4000, "character limit for diff truncation (0 disables)")
	f.Bool("no-truncation", false, "disable diff truncation; may overflow the model context")
	f.String("hint", "", "extra guidance for the generated message")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := commitgen.LoadConfig(commitgen.StyleFlags{
		Semantic:     flagSemantic,
		Conventional: flagConventional,
	})
	if err != nil {
		return err
	}
	cfg.DryRun = flagDryRun
	cfg.Logger = logging.DefaultLogger(config.LogLevel())

	ctx := cmd.Context()

	repo := gitrepo.New()
	if !repo.IsInsideWorkTree(ctx) {
		return &commitgen.RepositoryError{Op: "check", Err: errors.New("not a git repository")}
	}

	client, err := llm.NewClient(llm.Config{
		Model:       cfg.Model,
		ServerURL:   cfg.OllamaURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		CallTimeout: cfg.CallTimeout,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return &commitgen.ModelError{Err: err}
	}

	gate := commitgen.TerminalConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	pipe := commitgen.NewPipeline(cfg, repo, client, gate, repo)

	result, err := pipe.Run(ctx)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case commitgen.OutcomeNothingToCommit:
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to commit. Use 'git add' to stage changes.")
	case commitgen.OutcomeDryRun:
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	case commitgen.OutcomeCancelled:
		return commitgen.ErrCancelled
	case commitgen.OutcomeCommitted:
		fmt.Fprintf(cmd.OutOrStdout(), "Committed:\n%s\n", result.Message)
	}
	return nil
}

func main() {
	config.Init(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "llm-commit: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cfgErr *commitgen.ConfigurationError
	var modelErr *commitgen.ModelError
	switch {
	case errors.Is(err, commitgen.ErrCancelled):
		return exitCancelled
	case errors.As(err, &cfgErr):
		return exitConfiguration
	case errors.As(err, &modelErr):
		return exitModel
	default:
		return exitRepository
	}
}
