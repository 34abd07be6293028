package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/askai-cli/askai/pkg/askaidir"
	"github.com/askai-cli/askai/pkg/config"
	"github.com/askai-cli/askai/pkg/openaiclient"
	tea "github.com/charmbracelet/bubbletea"
)

// runAsk answers a question using the stored credential and config. With a
// terminal on stdout it shows a spinner while the request runs and renders
// the answers as markdown; otherwise it prints them raw.
func runAsk(dirPath, question string, plain bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d, err := resolveDir(dirPath)
	if err != nil {
		return err
	}

	key, err := loadKey(d)
	if err != nil {
		return err
	}

	cfg, err := loadAskConfig(d)
	if err != nil {
		return err
	}

	client := newClient(key)

	if plain || !stdoutIsTerminal() {
		answers, err := client.Complete(ctx, cfg, question)
		if err != nil {
			return err
		}

		printAnswersPlain(os.Stdout, answers)

		return nil
	}

	return runAskTUI(ctx, client, cfg, question)
}

// loadKey resolves the credential: the stored key file wins, then the
// OPENAI_API_KEY environment variable.
func loadKey(d askaidir.Dir) (string, error) {
	if d.HasKey() {
		return d.ReadKey()
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("no API key found at %s and OPENAI_API_KEY is not set (run `askai setup` first)", d.KeyPath())
}

// loadAskConfig loads and validates the stored config, pointing the
// operator at the setup flow when it is missing.
func loadAskConfig(d askaidir.Dir) (config.Config, error) {
	cfg, err := config.Load(d.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("no config found at %s (run `askai setup` first)", d.ConfigPath())
		}

		return config.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func runAskTUI(ctx context.Context, client *openaiclient.Client, cfg config.Config, question string) error {
	p := tea.NewProgram(newAskModel(ctx, client, cfg, question))

	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(askModel)
	if !ok {
		return fmt.Errorf("askai: unexpected model type %T", final)
	}

	if m.err != nil {
		return m.err
	}
	if m.canceled {
		return nil
	}

	initMarkdownRenderer(m.width)
	printAnswers(os.Stdout, m.answers, cfg, m.duration)

	return nil
}

// printAnswers renders each answer as markdown, with a numbered header when
// more than one alternative was requested, and a dim footer with the model
// and timing.
func printAnswers(out io.Writer, answers []string, cfg config.Config, d time.Duration) {
	for i, ans := range answers {
		if len(answers) > 1 {
			fmt.Fprintln(out, answerHeaderStyle.Render(fmt.Sprintf("Answer %d/%d", i+1, len(answers))))
		}
		fmt.Fprintln(out, renderMarkdown(ans))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%s · %s", cfg.Model, fmtDuration(d))))
}

// printAnswersPlain writes the answers without styling or markdown so the
// output can be piped.
func printAnswersPlain(out io.Writer, answers []string) {
	for i, ans := range answers {
		if len(answers) > 1 {
			fmt.Fprintf(out, "Answer %d/%d\n", i+1, len(answers))
		}
		fmt.Fprintln(out, ans)
		if i < len(answers)-1 {
			fmt.Fprintln(out)
		}
	}
}
