package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/askai-cli/askai/pkg/askaidir"
	"github.com/askai-cli/askai/pkg/openaiclient"
	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/term"
)

// thinkingMessages are displayed while the completion request is running.
var thinkingMessages = []string{
	"Thinking...",
	"Consulting the model...",
	"Crunching tokens...",
	"Assembling words...",
	"Summoning knowledge...",
	"Weaving thoughts...",
}

// spinnerFrames are braille characters for smooth animation.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// mdRenderer renders markdown to terminal-formatted output.
var mdRenderer *glamour.TermRenderer

func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	mdRenderer = r
}

// renderMarkdown converts markdown text to terminal-formatted output.
func renderMarkdown(text string) string {
	if mdRenderer == nil {
		return text
	}
	out, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// randomThinkingMessage returns a random thinking message.
func randomThinkingMessage() string {
	return thinkingMessages[rand.IntN(len(thinkingMessages))] //nolint:gosec // cosmetic randomness
}

// fmtDuration formats a duration for display.
func fmtDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	min := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", min, sec)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveDir returns the askai directory to use: the explicit flag when
// set, ~/.askai otherwise.
func resolveDir(explicit string) (askaidir.Dir, error) {
	if explicit != "" {
		return askaidir.New(explicit), nil
	}

	return askaidir.Default()
}

// newClient builds a completion client for key, honoring an alternate
// endpoint from OPENAI_BASE_URL.
func newClient(key string) *openaiclient.Client {
	var opts []option.RequestOption
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	return openaiclient.New(key, opts...)
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// stdinSecretReader returns an echo-less credential reader when stdin is a
// terminal, and nil otherwise so piped input falls back to plain line reads.
func stdinSecretReader() func() (string, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}

	return func() (string, error) {
		b, err := term.ReadPassword(int(fd)) //nolint:gosec // stdin fd fits in int
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
