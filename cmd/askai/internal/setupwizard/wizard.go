// Package setupwizard implements the interactive prompt sequence that
// collects and validates the askai credential and completion parameters.
// Each step applies a bounded retry policy; exhausting it aborts the whole
// run. The wizard never persists anything itself, so an aborted run leaves
// no partial state behind.
package setupwizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/askai-cli/askai/pkg/config"
	"github.com/askai-cli/askai/pkg/models"
	"github.com/charmbracelet/lipgloss"
)

// DefaultMaxTries is the number of attempts each step allows before the
// run is aborted.
const DefaultMaxTries = 3

// ErrTooManyTries is returned when a step exhausts its attempts. The abort
// message has already been printed when this is returned, so callers should
// exit non-zero without further output.
var ErrTooManyTries = errors.New("setupwizard: too many invalid tries")

// Operator-facing messages shared by the steps.
const (
	abortMessage  = "Too many invalid tries. Aborted!"
	errNotInteger = "Input is not an integer."
	errNotFloat   = "Input is not a float."
	errOutOfRange = "Input is not within allowed range."
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
)

// KeyChecker reports whether a candidate API key is accepted by the remote
// service. A (false, nil) result means authentication failed and the step
// re-prompts; an error is a transport problem and aborts the run.
type KeyChecker interface {
	Check(ctx context.Context, key string) (bool, error)
}

// CheckerFunc adapts a function to the KeyChecker interface.
type CheckerFunc func(ctx context.Context, key string) (bool, error)

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, key string) (bool, error) {
	return f(ctx, key)
}

// Result holds the values collected by a full wizard run.
type Result struct {
	Key    string
	Config config.Config
}

// Wizard drives the operator through the setup steps, reading input lines
// from in and writing prompts and status to out.
type Wizard struct {
	// MaxTries bounds the attempts per step. Defaults to DefaultMaxTries.
	MaxTries int

	// ReadSecret, when set, reads the credential without echo instead of
	// taking a plain line from in. The command layer wires this to the
	// terminal's password facility when stdin is a TTY.
	ReadSecret func() (string, error)

	// KeyOnDisk makes the credential step warn that an existing key will
	// be overwritten.
	KeyOnDisk bool

	in      *bufio.Reader
	out     io.Writer
	checker KeyChecker
}

// New returns a Wizard with default settings. Optional behaviour is
// configured through the exported fields before calling Run.
func New(in io.Reader, out io.Writer, checker KeyChecker) *Wizard {
	return &Wizard{
		MaxTries: DefaultMaxTries,
		in:       bufio.NewReader(in),
		out:      out,
		checker:  checker,
	}
}

// Run executes the credential step followed by the seven configuration
// steps and returns the collected values. On retry exhaustion it prints the
// abort message and returns ErrTooManyTries.
func (w *Wizard) Run(ctx context.Context) (Result, error) {
	key, err := w.askKey(ctx)
	if err != nil {
		return Result{}, err
	}

	cfg, err := w.configSteps()
	if err != nil {
		return Result{}, err
	}

	return Result{Key: key, Config: cfg}, nil
}

// RunConfig executes only the seven configuration steps. The credential is
// neither requested nor checked.
func (w *Wizard) RunConfig() (config.Config, error) {
	return w.configSteps()
}

func (w *Wizard) configSteps() (config.Config, error) {
	var cfg config.Config

	model, err := w.askModel(1)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Model = model.String()

	n, err := askValue(w, numAnswersPrompt(2))
	if err != nil {
		return config.Config{}, err
	}
	cfg.NumAnswers = n

	maxTokens, err := askValue(w, maxTokensPrompt(3))
	if err != nil {
		return config.Config{}, err
	}
	cfg.MaxTokens = maxTokens

	temp, err := askValue(w, temperaturePrompt(4))
	if err != nil {
		return config.Config{}, err
	}
	cfg.Temperature = temp

	topP, err := askValue(w, topPPrompt(5))
	if err != nil {
		return config.Config{}, err
	}
	cfg.TopP = topP

	freq, err := askValue(w, frequencyPenaltyPrompt(6))
	if err != nil {
		return config.Config{}, err
	}
	cfg.FrequencyPenalty = freq

	pres, err := askValue(w, presencePenaltyPrompt(7))
	if err != nil {
		return config.Config{}, err
	}
	cfg.PresencePenalty = pres

	return cfg, nil
}

// askKey reads the credential without echo and submits it to the remote
// checker. Authentication failures re-prompt until the tries run out.
func (w *Wizard) askKey(ctx context.Context) (string, error) {
	if w.KeyOnDisk {
		fmt.Fprintln(w.out, "NOTE: You've already added a key. This old key will be overwritten in this setup!")
		fmt.Fprintln(w.out)
	}

	fmt.Fprintln(w.out, "To use the CLI, please enter your OpenAI API key. The key can be generated by")
	fmt.Fprintln(w.out, "creating an account at https://openai.com/api/")
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "The key will only be stored locally in `~/.askai/key`.")
	fmt.Fprintln(w.out)

	for try := 0; try < w.maxTries(); try++ {
		key, err := w.readSecretLine("Enter API Key: ")
		if err != nil {
			return "", err
		}

		ok, err := w.checker.Check(ctx, key)
		if err != nil {
			return "", fmt.Errorf("setupwizard: check key: %w", err)
		}
		if ok {
			return key, nil
		}

		fmt.Fprintln(w.out, errorStyle.Render("The API key is not valid."))
	}

	return "", w.abort()
}

// askModel runs the closed-choice model step: the operator picks one of the
// fixed models by its 1-based ordinal.
func (w *Wizard) askModel(step int) (models.Model, error) {
	fmt.Fprintf(w.out, "-> STEP %d - SET MODEL\n", step)
	for i, m := range models.All() {
		fmt.Fprintf(w.out, "   %d) %s\n", i+1, m)
	}

	for try := 0; try < w.maxTries(); try++ {
		raw, err := w.readLine("Choose model (1-4): ")
		if err != nil {
			return "", err
		}

		ordinal, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr == nil {
			if m, ok := models.FromOrdinal(ordinal); ok {
				fmt.Fprintln(w.out, successStyle.Render("Model chosen: "+m.String()))
				fmt.Fprintln(w.out)

				return m, nil
			}
		}

		fmt.Fprintln(w.out, errorStyle.Render("Choose value between 1 and 4."))
	}

	return "", w.abort()
}

func (w *Wizard) maxTries() int {
	if w.MaxTries > 0 {
		return w.MaxTries
	}
	return DefaultMaxTries
}

// abort prints the fatal exhaustion message and returns the sentinel.
func (w *Wizard) abort() error {
	fmt.Fprintln(w.out, errorStyle.Render(abortMessage))

	return ErrTooManyTries
}

// readLine prints the prompt and reads one line. A final line without a
// trailing newline is accepted.
func (w *Wizard) readLine(prompt string) (string, error) {
	fmt.Fprint(w.out, prompt)

	line, err := w.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("setupwizard: read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readSecretLine reads the credential, using the echo-less reader when one
// is configured and a plain line otherwise.
func (w *Wizard) readSecretLine(prompt string) (string, error) {
	if w.ReadSecret == nil {
		return w.readLine(prompt)
	}

	fmt.Fprint(w.out, prompt)

	key, err := w.ReadSecret()
	fmt.Fprintln(w.out) // the echo-less read swallows the operator's newline

	if err != nil {
		return "", fmt.Errorf("setupwizard: read key: %w", err)
	}

	return key, nil
}

func (w *Wizard) echoChosen(text string) {
	fmt.Fprintln(w.out, successStyle.Render("Value chosen: "+text))
	fmt.Fprintln(w.out)
}

func (w *Wizard) sayInvalid(msg string) {
	fmt.Fprintln(w.out, errorStyle.Render(msg))
	fmt.Fprintln(w.out)
}
