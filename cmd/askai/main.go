package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/askai-cli/askai/cmd/askai/internal/setupwizard"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "setup":
			setupCmd := flag.NewFlagSet("setup", flag.ExitOnError)
			setupCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: askai setup [flags]\n\nStore an OpenAI API key and build the default config interactively.\n\nFlags:\n")
				setupCmd.PrintDefaults()
			}
			dir := setupCmd.String("askai-dir", "", "path to the askai directory (default: ~/.askai)")
			envFile := setupCmd.String("env", ".env", "path to .env file (ignored if missing)")
			_ = setupCmd.Parse(os.Args[2:])

			if err := loadDotEnv(*envFile); err != nil {
				fail(err)
			}

			if err := runSetup(*dir); err != nil {
				fail(err)
			}

			return
		case "config":
			configCmd := flag.NewFlagSet("config", flag.ExitOnError)
			configCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: askai config [flags]\n\nUpdate the stored completion parameters interactively.\n\nFlags:\n")
				configCmd.PrintDefaults()
			}
			dir := configCmd.String("askai-dir", "", "path to the askai directory (default: ~/.askai)")
			_ = configCmd.Parse(os.Args[2:])

			if err := runConfigUpdate(*dir); err != nil {
				fail(err)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: askai [flags] <question>\n       askai <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  setup   Store an OpenAI API key and build the default config interactively\n  config  Update the stored completion parameters interactively\n")
	}

	dir := flag.String("askai-dir", "", "path to the askai directory (default: ~/.askai)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	plain := flag.Bool("plain", false, "print answers without spinner or markdown rendering")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := loadDotEnv(*envFile); err != nil {
		fail(err)
	}

	question := strings.Join(flag.Args(), " ")

	if err := runAsk(*dir, question, *plain); err != nil {
		fail(err)
	}
}

// fail prints err and exits non-zero. Retry exhaustion in the wizard has
// already reported itself, so it exits without a second message.
func fail(err error) {
	if errors.Is(err, setupwizard.ErrTooManyTries) {
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
