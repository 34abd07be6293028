package main

import (
	"fmt"
	"io"
	"os"

	"github.com/askai-cli/askai/cmd/askai/internal/setupwizard"
	"github.com/askai-cli/askai/pkg/askaidir"
)

// runConfigUpdate re-runs the seven configuration steps and overwrites the
// stored config. The API key is left untouched.
func runConfigUpdate(dirPath string) error {
	d, err := resolveDir(dirPath)
	if err != nil {
		return err
	}

	return configUpdate(d, os.Stdin, os.Stdout)
}

func configUpdate(d askaidir.Dir, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "NOTE: You're about to update the default config of askai. This will have an effect on")
	fmt.Fprintln(out, "how the answers are generated. Make sure that you are well-informed around these effects.")
	fmt.Fprintln(out, "You can read more here: https://beta.openai.com/docs/api-reference/completions/create")
	fmt.Fprintln(out)

	w := setupwizard.New(in, out, nil)

	cfg, err := w.RunConfig()
	if err != nil {
		return err
	}

	if err := d.EnsureRoot(); err != nil {
		return err
	}

	if err := cfg.Save(d.ConfigPath()); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render("Config saved successfully!"))

	return nil
}
