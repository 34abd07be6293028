package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/askai-cli/askai/cmd/askai/internal/setupwizard"
	"github.com/askai-cli/askai/pkg/askaidir"
)

const logo = `
██████████   ██████████   ███   ███  ██████████   ███
███    ███   ███    ███   ███  ███   ███    ███
███    ███   ███    ███   ███  ███   ███    ███
███    ███   ███    ███   ███▐███    ███    ███    ▄█
███    ███   ███          █████▀     ███    ███   ███
██████████   ██████████   █████      ██████████   ███▌
███    ███          ███   ███▐███    ███    ███   ███▌
███    ███          ███   ███  ███   ███    ███   ███
███    ███   ██████████   ███   ███  ███    ███   █▀

    ~~~~~~~ Your simple terminal helper ~~~~~~~
`

// runSetup drives the first-run flow: logo, credential step, the seven
// configuration steps, then persistence under the askai directory.
func runSetup(dirPath string) error {
	d, err := resolveDir(dirPath)
	if err != nil {
		return err
	}

	checker := setupwizard.CheckerFunc(func(ctx context.Context, key string) (bool, error) {
		return newClient(key).ValidateKey(ctx)
	})

	return setup(context.Background(), d, os.Stdin, os.Stdout, checker, stdinSecretReader())
}

// setup runs the wizard against the given streams and checker. Values are
// persisted only after every step has been answered, so an aborted run
// leaves no partial state behind.
func setup(ctx context.Context, d askaidir.Dir, in io.Reader, out io.Writer, checker setupwizard.KeyChecker, readSecret func() (string, error)) error {
	fmt.Fprint(out, logo, "\n")

	w := setupwizard.New(in, out, checker)
	w.KeyOnDisk = d.HasKey()
	w.ReadSecret = readSecret

	res, err := w.Run(ctx)
	if err != nil {
		return err
	}

	if err := d.WriteKey(res.Key); err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("Your API key has been successfully added!"))

	if err := res.Config.Save(d.ConfigPath()); err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("Config saved successfully!"))

	return nil
}
