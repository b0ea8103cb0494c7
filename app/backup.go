package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/store"
)

const compressedExt = ".zst"

// exportAction writes the document to the file named by the first argument.
func exportAction(ctx *cli.Context, e *env) (err error) {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("file")
	}

	compress := ctx.Bool("compress") ||
		strings.EqualFold(filepath.Ext(path), compressedExt)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	if err := store.Export(e.db, f, compress); err != nil {
		return err
	}

	pterm.Fprintln(ctx.App.Writer, pterm.Success.Sprint("Exported to ", path))

	return nil
}

// importAction replaces the document with an exported file.
func importAction(ctx *cli.Context, e *env) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("file")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	w := ctx.App.Writer

	if !ctx.Bool("yes") {
		confirm(w, "All tracker data will be replaced with the contents of "+path)
	}

	if err := store.Import(e.db, f); err != nil {
		return err
	}

	pterm.Fprintln(w, pterm.Success.Sprint("Imported ", path))

	return nil
}
