package app

import (
	"encoding/json"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/store"
)

// aiPromptAction sends the arguments as a prompt and prints the response.
func aiPromptAction(ctx *cli.Context, e *env) error {
	prompt := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if prompt == "" {
		return errMissingArg.Fmt("prompt")
	}

	svc, err := e.aiService()
	if err != nil {
		return err
	}

	text, err := svc.GenerateContent(ctx.Context, prompt)
	if err != nil {
		return err
	}

	pterm.Fprintln(ctx.App.Writer, text)

	return nil
}

// aiUseAction records the provider in the document settings. Settings this
// program does not know about are kept.
func aiUseAction(ctx *cli.Context, e *env) error {
	name := strings.ToLower(strings.TrimSpace(ctx.Args().First()))
	if name == "" {
		return errMissingArg.Fmt("provider")
	}

	svc, err := e.aiService()
	if err != nil {
		return err
	}

	if err := svc.Use(name); err != nil {
		return err
	}

	doc, err := e.db.Get()
	if err != nil {
		return err
	}

	settings := map[string]json.RawMessage{}

	if _, err := doc.Decode(store.KeySettings, &settings); err != nil {
		return err
	}

	v, err := json.Marshal(name)
	if err != nil {
		return err
	}

	settings["aiProvider"] = v

	if err := doc.Encode(store.KeySettings, settings); err != nil {
		return err
	}

	if err := e.db.Set(doc); err != nil {
		return err
	}

	pterm.Fprintln(ctx.App.Writer, pterm.Success.Sprint("AI provider set to ", name))

	return nil
}
