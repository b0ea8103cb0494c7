package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/ai"
	"github.com/trssantos/wellness-tracker-sub005/internal/config"
	"github.com/trssantos/wellness-tracker-sub005/internal/logging"
	"github.com/trssantos/wellness-tracker-sub005/internal/pathutil"
	"github.com/trssantos/wellness-tracker-sub005/internal/ui"
	"github.com/trssantos/wellness-tracker-sub005/store"
)

const (
	envNoColor         = "NO_COLOR"
	envWellnessNoColor = "WELLNESS_NO_COLOR"
)

// env is what a command needs to run: the resolved configuration and an
// open store.
type env struct {
	cfg     *config.Config
	db      store.Store
	ai      *ai.Service
	now     func() time.Time
	closers []io.Closer
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			slog.Error("close failed", "error", err)
		}
	}
}

// aiService returns the AI service, switched to the provider stored in the
// document settings when one is set.
func (e *env) aiService() (*ai.Service, error) {
	if e.ai == nil {
		svc, err := ai.New(ai.Config{
			Provider: e.cfg.AI.Provider,
			OpenAI:   ai.Endpoint(e.cfg.AI.OpenAI),
			Gemini:   ai.Endpoint(e.cfg.AI.Gemini),
			Timeout:  e.cfg.AI.Timeout,
			CacheTTL: e.cfg.AI.CacheTTL,
		})
		if err != nil {
			return nil, err
		}

		e.ai = svc
	}

	doc, err := e.db.Get()
	if err != nil {
		return nil, err
	}

	settings, err := doc.Settings()
	if err != nil {
		return nil, err
	}

	if err := e.ai.Use(settings.AIProvider); err != nil {
		slog.Warn(
			"ignoring stored ai provider",
			"provider", settings.AIProvider,
			"error", err,
		)
	}

	return e.ai, nil
}

// openEnv builds the environment of a command. Replaced in tests.
var openEnv = defaultEnv

func defaultEnv(_ *cli.Context) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPaths(configPath, pathutil.DBFilePath(), pathutil.LogFilePath()),
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logCloser, err := logging.Setup(logging.Options{
		Path:       cfg.System.LogPath,
		Level:      level,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return nil, err
	}

	db, err := store.NewBolt(cfg.System.DBPath)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return &env{
		cfg:     cfg,
		db:      db,
		now:     time.Now,
		closers: []io.Closer{logCloser, db},
	}, nil
}

// withEnv opens the environment, applies the command's flags to the
// configuration and runs fn.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}

		defer e.close()

		if err := config.WithCLIConfig(ctx)(e.cfg); err != nil {
			return err
		}

		slog.Debug("running command", "command", ctx.Command.FullName())

		return fn(ctx, e)
	}
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// confirm prints prompt and waits for ENTER.
func confirm(w io.Writer, prompt string) {
	fmt.Fprint(w, pterm.Warning.Sprint(prompt+". Press ENTER to proceed"))

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envWellnessNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting wellness")

	return nil
}
