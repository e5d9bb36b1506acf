// glox runs Lox scripts or starts an interactive prompt.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/urfave/cli.v1"

	"glox/lox"
)

// Exit codes follow sysexits.h.
const (
	exitUsage    = 64
	exitData     = 65
	exitSoftware = 70
	exitIO       = 74
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured diagnostics",
	}
	maxDepthFlag = cli.IntFlag{
		Name:  "max-depth",
		Usage: "Maximum nested call depth before a stack overflow error",
		Value: lox.DefaultMaxCallDepth,
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log pipeline phases to stderr",
	}

	astCommand = cli.Command{
		Action:    dumpAst,
		Name:      "ast",
		Usage:     "Print the syntax tree of a script",
		ArgsUsage: "<script>",
	}
	tokensCommand = cli.Command{
		Action:    dumpTokens,
		Name:      "tokens",
		Usage:     "Print the tokens of a script",
		ArgsUsage: "<script>",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "glox"
	app.Usage = "the Lox tree-walking interpreter"
	app.ArgsUsage = "[script]"
	app.HideVersion = true
	app.Flags = []cli.Flag{configFileFlag, noColorFlag, maxDepthFlag, verboseFlag}
	app.Commands = []cli.Command{astCommand, tokensCommand}
	app.Action = run
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// makeConfig loads the config file, if any, and applies flags on top.
func makeConfig(ctx *cli.Context) (lox.Config, error) {
	cfg := lox.DefaultConfig
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		var err error
		if cfg, err = lox.LoadConfig(file); err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalBool(noColorFlag.Name) {
		cfg.Color = false
	}
	if ctx.GlobalIsSet(maxDepthFlag.Name) {
		cfg.MaxCallDepth = ctx.GlobalInt(maxDepthFlag.Name)
	}
	return cfg, nil
}

func makeLogger(ctx *cli.Context) *slog.Logger {
	if !ctx.GlobalBool(verboseFlag.Name) {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return cli.NewExitError("usage: glox [script]", exitUsage)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return cli.NewExitError(err, exitUsage)
	}
	session := lox.New(cfg, lox.WithLogger(makeLogger(ctx)))

	if ctx.NArg() == 0 {
		if err := session.RunPrompt(); err != nil {
			return cli.NewExitError(err, exitIO)
		}
		return nil
	}
	return exitStatus(session.RunFile(ctx.Args().First()))
}

// exitStatus maps a script result to the process exit code. Diagnostics
// are already printed by the session.
func exitStatus(err error) error {
	var re *lox.RuntimeError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, lox.ErrStatic):
		return cli.NewExitError("", exitData)
	case errors.As(err, &re):
		return cli.NewExitError("", exitSoftware)
	}
	return cli.NewExitError(err, exitIO)
}

func readScript(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", cli.NewExitError("usage: glox "+ctx.Command.Name+" <script>", exitUsage)
	}
	source, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return "", cli.NewExitError(err, exitIO)
	}
	return string(source), nil
}

func dumpTokens(ctx *cli.Context) error {
	source, err := readScript(ctx)
	if err != nil {
		return err
	}
	var errs lox.ErrorList
	for _, token := range lox.NewScanner(source, &errs).ScanTokens() {
		fmt.Println(token)
	}
	return reportStatic(errs)
}

func dumpAst(ctx *cli.Context) error {
	source, err := readScript(ctx)
	if err != nil {
		return err
	}
	var errs lox.ErrorList
	tokens := lox.NewScanner(source, &errs).ScanTokens()
	for _, stmt := range lox.NewParser(tokens, &errs).Parse() {
		fmt.Println(lox.PrintStmt(stmt))
	}
	return reportStatic(errs)
}

func reportStatic(errs lox.ErrorList) error {
	if !errs.HasErrors() {
		return nil
	}
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
	return cli.NewExitError("", exitData)
}
