package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

const version = "cttt v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var (
	verboseColor = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func (ctx *Context) verbosef(format string, args ...any) {
	if ctx.Verbose && !ctx.Quiet {
		verboseColor.Fprintf(ctx.Stderr, format+"\n", args...)
	}
}

func (ctx *Context) successf(format string, args ...any) {
	if !ctx.Quiet {
		successColor.Fprintf(ctx.Stderr, format+"\n", args...)
	}
}

func (ctx *Context) warnf(format string, args ...any) {
	if !ctx.Quiet {
		warnColor.Fprintf(ctx.Stderr, format+"\n", args...)
	}
}

// errorf is never silenced by --quiet
func (ctx *Context) errorf(format string, args ...any) {
	errorColor.Fprintf(ctx.Stderr, format+"\n", args...)
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:"cttt.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Parse   ParseCmd   `cmd:"" help:"List directives found in files (default: stdin)"`
	Check   CheckCmd   `cmd:"" help:"Fail when directives use kinds that are not allowed"`
	Graph   GraphCmd   `cmd:"" help:"Pair name and change directives"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cttt"),
		kong.Description("Scan source comments for @cttt directives."),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
