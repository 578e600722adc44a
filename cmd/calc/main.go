// Package main is a command-line calculator.
//
// Without --file it reads one expression per line from stdin.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/alecthomas/calc"
)

// CLI flags. Defaults may also come from a configuration file.
type CLI struct {
	Version  kong.VersionFlag `help:"Print version and exit."`
	Config   kong.ConfigFlag  `help:"Load flag defaults from a YAML or TOML file." placeholder:"FILE"`
	File     string           `short:"f" help:"Evaluate each line of FILE instead of reading stdin." placeholder:"FILE"`
	Format   string           `default:"%g" help:"Format verb used to print results."`
	Prompt   string           `default:"> " help:"Prompt shown when stdin is a terminal."`
	Timing   bool             `help:"Print how long each expression took."`
	AST      bool             `name:"ast" help:"Print the expression tree before each result."`
	Trace    bool             `help:"Trace the parser to stderr."`
	MaxDepth int              `default:"${max_depth}" help:"Maximum nesting depth of an expression (0 for unlimited)."`
	Grammar  bool             `help:"Print the grammar in EBNF and exit."`
}

var (
	version string = "dev"
	cli     CLI
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description(`A command-line calculator.`),
		vars(version),
		kong.Configuration(configLoader, "~/.config/calc/config.yaml", "~/.config/calc/config.toml"),
		kong.UsageOnError(),
	)
	err := run(kctx, &cli)
	kctx.FatalIfErrorf(err)
}

func vars(version string) kong.Vars {
	return kong.Vars{
		"version":   version,
		"max_depth": strconv.Itoa(calc.DefaultMaxDepth),
	}
}

func run(kctx *kong.Context, cli *CLI) error {
	if cli.Grammar {
		fmt.Fprint(kctx.Stdout, calc.Grammar)
		return nil
	}
	options := []calc.Option{calc.MaxDepth(cli.MaxDepth)}
	if cli.Trace {
		options = append(options, calc.Trace(kctx.Stderr))
	}
	parser, err := calc.New(options...)
	if err != nil {
		return err
	}
	s := &session{
		parser: parser,
		stdout: kctx.Stdout,
		stderr: kctx.Stderr,
		format: cli.Format,
		timing: cli.Timing,
		ast:    cli.AST,
	}
	if cli.File == "" {
		return s.interactive(os.Stdin, cli.Prompt)
	}
	r, err := os.Open(cli.File)
	if err != nil {
		return err
	}
	defer r.Close()
	return s.batch(cli.File, r)
}
