// Command ante is a deterministic, non-interactive driver over the
// internal/engine run API: it reads a JSON action script, applies each
// action in order, and prints the resulting event stream and score trace
// as it goes.
//
// It stands in for the "terminal UI / HTTP front-end" spec.md explicitly
// puts out of scope: this is not a game UI, it's a batch script runner
// that exercises the full exposed API surface end-to-end without
// rendering anything itself.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/diag"
	"github.com/kevinmchugh/anteforge/internal/engine"
)

// CLI is kong's command/flag definition, grounded on the teacher's
// main.go (flag.Int64("seed", ...)) but using kong's struct-tag style per
// the lox-pokerforbots example instead of the stdlib flag package.
type CLI struct {
	Seed     int64  `help:"RNG seed for the run." default:"1"`
	Config   string `help:"Path to a YAML config file; built-in defaults if omitted." type:"existingfile"`
	Content  string `help:"Path to a YAML content file; built-in defaults if omitted." type:"existingfile"`
	LogLevel string `help:"Diagnostic sink level." enum:"debug,info,warn,error" default:"warn"`

	Script string `arg:"" help:"Path to a JSON action script." type:"existingfile"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ante"),
		kong.Description("Deterministic batch driver over the anteforge run engine."),
	)

	if err := run(&cli); err != nil {
		kctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("ante: %w", err)
	}
	compiled, err := loadContent(cli.Content)
	if err != nil {
		return fmt.Errorf("ante: %w", err)
	}

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		return fmt.Errorf("ante: parse log level: %w", err)
	}
	sink := diag.NewSink(os.Stderr, level)

	actions, err := loadScript(cli.Script)
	if err != nil {
		return fmt.Errorf("ante: %w", err)
	}

	rs := engine.NewRun(cli.Seed, cfg, compiled, sink)
	return execScript(os.Stdout, rs, actions)
}

func loadConfig(path string) (*content.Config, error) {
	if path == "" {
		return content.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return content.LoadConfig(f)
}

func loadContent(path string) (*content.CompiledContent, error) {
	c := content.DefaultContent()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open content: %w", err)
		}
		defer f.Close()
		loaded, err := content.LoadContent(f)
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
		c = loaded
	}
	compiled, err := content.CompileContent(c)
	if err != nil {
		return nil, fmt.Errorf("compile content: %w", err)
	}
	return compiled, nil
}
