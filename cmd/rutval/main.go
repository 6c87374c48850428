// Command rutval validates, formats, and generates Chilean RUT numbers
// from the command line. It is a thin front end over pkg/rut; all input
// and output is local (arguments, stdin, stdout).
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"rutval/internal/logging"
	"rutval/pkg/rut"
)

const version = "0.1.0"

// CLI defines the command-line interface for rutval.
var CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Validate ValidateCmd `cmd:"" help:"Validate one or more RUTs"`
	Format   FormatCmd   `cmd:"" help:"Print RUTs in canonical form"`
	Clean    CleanCmd    `cmd:"" help:"Strip formatting characters from RUTs"`
	Parts    PartsCmd    `cmd:"" help:"Decompose RUTs into body and check digit"`
	Generate GenerateCmd `cmd:"" help:"Generate random valid RUTs for test data"`
	Batch    BatchCmd    `cmd:"" help:"Validate RUTs line by line from a file or stdin"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ValidateCmd checks each argument and reports per-RUT validity.
// It fails (exit code 1) when any argument is invalid.
type ValidateCmd struct {
	Range bool     `help:"Also require the body to fall in a plausible range"`
	Min   uint64   `default:"1000000" help:"Lower bound for the body when --range is set"`
	Max   uint64   `default:"0" help:"Upper bound for the body when --range is set (0 = none)"`
	RUTs  []string `arg:"" name:"rut" help:"RUTs to validate, in any accepted format"`
}

func (c *ValidateCmd) Run() error {
	invalid := 0
	for _, s := range c.RUTs {
		var ok bool
		if c.Range {
			ok = rut.ValidateInRange(s, c.Min, c.Max)
		} else {
			ok = rut.Validate(s)
		}
		fmt.Printf("%s\t%t\n", s, ok)
		if !ok {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d RUTs invalid", invalid, len(c.RUTs))
	}
	return nil
}

// FormatCmd prints each argument in canonical form.
type FormatCmd struct {
	Plain bool     `help:"Omit the dot group separators"`
	RUTs  []string `arg:"" name:"rut" help:"RUTs to format"`
}

func (c *FormatCmd) Run() error {
	for _, s := range c.RUTs {
		formatted, err := rut.Format(s, !c.Plain)
		if err != nil {
			return fmt.Errorf("formatting %q: %w", s, err)
		}
		fmt.Println(formatted)
	}
	return nil
}

// CleanCmd strips formatting characters from each argument.
type CleanCmd struct {
	RUTs []string `arg:"" name:"rut" help:"RUTs to clean"`
}

func (c *CleanCmd) Run() error {
	for _, s := range c.RUTs {
		cleaned, err := rut.Clean(s)
		if err != nil {
			return fmt.Errorf("cleaning %q: %w", s, err)
		}
		fmt.Println(cleaned)
	}
	return nil
}

// PartsCmd prints the structured decomposition of each argument as JSON.
type PartsCmd struct {
	RUTs []string `arg:"" name:"rut" help:"RUTs to decompose"`
}

func (c *PartsCmd) Run() error {
	enc := json.NewEncoder(os.Stdout)
	for _, s := range c.RUTs {
		parts, err := rut.Extract(s)
		if err != nil {
			return fmt.Errorf("extracting %q: %w", s, err)
		}
		if err := enc.Encode(parts); err != nil {
			return err
		}
	}
	return nil
}

// GenerateCmd prints random, mathematically valid RUTs. The output is
// test data, not real identities.
type GenerateCmd struct {
	Count int    `default:"1" help:"How many RUTs to generate"`
	Min   uint64 `default:"10000000" help:"Lower bound for the body"`
	Max   uint64 `default:"25000000" help:"Upper bound for the body"`
}

func (c *GenerateCmd) Run() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	for i := 0; i < c.Count; i++ {
		fmt.Println(rut.RandomIn(c.Min, c.Max))
	}
	return nil
}

// BatchCmd validates one RUT per line, from a file or stdin, and prints
// a JSON array of per-line results. A malformed line never aborts the
// batch.
type BatchCmd struct {
	Range bool   `help:"Also require each body to fall in a plausible range"`
	Min   uint64 `default:"1000000" help:"Lower bound for the body when --range is set"`
	Max   uint64 `default:"0" help:"Upper bound for the body when --range is set (0 = none)"`
	File  string `arg:"" optional:"" help:"Input file, one RUT per line (default: stdin)" type:"existingfile"`
}

func (c *BatchCmd) Run() error {
	var in io.Reader = os.Stdin
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	inputs, err := readLines(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	slog.Debug("batch input read", "lines", len(inputs))

	var results []rut.Result
	if c.Range {
		results = rut.ValidateAllInRange(inputs, c.Min, c.Max)
	} else {
		results = rut.ValidateAll(inputs)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return err
	}

	for _, res := range results {
		if !res.Valid {
			slog.Debug("invalid rut", "input", res.Input, "reason", res.Reason)
		}
	}
	return nil
}

// readLines collects non-blank lines from r, preserving order.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("rutval %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rutval"),
		kong.Description("Chilean RUT validation, formatting, and test-data generation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.Setup(os.Stderr, CLI.Verbose)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
