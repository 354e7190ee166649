// Command polycalc reads a sparse multivariate polynomial calculator
// program from standard input, one instruction per line, and writes
// results to standard output and diagnostics to standard error.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/npillmayer/polycalc/calc"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/urfave/cli/v2"
)

func tracer() tracing.Trace {
	return tracing.Select("polycalc")
}

func main() {
	app := &cli.App{
		Name:    "polycalc",
		Usage:   "a calculator for sparse recursively-nested multivariate polynomials",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "enable verbose per-line tracing to stderr",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	calc.Verbose = ctx.Bool("trace") || gconf.IsSet("polycalc.verbosetrace")

	exitCode := 0
	func() {
		defer func() {
			if r := recover(); r != nil {
				tracer().Errorf("fatal: %v", r)
				exitCode = 1
			}
		}()
		exitCode = runLoop()
	}()
	os.Exit(exitCode)
	return nil
}

func runLoop() int {
	c := calc.New(os.Stdout, os.Stderr)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		c.ProcessLine(lineNo, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("reading stdin: %v", err)
		return 1
	}
	return 0
}
