// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"cidl/internal/ast"
	"cidl/internal/cli"
	"cidl/internal/config"
	"cidl/internal/errors"
	"cidl/internal/idl"
	"cidl/internal/parser"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var (
		configPath  = flag.String("config", config.FileName, "project file")
		src         = flag.String("src", "", "header directory (overrides src)")
		out         = flag.String("out", "", "output directory (overrides out)")
		program     = flag.String("program", "", "program name (overrides program)")
		programID   = flag.String("program-id", "", "base58 program id (overrides program_id)")
		strict      = flag.Bool("strict", false, "treat ignored annotations as errors")
		summary     = flag.Bool("summary", false, "print a summary of the assembled document")
		dumpAST     = flag.Bool("ast", false, "print the parsed declarations of every header")
		jobs        = flag.Int("j", runtime.NumCPU(), "headers parsed in parallel")
		verbosity   = flag.Int("v", 0, "log verbosity")
		initProject = flag.Bool("init", false, "write a default project file and exit")
	)
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	if *initProject {
		if err := config.Save(*configPath, config.Default()); err != nil {
			cli.Fail(err)
		}
		color.Green("Wrote %s", *configPath)
		return
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		cli.Fail(err)
	}
	override(&cfg.Src, *src)
	override(&cfg.Out, *out)
	override(&cfg.Program, *program)
	override(&cfg.ProgramID, *programID)
	cfg.Strict = cfg.Strict || *strict

	startTime := time.Now()
	doc, ok := run(cfg, *jobs, *dumpAST)
	duration := cli.FormatDuration(time.Since(startTime))
	if !ok {
		cli.Errorf(os.Stderr, "Assembly failed after %s", duration)
		os.Exit(1)
	}

	path := filepath.Join(cfg.Out, idl.FileName(cfg.Program))
	if err := idl.Write(path, doc); err != nil {
		cli.Fail(err)
	}

	if *summary {
		fmt.Print(idl.Print(doc))
	}
	color.Green("Wrote %s (%d instructions, %d accounts, %d events, %d types) in %s",
		path, len(doc.Instructions), len(doc.Accounts), len(doc.Events), len(doc.Types), duration)
}

// run parses and assembles the source tree, printing every error it stops on.
func run(cfg *config.Config, jobs int, dumpAST bool) (*idl.IDL, bool) {
	if cfg.Program == "" {
		report(nil, errors.NewError("", "program name is not set", ast.Position{}).
			WithHelp("set 'program' in "+config.FileName+" or pass -program").
			Build())
		return nil, false
	}
	programKey, err := cfg.ProgramKey()
	if err != nil {
		report(nil, errors.NewError(errors.ErrorInvalidProgramID, err.Error(), ast.Position{}).
			WithHelp("set 'program_id' in "+config.FileName+" or pass -program-id").
			Build())
		return nil, false
	}

	paths, err := parser.Discover(cfg.Src, cfg.Extensions)
	if err != nil {
		report(nil, errors.NewError(errors.ErrorSourceUnreadable, err.Error(), ast.Position{}).
			WithHelp("check 'src' and 'extensions' in "+config.FileName).
			Build())
		return nil, false
	}
	sources, err := parser.ParseFiles(context.Background(), paths, jobs)
	if err != nil {
		report(nil, errors.NewError(errors.ErrorSourceUnreadable, err.Error(), ast.Position{}).Build())
		return nil, false
	}

	assemblerConfig := idl.Config{
		ProgramName: cfg.Program,
		ProgramID:   programKey,
		Strict:      cfg.Strict,
	}
	if len(cfg.KnownAccounts) > 0 {
		known, err := idl.DefaultKnownAccounts(programKey)
		if err == nil {
			err = known.Add(cfg.KnownAccounts)
		}
		if err != nil {
			report(nil, errors.NewError("", err.Error(), ast.Position{}).Build())
			return nil, false
		}
		assemblerConfig.KnownAccounts = known
	}

	a, err := idl.NewAssembler(assemblerConfig)
	if err != nil {
		report(nil, errors.NewError(errors.ErrorInvalidProgramID, err.Error(), ast.Position{}).Build())
		return nil, false
	}

	byPath := make(map[string]*parser.Source, len(sources))
	for _, src := range sources {
		byPath[src.Path] = src
		if dumpAST {
			fmt.Println(src.Result.File.String())
		}
	}

	ok := true
	for _, src := range sources {
		if err := a.AddFile(src.Result.File); err != nil {
			ce, isCompilerError := err.(*errors.CompilerError)
			if !isCompilerError {
				ce = errors.NewError("", err.Error(), ast.Position{}).Build()
			}
			report(byPath[ce.Position.Filename], ce)
			ok = false
			break
		}
	}

	for _, w := range a.Warnings() {
		report(byPath[w.Position.Filename], w)
	}

	return a.Document(), ok
}

func report(src *parser.Source, err *errors.CompilerError) {
	reporter := errors.NewErrorReporter("", "")
	if src != nil {
		reporter = errors.NewErrorReporter(src.Path, src.Text)
	}
	fmt.Fprint(os.Stderr, reporter.FormatError(err))
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}
