// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"time"

	"cidl/internal/bindgen"
	"cidl/internal/cli"
	"cidl/internal/config"
	"cidl/internal/idl"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var (
		configPath = flag.String("config", config.FileName, "project file")
		idlPath    = flag.String("idl", "", "interface document to read")
		outDir     = flag.String("o", ".", "output directory")
		pkg        = flag.String("package", "", "generated package name (overrides bindgen.package)")
		verbosity  = flag.Int("v", 0, "log verbosity")
	)
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		cli.Fail(err)
	}

	// without -idl, read the document cidl wrote for this project
	if *idlPath == "" {
		if cfg.Program == "" {
			cli.Errorf(os.Stderr, "Usage: cidl-bindgen -idl <file.json> [-o dir] [-package name]")
			os.Exit(1)
		}
		*idlPath = filepath.Join(cfg.Out, idl.FileName(cfg.Program))
	}
	if *pkg == "" {
		*pkg = cfg.Bindgen.Package
	}

	startTime := time.Now()

	doc, err := idl.Load(*idlPath)
	if err != nil {
		cli.Fail(err)
	}

	files, err := bindgen.New(doc, bindgen.Options{
		Package:   *pkg,
		Generics:  cfg.Bindgen.Generics,
		Catalogue: cfg.Catalogue(),
	}).Generate()
	if err != nil {
		cli.Fail(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		cli.Fail(err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			cli.Fail(err)
		}
		color.Green("Wrote %s (%d events) in %s", path, len(doc.Events), cli.FormatDuration(time.Since(startTime)))
	}
}
