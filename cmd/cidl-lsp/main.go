// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"cidl/internal/config"
	"cidl/internal/idl"
	"cidl/internal/lsp"

	"github.com/gagliardetto/solana-go"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "cidl"

var log = commonlog.GetLogger("cidl.lsp")

func main() {
	configPath := flag.String("config", config.FileName, "project file")
	verbosity := flag.Int("v", 1, "log verbosity")
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}

	// Diagnostics only need a stable program id, so a project without one
	// is checked against the system program.
	programID := solana.SystemProgramID
	if cfg.ProgramID != "" {
		if programID, err = cfg.ProgramKey(); err != nil {
			log.Errorf("%s", err)
			os.Exit(1)
		}
	}

	h := lsp.NewHandler(idl.Config{
		ProgramName: cfg.Program,
		ProgramID:   programID,
		Strict:      cfg.Strict,
	})

	handler := protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentCompletion:         h.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting cidl language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
