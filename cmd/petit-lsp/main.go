// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"petit/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "petit" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the PetitHandler (the language-specific handler)
	petitHandler := lsp.NewPetitHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     petitHandler.Initialize,
		Initialized:                    petitHandler.Initialized,
		Shutdown:                       petitHandler.Shutdown,
		SetTrace:                       petitHandler.SetTrace,
		TextDocumentDidOpen:            petitHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           petitHandler.TextDocumentDidClose,
		TextDocumentDidChange:          petitHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: petitHandler.TextDocumentSemanticTokensFull,
	}

	// Create a new GLSP (Go Language Server Protocol) server instance
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting petit LSP server", version)

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting petit LSP server:", err)
		os.Exit(1)
	}
}
