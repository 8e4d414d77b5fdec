package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"cidl/internal/ast"
	"cidl/internal/idl"
	"cidl/internal/parser"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("cidl.lsp")

// SemanticTokenTypes is the legend advertised to the client. Token type
// indexes in responses point into this slice.
var SemanticTokenTypes = []string{
	"type",
	"function",
	"variable",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
	"comment",
	"macro",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// document is one open header and what was last parsed from it
type document struct {
	uri     protocol.DocumentUri
	content string
	result  *parser.ParseResult
}

// Handler serves annotated C headers. Every open document is parsed on change
// and the open set is assembled together, so cross-file references resolve
// as long as the referenced header is open too.
type Handler struct {
	mu        sync.RWMutex
	docs      map[string]*document
	assembler idl.Config
}

func NewHandler(cfg idl.Config) *Handler {
	return &Handler{
		docs:      make(map[string]*document),
		assembler: cfg,
	}
}

// Initialize advertises full document sync, completion and semantic tokens
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{" "},
				ResolveProvider:   ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.update(params.TextDocument.URI, path, params.TextDocument.Text)
	h.publish(ctx)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	// Full sync: the last whole-document change wins.
	text, ok := "", false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		}
	}
	if !ok {
		return nil
	}

	h.update(params.TextDocument.URI, path, text)
	h.publish(ctx)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.docs, path)
	h.mu.Unlock()

	// the closed file keeps no stale diagnostics
	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	h.publish(ctx)
	return nil
}

// TextDocumentCompletion offers directive keywords inside "#idl" comments.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	doc, err := h.getOrLoad(params.TextDocument.URI, path)
	if err != nil {
		return nil, err
	}

	prefix := linePrefix(doc.content, params.Position)
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completeDirective(prefix),
	}, nil
}

// TextDocumentSemanticTokensFull encodes the tokens of a whole document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	doc, err := h.getOrLoad(params.TextDocument.URI, path)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(path, doc.content, doc.result.File)

	var data []uint32
	var prevLine, prevStart uint32

	// delta-line, delta-start encoding
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *Handler) update(uri protocol.DocumentUri, path, content string) *document {
	doc := &document{
		uri:     uri,
		content: content,
		result:  parser.ParseSource(path, content),
	}

	h.mu.Lock()
	h.docs[path] = doc
	h.mu.Unlock()
	return doc
}

// getOrLoad returns the cached document, reading it from disk when the
// client asks about a file it never opened.
func (h *Handler) getOrLoad(uri protocol.DocumentUri, path string) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[path]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return h.update(uri, path, string(content)), nil
}

// publish recomputes and sends diagnostics for every open document.
func (h *Handler) publish(ctx *glsp.Context) {
	h.mu.RLock()
	paths := make([]string, 0, len(h.docs))
	for path := range h.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	files := make([]*ast.File, 0, len(paths))
	uris := make(map[string]protocol.DocumentUri, len(paths))
	byPath := make(map[string][]protocol.Diagnostic, len(paths))
	for _, path := range paths {
		doc := h.docs[path]
		uris[path] = doc.uri
		files = append(files, doc.result.File)
		byPath[path] = append(ConvertScanErrors(doc.result.ScanErrors), ConvertParseErrors(doc.result.ParseErrors)...)
	}
	h.mu.RUnlock()

	for _, d := range assemble(h.assembler, files) {
		byPath[d.path] = append(byPath[d.path], d.diagnostic)
	}

	for _, path := range paths {
		diagnostics := byPath[path]
		if diagnostics == nil {
			diagnostics = []protocol.Diagnostic{}
		}
		sendDiagnosticNotification(ctx, uris[path], diagnostics)
	}
}

func linePrefix(content string, pos protocol.Position) string {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	if int(pos.Character) < len(line) {
		line = line[:pos.Character]
	}
	return line
}

// uriToPath converts a file URI to a platform-local path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// /C:/... on Windows
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
