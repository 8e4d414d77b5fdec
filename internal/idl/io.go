package idl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName returns the document file name for a program: its lower-cased name with .json.
func FileName(programName string) string {
	return strings.ToLower(programName) + ".json"
}

// Marshal encodes a document with four-space indentation.
func Marshal(doc *IDL) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write encodes a document to path, creating parent directories.
func Write(path string, doc *IDL) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a document from disk.
func Load(path string) (*IDL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Unmarshal(data)
}

func Unmarshal(data []byte) (*IDL, error) {
	var doc IDL
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return &doc, nil
}
