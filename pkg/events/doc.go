// Package events holds the Go bindings generated from testdata/idl/ivy.json.
package events

//go:generate go run ../../cmd/cidl-bindgen -idl ../../testdata/idl/ivy.json -o . -package events
