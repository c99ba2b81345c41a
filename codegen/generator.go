// Package codegen turns an ontology into generated source files.
//
// # Architecture
//
// Generation has two layers:
//  1. A language Generator builds one fragment.File per concept (and per
//     module index) from the ontology, using the session's resolver for file
//     paths and import paths
//  2. The pipeline (Run) assigns type IDs, renders every file at the
//     configured width, and returns the results sorted by path
//
// Building and rendering a tree is pure and happens inside one worker, so
// files render concurrently without sharing fragments.
//
// # Design Decisions
//
//   - Type IDs come from the Session counter, assigned in ontology order
//     before any worker starts, so output is deterministic
//   - The generated-code banner carries the ontology's last commit on lines
//     CompareDirectories ignores, so `ontogen check` only flags real changes
//   - Module index files (mod.rs) owned by a concept are produced by that
//     concept's GenerateFile; GenerateIndex only covers the rest
//
// # Implementing a New Generator
//
// A generator for another concept layout implements Generator:
//
//	type MyGenerator struct{}
//
//	func (g *MyGenerator) Language() string      { return "rust" }
//	func (g *MyGenerator) FileExtension() string { return "rs" }
//	func (g *MyGenerator) GenerateFile(s *codegen.Session, c *ontology.Concept) (*fragment.File, error) {
//	    // Build the concept's file bottom-up from fragments
//	}
//	// ... GenerateIndex
package codegen

import (
	"github.com/teranos/ontogen/codegen/fragment"
	"github.com/teranos/ontogen/codegen/ontology"
)

// Generator builds fragment trees for one target layout.
type Generator interface {
	// Language returns the language name (e.g., "rust")
	Language() string

	// FileExtension returns the file extension without the dot (e.g., "rs")
	FileExtension() string

	// GenerateFile builds the file defining c. For a concept with its own
	// module the file is that module's mod.rs and also declares its members.
	GenerateFile(s *Session, c *ontology.Concept) (*fragment.File, error)

	// GenerateIndex builds the mod.rs of a module no concept owns.
	GenerateIndex(s *Session, m *ontology.ModuleIndex) (*fragment.File, error)
}

// GeneratedFile is one rendered output file.
type GeneratedFile struct {
	// Path is slash-separated and relative to the output directory
	Path    string
	Content string
}
