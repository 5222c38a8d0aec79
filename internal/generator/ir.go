package generator

import (
	"log/slog"
	"strings"
)

// This file houses the models shared across generator phases
// (discovery -> delegation -> render).

const (
	// MarkerIdent is the struct tag key selecting the delegated field.
	MarkerIdent = "deref"

	// buildTag is set while loading packages so previously generated files,
	// guarded by the negated tag, do not take part in analysis.
	buildTag = "derefgen"

	defaultOutput      = "deref_gen.go"
	defaultReadMethod  = "Deref"
	defaultWriteMethod = "DerefMut"
)

// Config holds generation settings for the delegation generator.
type Config struct {
	Dir         string       `yaml:"dir"`          // directory to load ("." relative to where command invoked)
	Types       []string     `yaml:"types"`        // struct names to process; empty means every tagged struct
	Output      string       `yaml:"output"`       // output filename
	ReadMethod  string       `yaml:"read_method"`  // name of the read delegation method
	WriteMethod string       `yaml:"write_method"` // name of the write delegation method
	Strict      bool         `yaml:"strict"`       // reject structs with more than one tagged field
	Debug       bool         `yaml:"debug"`        // annotate generated methods with their source field
	Concurrency int          `yaml:"concurrency"`  // max types analyzed at once; <= 0 means unbounded
	Command     string       `yaml:"-"`            // invocation shown in the generated header
	Version     string       `yaml:"-"`            // derefgen build version
	Logger      *slog.Logger `yaml:"-"`
}

// Options controls delegation for a single type.
type Options struct {
	ReadMethod  string
	WriteMethod string
	Strict      bool
	PkgPath     string // package the code is generated into; its types stay unqualified
}

// Delegation is the generated accessor set for one struct.
type Delegation struct {
	Name       string   // struct name
	TypeParams []string // type parameter names of a generic struct
	Receiver   string
	Field      string // resolved name of the delegated field
	FieldType  string // field type as written in the generated file
	Read       string // read delegation method name
	Write      string // write delegation method name; empty when not generated
	Pos        string // position of the delegated field, used in debug output
	Imports    []importModel
}

// TypeArgs renders the receiver type arguments, e.g. "[K, V]".
func (d Delegation) TypeArgs() string {
	if len(d.TypeParams) == 0 {
		return ""
	}
	return "[" + strings.Join(d.TypeParams, ", ") + "]"
}

// importModel is an import required by a delegated field type.
type importModel struct {
	Path  string
	Name  string
	Alias string // set when Name differs from the last path element
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Package string
	Imports []importModel
	Types   []Delegation
	Debug   bool
	Command string
	Version string
}
