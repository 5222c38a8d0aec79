// Package record models a type definition as seen by the generator: an
// ordered list of fields, each carrying zero or more markers, and the
// traversal that finds the field a marker points at.
package record

import (
	"go/token"
	"go/types"
	"strconv"
)

// Shape classifies a type definition by its layout.
type Shape int

const (
	ShapeOther     Shape = iota // basic, slice, map, func, ... types
	ShapeStruct                 // fixed field layout
	ShapeInterface              // open set of implementations, a sum type in Go terms
)

func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeInterface:
		return "interface"
	default:
		return "other"
	}
}

// Record is a type definition with its fields in declared order.
type Record struct {
	Name       string
	Shape      Shape
	TypeParams []string // type parameter names, in declared order
	Fields     []Field
	Methods    []string // declared methods, outside generated files
	Pos        token.Position
}

// Field is one element of a record.
type Field struct {
	Name    string     // empty for positional fields
	Index   int        // 0-based position in the record
	Type    types.Type // declared type, never inspected by the locator
	Markers []Marker
	Pos     token.Position
}

// ResolvedName is the explicit name of the field, or its index when the field
// is positional.
func (f Field) ResolvedName() string { return ResolvedName(f.Name, f.Index) }

// ResolvedName derives a field name from an optional identifier and a
// position.
func ResolvedName(name string, index int) string {
	if name != "" {
		return name
	}
	return strconv.Itoa(index)
}

// Marker is a declarative annotation on a field.
type Marker struct {
	Ident  string
	Arg    string
	HasArg bool
	Pos    token.Position
}
