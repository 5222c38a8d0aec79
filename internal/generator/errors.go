package generator

import (
	"fmt"
	"go/token"
)

// Kind classifies a generation failure. A Kind is itself an error so callers
// can match failures with errors.Is(err, KindMissingMarker).
type Kind int

const (
	KindUnsupportedShape Kind = iota + 1
	KindMissingMarker
	KindMalformedArgument
	KindAmbiguousMarker
	KindUnaddressableField
	KindNameConflict
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedShape:
		return "unsupported shape"
	case KindMissingMarker:
		return "missing required marker"
	case KindMalformedArgument:
		return "malformed marker argument"
	case KindAmbiguousMarker:
		return "ambiguous marker"
	case KindUnaddressableField:
		return "unaddressable field"
	case KindNameConflict:
		return "name conflict"
	default:
		return "unknown"
	}
}

func (k Kind) Error() string { return k.String() }

// Error is a failure tied to one type definition. Generation for that type
// is abandoned; other types are still analyzed.
type Error struct {
	Kind    Kind
	Type    string // type name the failure belongs to
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind Kind, typeName string, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Type: typeName, Message: fmt.Sprintf(format, args...), Pos: pos}
}
