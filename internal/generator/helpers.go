package generator

import (
	"go/token"
	"unicode"
)

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// receiverName picks a one letter receiver for typeName that does not clash
// with any name in taken.
func receiverName(typeName string, taken map[string]bool) string {
	name := "r"
	if typeName != "" {
		name = lowerFirst(string([]rune(typeName)[:1]))
	}
	if !isSelectable(name) || taken[name] {
		name = "recv"
	}
	for taken[name] {
		name += "_"
	}
	return name
}

// parseBoolLiteral accepts exactly the Go boolean literals.
func parseBoolLiteral(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// isSelectable reports whether name can follow a selector dot.
func isSelectable(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}
