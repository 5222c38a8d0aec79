package generator

import (
	"strings"

	"github.com/calumari/deref/internal/record"
)

// shadowedFields lists, in declared order, the resolved names of tagged
// fields that lose to an earlier tagged field.
func shadowedFields(rec record.Record) []string {
	var names []string
	seen := false
	for i := range rec.Fields {
		if _, ok := record.FindMarker(&rec.Fields[i], MarkerIdent); !ok {
			continue
		}
		if seen {
			names = append(names, rec.Fields[i].ResolvedName())
		}
		seen = true
	}
	return names
}

// checkAmbiguity rejects a record with several tagged fields when strict is
// set. Without strict the first tagged field wins.
func checkAmbiguity(rec record.Record, target record.MarkedField, strict bool) error {
	if !strict {
		return nil
	}
	shadowed := shadowedFields(rec)
	if len(shadowed) == 0 {
		return nil
	}
	return newError(KindAmbiguousMarker, rec.Name, target.Inner().Pos,
		"field %s is tagged %q, but so are %s", target.Name(), MarkerIdent, strings.Join(shadowed, ", "))
}

// checkMethodNames rejects delegation methods whose names are already used by
// a field or a declared method of the record.
func checkMethodNames(rec record.Record, d *Delegation) error {
	methods := make(map[string]bool, len(rec.Methods))
	for _, m := range rec.Methods {
		methods[m] = true
	}
	for _, name := range []string{d.Read, d.Write} {
		if name == "" {
			continue
		}
		for i := range rec.Fields {
			if rec.Fields[i].Name == name {
				return newError(KindNameConflict, rec.Name, rec.Fields[i].Pos,
					"field %s has the name of the generated method", name)
			}
		}
		if methods[name] {
			return newError(KindNameConflict, rec.Name, rec.Pos,
				"method %s is already declared", name)
		}
	}
	return nil
}
