package record

import "github.com/calumari/deref/internal/meta"

// MarkedField is a field together with the marker that selected it and its
// resolved name. The field and marker point into the record they came from.
type MarkedField = meta.NamedMarked[*Field, *Marker, string]

// IdentifyField walks fields in declared order and stops at the first one
// accepted by predicate. The extra value produced by predicate and the
// field's resolved name are handed to mapper.
func IdentifyField[E, R any](
	fields []Field,
	predicate func(idx int, f *Field) (E, bool),
	mapper func(f *Field, extra E, name string) R,
) (R, bool) {
	for i := range fields {
		f := &fields[i]
		extra, ok := predicate(i, f)
		if !ok {
			continue
		}
		return mapper(f, extra, f.ResolvedName()), true
	}
	var zero R
	return zero, false
}

// IdentifyMarkedField returns the first field carrying a marker named ident.
// Later fields with the same marker are not considered.
func IdentifyMarkedField(fields []Field, ident string) (MarkedField, bool) {
	return IdentifyField(fields,
		func(_ int, f *Field) (*Marker, bool) { return FindMarker(f, ident) },
		meta.NewNamedMarked[*Field, *Marker, string],
	)
}

// CountMarked reports how many fields carry a marker named ident.
func CountMarked(fields []Field, ident string) int {
	n := 0
	for i := range fields {
		if _, ok := FindMarker(&fields[i], ident); ok {
			n++
		}
	}
	return n
}
