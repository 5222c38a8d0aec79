package record

import (
	"fmt"
	"go/token"

	"github.com/fatih/structtag"
)

// ParseMarkers turns a struct tag into markers, one per tag key, in the order
// they appear. An empty tag value is a marker without argument.
func ParseMarkers(tag string, pos token.Position) ([]Marker, error) {
	if tag == "" {
		return nil, nil
	}
	tags, err := structtag.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse tag %q: %w", tag, err)
	}
	if tags == nil {
		return nil, nil
	}
	var markers []Marker
	for _, t := range tags.Tags() {
		arg := t.Value()
		markers = append(markers, Marker{Ident: t.Key, Arg: arg, HasArg: arg != "", Pos: pos})
	}
	return markers, nil
}

// FindMarker returns the first marker on f with the given identifier.
func FindMarker(f *Field, ident string) (*Marker, bool) {
	for i := range f.Markers {
		if f.Markers[i].Ident == ident {
			return &f.Markers[i], true
		}
	}
	return nil, false
}
