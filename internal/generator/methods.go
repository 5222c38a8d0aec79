package generator

import (
	"github.com/calumari/deref/internal/record"
)

func (o Options) withDefaults() Options {
	if o.ReadMethod == "" {
		o.ReadMethod = defaultReadMethod
	}
	if o.WriteMethod == "" {
		o.WriteMethod = defaultWriteMethod
	}
	return o
}

// Generate plans the delegation methods of one record. It is pure: the same
// record always yields the same delegation or the same failure, and nothing
// is emitted on failure.
//
// The record must be a struct with a field tagged `deref:"true"` or
// `deref:"false"`. The read delegation is always planned; the write
// delegation only for "true".
func Generate(rec record.Record, opts Options) (*Delegation, error) {
	opts = opts.withDefaults()
	if rec.Shape != record.ShapeStruct {
		return nil, newError(KindUnsupportedShape, rec.Name, rec.Pos,
			"only struct types can delegate to a field, got %s", rec.Shape)
	}

	target, ok := record.IdentifyMarkedField(rec.Fields, MarkerIdent)
	if !ok {
		return nil, newError(KindMissingMarker, rec.Name, rec.Pos,
			"no field is tagged %q; tag the delegated field with `%s:\"false\"` or `%s:\"true\"`",
			MarkerIdent, MarkerIdent, MarkerIdent)
	}
	if err := checkAmbiguity(rec, target, opts.Strict); err != nil {
		return nil, err
	}

	marker := target.Marker()
	if !marker.HasArg {
		return nil, newError(KindMalformedArgument, rec.Name, marker.Pos,
			"field %s: %q needs a boolean argument", target.Name(), MarkerIdent)
	}
	mutable, ok := parseBoolLiteral(marker.Arg)
	if !ok {
		return nil, newError(KindMalformedArgument, rec.Name, marker.Pos,
			"field %s: %q is not a boolean literal", target.Name(), marker.Arg)
	}
	if !isSelectable(target.Name()) {
		return nil, newError(KindUnaddressableField, rec.Name, target.Inner().Pos,
			"field %s cannot be selected", target.Name())
	}

	field := target.Inner()
	resolver := newTypeResolver(opts.PkgPath)
	d := &Delegation{
		Name:       rec.Name,
		TypeParams: rec.TypeParams,
		Field:      target.Name(),
		FieldType:  resolver.typeString(field.Type),
		Read:       opts.ReadMethod,
		Pos:        field.Pos.String(),
	}
	if mutable {
		d.Write = opts.WriteMethod
	}
	if err := checkMethodNames(rec, d); err != nil {
		return nil, err
	}
	d.Imports = resolver.importList()

	taken := make(map[string]bool, len(rec.TypeParams)+len(d.Imports))
	for _, tp := range rec.TypeParams {
		taken[tp] = true
	}
	for _, im := range d.Imports {
		taken[im.Name] = true
	}
	d.Receiver = receiverName(rec.Name, taken)
	return d, nil
}
