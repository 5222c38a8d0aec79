package generator

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/calumari/deref/internal/record"
)

// loadDir loads the Go package(s) for a directory. Files guarded by
// `//go:build !derefgen` (previous output) are left out.
func loadDir(ctx context.Context, dir string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles,
		Dir:        dir,
		BuildFlags: []string{"-tags=" + buildTag},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	var result []*packages.Package
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, p.Errors[0]
		}
		result = append(result, p)
	}
	return result, nil
}

// discoverTypes resolves the requested type names, or, when none are given,
// every struct in the package with a field tagged with the marker.
func discoverTypes(pkg *packages.Package, names []string) ([]*types.TypeName, error) {
	scope := pkg.Types.Scope()
	if len(names) > 0 {
		var objs []*types.TypeName
		var missing []string
		for _, name := range names {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				missing = append(missing, name)
				continue
			}
			objs = append(objs, tn)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("types not found: %s", strings.Join(missing, ", "))
		}
		return objs, nil
	}

	var objs []*types.TypeName
	for _, name := range scope.Names() { // sorted
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}
		if hasMarkedField(st) {
			objs = append(objs, tn)
		}
	}
	if len(objs) == 0 {
		return nil, fmt.Errorf("no struct in package %s has a field tagged %q", pkg.PkgPath, MarkerIdent)
	}
	return objs, nil
}

func hasMarkedField(st *types.Struct) bool {
	for i := 0; i < st.NumFields(); i++ {
		markers, err := record.ParseMarkers(st.Tag(i), token.Position{})
		if err != nil {
			// reported once the struct is converted
			if strings.Contains(st.Tag(i), MarkerIdent+":") {
				return true
			}
			continue
		}
		for _, m := range markers {
			if m.Ident == MarkerIdent {
				return true
			}
		}
	}
	return false
}

// recordFor converts a type definition into the generator's record view.
func recordFor(pkg *packages.Package, tn *types.TypeName) (record.Record, error) {
	rec := record.Record{Name: tn.Name(), Pos: pkg.Fset.Position(tn.Pos())}
	if tn.IsAlias() {
		rec.Shape = record.ShapeOther
		return rec, nil
	}
	if named, ok := tn.Type().(*types.Named); ok {
		tparams := named.TypeParams()
		for i := 0; i < tparams.Len(); i++ {
			rec.TypeParams = append(rec.TypeParams, tparams.At(i).Obj().Name())
		}
		for i := 0; i < named.NumMethods(); i++ {
			rec.Methods = append(rec.Methods, named.Method(i).Name())
		}
	}
	switch u := tn.Type().Underlying().(type) {
	case *types.Struct:
		rec.Shape = record.ShapeStruct
		for i := 0; i < u.NumFields(); i++ {
			v := u.Field(i)
			pos := pkg.Fset.Position(v.Pos())
			markers, err := record.ParseMarkers(u.Tag(i), pos)
			if err != nil {
				return rec, newError(KindMalformedArgument, rec.Name, pos, "field %s: %v", v.Name(), err)
			}
			rec.Fields = append(rec.Fields, record.Field{
				Name:    v.Name(),
				Index:   i,
				Type:    v.Type(),
				Markers: markers,
				Pos:     pos,
			})
		}
	case *types.Interface:
		rec.Shape = record.ShapeInterface
	default:
		rec.Shape = record.ShapeOther
	}
	return rec, nil
}
