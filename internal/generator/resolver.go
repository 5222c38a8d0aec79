package generator

import (
	"go/types"
	"path"
	"sort"
)

// typeResolver renders types as they must be spelled inside the output
// package and remembers which imports those spellings rely on.
type typeResolver struct {
	pkgPath string
	imports map[string]string // import path -> package name
}

func newTypeResolver(pkgPath string) *typeResolver {
	return &typeResolver{pkgPath: pkgPath, imports: make(map[string]string)}
}

func (r *typeResolver) qualifier(p *types.Package) string {
	if p == nil || p.Path() == r.pkgPath {
		return ""
	}
	r.imports[p.Path()] = p.Name()
	return p.Name()
}

func (r *typeResolver) typeString(t types.Type) string {
	return types.TypeString(t, r.qualifier)
}

// importList returns the recorded imports sorted by path.
func (r *typeResolver) importList() []importModel {
	if len(r.imports) == 0 {
		return nil
	}
	list := make([]importModel, 0, len(r.imports))
	for p, name := range r.imports {
		im := importModel{Path: p, Name: name}
		if path.Base(p) != name {
			im.Alias = name
		}
		list = append(list, im)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	return list
}
