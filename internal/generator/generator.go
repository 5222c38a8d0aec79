package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"github.com/calumari/deref/internal/record"
)

// generator holds the settings of one run.
type generator struct {
	cfg    Config
	logger *slog.Logger
}

// Run loads the package in cfg.Dir, plans the delegations of the selected
// structs and writes them to cfg.Output. Nothing is written when any struct
// fails; every failure is returned.
func Run(ctx context.Context, cfg Config) error { return newGenerator(cfg).run(ctx) }

func newGenerator(cfg Config) *generator {
	cfg.applyDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &generator{cfg: cfg, logger: logger}
}

func (g *generator) options(pkgPath string) Options {
	return Options{
		ReadMethod:  g.cfg.ReadMethod,
		WriteMethod: g.cfg.WriteMethod,
		Strict:      g.cfg.Strict,
		PkgPath:     pkgPath,
	}
}

// generateAll plans every record independently. Records share no state, so
// they are processed concurrently; results keep the order of recs.
func (g *generator) generateAll(ctx context.Context, recs []record.Record, pkgPath string) ([]Delegation, error) {
	opts := g.options(pkgPath)
	results := make([]*Delegation, len(recs))
	errs := make([]error, len(recs))

	var eg errgroup.Group
	if g.cfg.Concurrency > 0 {
		eg.SetLimit(g.cfg.Concurrency)
	}
	for i := range recs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			rec := recs[i]
			if shadowed := shadowedFields(rec); len(shadowed) > 0 && !opts.Strict {
				g.logger.Warn("ignoring additional tagged fields", "type", rec.Name, "fields", shadowed)
			}
			d, err := Generate(rec, opts)
			if err != nil {
				errs[i] = err
				return nil
			}
			g.logger.Debug("planned delegation", "type", d.Name, "field", d.Field, "mutable", d.Write != "")
			if g.cfg.Debug {
				g.logger.Debug("delegation model", "type", d.Name, "model", spew.Sdump(d))
			}
			results[i] = d
			return nil
		})
	}
	_ = eg.Wait() // workers report through errs

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	out := make([]Delegation, 0, len(results))
	for _, d := range results {
		out = append(out, *d)
	}
	return out, nil
}

// mergeImports unions the imports of all delegations. Two different paths
// sharing a package name cannot be told apart in the output.
func mergeImports(ds []Delegation) ([]importModel, error) {
	byPath := map[string]importModel{}
	byName := map[string]string{}
	for _, d := range ds {
		for _, im := range d.Imports {
			if other, ok := byName[im.Name]; ok && other != im.Path {
				return nil, fmt.Errorf("package name %q is used by both %s and %s", im.Name, other, im.Path)
			}
			byName[im.Name] = im.Path
			byPath[im.Path] = im
		}
	}
	list := make([]importModel, 0, len(byPath))
	for _, im := range byPath {
		list = append(list, im)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	return list, nil
}
