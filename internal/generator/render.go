package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"github.com/calumari/deref/internal/record"
)

// run orchestrates loading, discovery, planning, and file emission.
func (g *generator) run(ctx context.Context) error {
	if err := g.cfg.validate(); err != nil {
		return err
	}
	absDir, err := filepath.Abs(g.cfg.Dir)
	if err != nil {
		return err
	}
	pkgs, err := loadDir(ctx, absDir)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages found in %s", absDir)
	}
	pkg := pkgs[0]
	g.logger.Debug("loaded package", "path", pkg.PkgPath, "dir", absDir)

	objs, err := discoverTypes(pkg, g.cfg.Types)
	if err != nil {
		return err
	}

	var errs []error
	recs := make([]record.Record, 0, len(objs))
	for _, tn := range objs {
		rec, err := recordFor(pkg, tn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, rec)
	}
	delegations, err := g.generateAll(ctx, recs, pkg.PkgPath)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return err
	}

	src, err := g.render(pkg.Name, delegations)
	if err != nil {
		return err
	}
	outPath := filepath.Join(absDir, g.cfg.Output)
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return err
	}
	g.logger.Info("wrote delegations", "file", outPath, "types", len(delegations))
	return nil
}

// render executes the file template and formats the result.
func (g *generator) render(pkgName string, ds []Delegation) ([]byte, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	imports, err := mergeImports(ds)
	if err != nil {
		return nil, err
	}
	data := fileModel{
		Package: pkgName,
		Imports: imports,
		Types:   ds,
		Debug:   g.cfg.Debug,
		Command: g.cfg.Command,
		Version: g.cfg.Version,
	}
	var out bytes.Buffer
	if err := fileTmpl.ExecuteTemplate(&out, tmplFile, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		g.logger.Warn("generated code is not gofmt clean", "error", err)
		formatted = out.Bytes()
	}
	return formatted, nil
}
