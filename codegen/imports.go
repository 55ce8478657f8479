package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"strings"
)

var (
	majorVersionElem   = regexp.MustCompile(`^v[0-9]+$`)
	majorVersionSuffix = regexp.MustCompile(`\.v[0-9]+$`)
)

// importSpec is one line of the generated import block.
type importSpec struct {
	Alias string
	Path  string
	name  string
}

// parseImport accepts "path" or "name path".
func parseImport(imp string) (importSpec, error) {
	fields := strings.Fields(imp)

	var spec importSpec

	switch len(fields) {
	case 1:
		spec.Path = fields[0]
	case 2: //nolint:mnd
		spec.Alias, spec.Path = fields[0], fields[1]
		if !token.IsIdentifier(spec.Alias) {
			return importSpec{}, fmt.Errorf("%w: import name %q is not a Go identifier", ErrInvalidDefinition, spec.Alias)
		}
	default:
		return importSpec{}, fmt.Errorf("%w: bad import %q", ErrInvalidDefinition, imp)
	}

	if strings.ContainsAny(spec.Path, "\"`\\") {
		return importSpec{}, fmt.Errorf("%w: bad import path %q", ErrInvalidDefinition, spec.Path)
	}

	spec.name = spec.Alias
	if spec.name == "" {
		spec.name = guessPackageName(spec.Path)
	}

	return spec, nil
}

func guessPackageName(importPath string) string {
	name := path.Base(importPath)
	if majorVersionElem.MatchString(name) {
		name = path.Base(path.Dir(importPath))
	}

	name = majorVersionSuffix.ReplaceAllString(name, "")
	name = strings.TrimPrefix(name, "go-")

	return name
}

// selectorRoots collects every identifier x appearing as x.Sel in the value
// type and the entry values. Expressions that do not parse are skipped;
// Validate reports them.
func (d *Definition) selectorRoots() map[string]bool {
	roots := make(map[string]bool)

	exprs := make([]string, 0, len(d.Entries)+1)
	exprs = append(exprs, d.Value)

	for _, e := range d.Entries {
		exprs = append(exprs, e.Value)
	}

	for _, src := range exprs {
		expr, err := parser.ParseExpr(src)
		if err != nil {
			continue
		}

		ast.Inspect(expr, func(n ast.Node) bool {
			if sel, ok := n.(*ast.SelectorExpr); ok {
				if id, ok := sel.X.(*ast.Ident); ok {
					roots[id.Name] = true
				}
			}

			return true
		})
	}

	return roots
}

// imports returns the runtime imports followed by the definition's imports
// that some expression uses, without duplicates.
func (d *Definition) imports() ([]importSpec, error) {
	specs := []importSpec{
		{Path: ModulePath + "/compare", name: "compare"},
		{Path: ModulePath + "/staticmap", name: "staticmap"},
	}

	seen := map[string]bool{specs[0].Path: true, specs[1].Path: true}
	used := d.selectorRoots()

	for _, imp := range d.Imports {
		spec, err := parseImport(imp)
		if err != nil {
			return nil, err
		}

		if seen[spec.Path] || !used[spec.name] {
			continue
		}

		seen[spec.Path] = true
		specs = append(specs, spec)
	}

	return specs, nil
}
