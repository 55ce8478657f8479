package codegen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"hash"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amp-labs/staticmap/assert"
	"github.com/amp-labs/staticmap/compare"
	staticerrors "github.com/amp-labs/staticmap/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when a definition file's extension is not
// one of .yaml, .yml or .json.
var ErrUnknownFileType = errors.New("definition file doesn't have a known file suffix")

// ErrInvalidDefinition wraps every problem Validate finds.
var ErrInvalidDefinition = errors.New("invalid table definition")

// KeyKind selects the Go key type and ordering of a generated table.
type KeyKind string

const (
	// KeyInt keys are Go ints in numeric order.
	KeyInt KeyKind = "int"
	// KeyString keys are Go strings in byte order.
	KeyString KeyKind = "string"
	// KeyNatural keys are Go strings in natural order ("a2" < "a10").
	KeyNatural KeyKind = "natural"
)

// EntryDef is one row of a definition. Key is decoded loosely (YAML ints,
// JSON numbers, strings) and checked against the definition's KeyKind by
// Validate. Value is a Go expression copied verbatim into the output.
type EntryDef struct {
	Key   any    `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Definition describes one generated table.
//
// Imports lists the packages that Value and the entry values refer to, each
// either as an import path or as "name path". Without an explicit name the
// package name is taken from the last path element, skipping a major-version
// element ("pond/v2" is pond) and trimming a ".vN" suffix ("yaml.v3" is yaml)
// and a "go-" prefix. Imports whose name no expression selects from are left
// out of the generated file.
type Definition struct {
	Package string     `json:"package"           yaml:"package"`
	Name    string     `json:"name"              yaml:"name"`
	Key     KeyKind    `json:"key"               yaml:"key"`
	Value   string     `json:"value"             yaml:"value"`
	Imports []string   `json:"imports,omitempty" yaml:"imports,omitempty"`
	Entries []EntryDef `json:"entries"           yaml:"entries"`

	// Source is the file the definition was loaded from, if any.
	Source string `json:"-" yaml:"-"`
}

// Load reads a definition from a .yaml, .yml or .json file. It does not
// validate the result.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	def.Source = path

	return def, nil
}

// Parse decodes a definition. ext is the file extension that names the
// format (".yaml", ".yml" or ".json", case-insensitive).
func Parse(data []byte, ext string) (*Definition, error) {
	var def Definition

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		if err := dec.Decode(&def); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileType, ext)
	}

	return &def, nil
}

// Validate reports every problem with the definition at once, joined into a
// single error wrapping ErrInvalidDefinition (and ErrDuplicateKey when keys
// repeat).
func (d *Definition) Validate() error {
	var errs staticerrors.Collection

	if !token.IsIdentifier(d.Package) {
		errs.Addf("%w: package %q is not a Go identifier", ErrInvalidDefinition, d.Package)
	}

	if !token.IsIdentifier(d.Name) {
		errs.Addf("%w: name %q is not a Go identifier", ErrInvalidDefinition, d.Name)
	}

	if _, err := parser.ParseExpr(d.Value); err != nil {
		errs.Addf("%w: value type %q does not parse: %w", ErrInvalidDefinition, d.Value, err)
	}

	for _, imp := range d.Imports {
		if _, err := parseImport(imp); err != nil {
			errs.Add(err)
		}
	}

	switch d.Key {
	case KeyInt, KeyString, KeyNatural:
	default:
		errs.Addf("%w: key kind %q must be one of int, string, natural", ErrInvalidDefinition, d.Key)
		// Keys can't be checked without knowing their kind.
		return errs.GetError()
	}

	seen := make(map[string]int, len(d.Entries))

	for i, e := range d.Entries {
		canon, err := d.canonicalKey(e.Key)
		if err != nil {
			errs.Addf("%w: entry %d: %w", ErrInvalidDefinition, i, err)

			continue
		}

		if prev, dup := seen[canon]; dup {
			errs.Addf("%w: entry %d repeats the key of entry %d (%s)", staticerrors.ErrDuplicateKey, i, prev, canon)
		} else {
			seen[canon] = i
		}

		if _, err := parser.ParseExpr(e.Value); err != nil {
			errs.Addf("%w: entry %d: value %q does not parse: %w", ErrInvalidDefinition, i, e.Value, err)
		}
	}

	return errs.GetError()
}

// canonicalKey turns a loosely decoded key into the Go literal that will
// appear in generated source. Two keys are duplicates exactly when their
// canonical forms match.
func (d *Definition) canonicalKey(raw any) (string, error) {
	switch d.Key {
	case KeyInt:
		n, err := intKey(raw)
		if err != nil {
			return "", err
		}

		return strconv.Itoa(n), nil
	default:
		s, err := keyString(raw)
		if err != nil {
			return "", err
		}

		return strconv.Quote(s), nil
	}
}

func keyString(raw any) (string, error) {
	return assert.Type[string](raw)
}

func intKey(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, fmt.Errorf("%w: key %d overflows int", ErrInvalidDefinition, v)
		}

		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt || v < math.MinInt {
			return 0, fmt.Errorf("%w: key %v is not an integer", ErrInvalidDefinition, v)
		}

		return int(v), nil
	case json.Number:
		return strconv.Atoi(v.String())
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("%w: expected an integer key, but received %T", staticerrors.ErrWrongType, raw)
	}
}

// keyType is the Go type of the generated table's keys.
func (d *Definition) keyType() string {
	if d.Key == KeyInt {
		return "int"
	}

	return "string"
}

// lessExpr is the Go expression for the generated table's key ordering.
func (d *Definition) lessExpr() string {
	switch d.Key {
	case KeyNatural:
		return "compare.Natural"
	case KeyInt:
		return "compare.Ordered[int]()"
	default:
		return "compare.Ordered[string]()"
	}
}

// UpdateHash feeds a canonical rendering of the definition into h, so that
// the fingerprint ignores formatting and file type but changes with any
// meaningful edit. Entries are hashed in file order.
func (d *Definition) UpdateHash(h hash.Hash) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "package\x00%s\nname\x00%s\nkey\x00%s\nvalue\x00%s\n", d.Package, d.Name, d.Key, d.Value)

	for _, imp := range d.Imports {
		fmt.Fprintf(&buf, "import\x00%s\n", imp)
	}

	for _, e := range d.Entries {
		canon, err := d.canonicalKey(e.Key)
		if err != nil {
			return err
		}

		fmt.Fprintf(&buf, "entry\x00%s\x00%s\n", canon, e.Value)
	}

	_, err := h.Write(buf.Bytes())

	return err
}

// less returns the ordering used to pre-sort entries, matching lessExpr.
func (d *Definition) less() compare.LessFunc[row] {
	switch d.Key {
	case KeyInt:
		return compare.ByKey(func(r row) int { return r.intKey }, compare.Ordered[int]())
	case KeyNatural:
		return compare.ByKey(func(r row) string { return r.strKey }, compare.Natural)
	default:
		return compare.ByKey(func(r row) string { return r.strKey }, compare.Ordered[string]())
	}
}
