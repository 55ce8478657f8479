package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/amp-labs/staticmap/hashing"
	"github.com/amp-labs/staticmap/sorted"
)

// ModulePath is the import path prefix used for the runtime packages that
// generated code depends on.
const ModulePath = "github.com/amp-labs/staticmap"

// Header is the first line of every generated file.
const Header = "// Code generated by staticmapgen. DO NOT EDIT."

const fingerprintPrefix = "// fingerprint: "

// ErrStale is returned in check mode when an output is missing or was
// generated from a different definition.
var ErrStale = errors.New("generated file is out of date")

// Options controls Generate.
type Options struct {
	// Hash names the fingerprint algorithm (see hashing.ByName). Empty means xxh3.
	Hash string
}

// row is an entry with its key decoded, ready for sorting and rendering.
type row struct {
	intKey  int
	strKey  string
	literal string
	value   string
}

type templateData struct {
	Header      string
	Source      string
	Fingerprint string
	Package     string
	Imports     []importSpec
	Name        string
	KeyType     string
	ValueType   string
	Less        string
	Rows        []row
}

// Literal and Value are exported through methods so the template can read
// the unexported row fields.
func (r row) Literal() string { return r.literal }
func (r row) Value() string   { return r.value }

var fileTemplate = template.Must(template.New("table").Parse(`{{ .Header }}
{{- if .Source }}
// source: {{ .Source }}
{{- end }}
// fingerprint: {{ .Fingerprint }}

package {{ .Package }}

import (
{{- range .Imports }}
	{{ if .Alias }}{{ .Alias }} {{ end }}{{ printf "%q" .Path }}
{{- end }}
)

var {{ .Name }} = staticmap.MustFromSorted(
	{{ .Less }},
	[]staticmap.Entry[{{ .KeyType }}, {{ .ValueType }}]{
{{- range .Rows }}
		{Key: {{ .Literal }}, Value: {{ .Value }}},
{{- end }}
	}...,
)
`))

// Generate validates def and renders it as gofmt'ed Go source. Entries are
// emitted in ascending key order so the generated table only verifies order
// at start-up.
func Generate(def *Definition, opts Options) ([]byte, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	hashName := opts.Hash
	if hashName == "" {
		hashName = DefaultHash
	}

	fingerprint, err := Fingerprint(def, hashName)
	if err != nil {
		return nil, err
	}

	rows, err := def.rows()
	if err != nil {
		return nil, err
	}

	imports, err := def.imports()
	if err != nil {
		return nil, err
	}

	data := templateData{
		Header:      Header,
		Source:      sourceName(def.Source),
		Fingerprint: fingerprint,
		Package:     def.Package,
		Imports:     imports,
		Name:        def.Name,
		KeyType:     def.keyType(),
		ValueType:   def.Value,
		Less:        def.lessExpr(),
		Rows:        sorted.New(def.less(), rows...).Clone(),
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", def.Name, err)
	}

	return out, nil
}

func sourceName(path string) string {
	if path == "" {
		return ""
	}

	return filepath.Base(path)
}

func (d *Definition) rows() ([]row, error) {
	rows := make([]row, 0, len(d.Entries))

	for _, e := range d.Entries {
		r := row{value: e.Value}

		if d.Key == KeyInt {
			n, err := intKey(e.Key)
			if err != nil {
				return nil, err
			}

			r.intKey = n
			r.literal = strconv.Itoa(n)
		} else {
			s, err := keyString(e.Key)
			if err != nil {
				return nil, err
			}

			r.strKey = s
			r.literal = strconv.Quote(s)
		}

		rows = append(rows, r)
	}

	return rows, nil
}

// DefaultHash is the fingerprint algorithm used when none is configured.
const DefaultHash = "xxh3"

// Fingerprint hashes the canonical form of def with the named algorithm and
// returns "<algo>:<hex>".
func Fingerprint(def *Definition, hashName string) (string, error) {
	hf, err := hashing.ByName(hashName)
	if err != nil {
		return "", err
	}

	sum, err := hf(def)
	if err != nil {
		return "", err
	}

	return hashName + ":" + sum, nil
}

// ReadFingerprint extracts the fingerprint line from generated source. The
// second result is false when generated carries no fingerprint.
func ReadFingerprint(generated []byte) (string, bool) {
	for line := range strings.SplitSeq(string(generated), "\n") {
		if fp, ok := strings.CutPrefix(strings.TrimSpace(line), fingerprintPrefix); ok {
			return strings.TrimSpace(fp), true
		}

		if strings.HasPrefix(line, "package ") {
			break
		}
	}

	return "", false
}

// IsStale reports whether generated was produced from something other than
// def. The algorithm recorded in generated is reused, so switching the
// default hash does not by itself make files stale. Anything unreadable is
// stale.
func IsStale(generated []byte, def *Definition) bool {
	recorded, ok := ReadFingerprint(generated)
	if !ok {
		return true
	}

	algo, _, found := strings.Cut(recorded, ":")
	if !found {
		return true
	}

	current, err := Fingerprint(def, algo)
	if err != nil {
		return true
	}

	return current != recorded
}
