// Package codegen turns a table definition (YAML or JSON) into Go source
// declaring a staticmap.Table whose entries are already in key order.
//
// It is the engine behind cmd/staticmapgen and is meant to run from a
// go:generate directive:
//
//	//go:generate go run github.com/amp-labs/staticmap/cmd/staticmapgen routes.yaml
//
// Every generated file records a fingerprint of its definition, so
// staticmapgen -check can tell when a definition changed without its output
// being regenerated.
package codegen
