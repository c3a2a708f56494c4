// Package main provides the CLI entrypoint for jsonmap.
//
// jsonmap reshapes JSON, YAML or TOML documents with a declarative mapping
// spec:
//   - map: apply a spec to a source document
//   - check: report every problem in a spec, optionally against a sample source
//   - version: print version info
package main

import "json-mapper/cmd/jsonmap/cmd"

func main() {
	cmd.Execute()
}
