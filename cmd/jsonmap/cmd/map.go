package cmd

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"json-mapper/internal/mapping"
	"json-mapper/mapper"
	"json-mapper/value"
)

const stdinPath = "-"

var exampleForMapCmd = `
  jsonmap map --spec person.yaml --source person.json
  cat person.json | jsonmap map --spec person.yaml -o yaml
  jsonmap map --spec person.toml --source person.json --out result.yaml
`

// NewMapCmd creates the map command.
func NewMapCmd(opts *rootOpts) *cobra.Command {
	mapCmd := &cobra.Command{
		Use:     "map",
		Short:   "Apply a mapping spec to a source document",
		Args:    cobra.NoArgs,
		Example: exampleForMapCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath, err := opts.requiredString("spec")
			if err != nil {
				return err
			}

			spec, err := mapping.LoadFile(specPath)
			if err != nil {
				return err
			}

			sourcePath := opts.config.GetString("source")

			source, err := loadSource(cmd, sourcePath)
			if err != nil {
				return err
			}

			m := mapper.New(mapper.Config{
				MaxDepth: opts.config.GetInt("max-depth"),
				Logger:   logrus.StandardLogger(),
			})

			result, err := m.MapValue(source, spec, mapper.DefaultRegistry())
			if err != nil {
				return fmt.Errorf("failed to map %s: %w", sourcePath, err)
			}

			logrus.Debugf("mapped %d top-level fields", result.Len())

			if opts.config.GetBool("dump") {
				spew.Fdump(cmd.ErrOrStderr(), result)
			}

			if outPath := opts.config.GetString("out"); outPath != "" {
				return mapping.WriteFile(result, outPath)
			}

			format, err := mapping.ParseFormat(opts.config.GetString("output"))
			if err != nil {
				return err
			}

			return mapping.Write(cmd.OutOrStdout(), result, format)
		},
	}

	mapCmd.Flags().StringP("spec", "s", "", "mapping spec file (json, yaml or toml), required")
	mapCmd.Flags().String("source", stdinPath, "source document, - reads JSON from stdin")
	mapCmd.Flags().String("out", "", "write the result to this file, format by extension")
	mapCmd.Flags().StringP("output", "o", "json", "output format: json, yaml or toml")
	mapCmd.Flags().Int("max-depth", 0, "limit nesting of array sub-specs, 0 means no limit")
	mapCmd.Flags().Bool("dump", false, "dump the mapped value to stderr")

	return mapCmd
}

// loadSource reads the source document from path, or JSON from stdin.
func loadSource(cmd *cobra.Command, path string) (value.Value, error) {
	if path == "" {
		return nil, errors.New("source path is empty")
	}

	if path == stdinPath {
		v, err := mapping.Read(cmd.InOrStdin(), mapping.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read source from stdin: %w", err)
		}

		return v, nil
	}

	return mapping.LoadFile(path)
}
