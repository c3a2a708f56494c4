package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"json-mapper/internal/mapping"
	"json-mapper/mapper"
	"json-mapper/value"
)

var exampleForCheckCmd = `
  jsonmap check --spec person.yaml
  jsonmap check --spec person.yaml --source sample.json --strict
`

// NewCheckCmd creates the check command.
func NewCheckCmd(opts *rootOpts) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Report every problem in a mapping spec",
		Args:    cobra.NoArgs,
		Example: exampleForCheckCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath, err := opts.requiredString("spec")
			if err != nil {
				return err
			}

			spec, err := mapping.LoadFile(specPath)
			if err != nil {
				return err
			}

			var sample value.Value

			if sourcePath := opts.config.GetString("source"); sourcePath != "" {
				sample, err = loadSource(cmd, sourcePath)
				if err != nil {
					return err
				}
			}

			result := mapping.Validate(spec, mapper.DefaultRegistry(), sample)

			out := cmd.OutOrStdout()
			for _, d := range result.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			logrus.Debugf("%d errors, %d warnings", len(result.Errors), len(result.Warnings))

			if result.HasErrors() {
				return fmt.Errorf("%s: %d errors found", specPath, len(result.Errors))
			}

			if opts.config.GetBool("strict") && result.HasWarnings() {
				return fmt.Errorf("%s: %d warnings found", specPath, len(result.Warnings))
			}

			fmt.Fprintf(out, "%s: ok\n", specPath)

			return nil
		},
	}

	checkCmd.Flags().StringP("spec", "s", "", "mapping spec file (json, yaml or toml), required")
	checkCmd.Flags().String("source", "", "sample source document to look rule paths up in, - reads JSON from stdin")
	checkCmd.Flags().Bool("strict", false, "fail on warnings too")

	return checkCmd
}
