package cmd

import (
	"fmt"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is set at build time with -ldflags "-X json-mapper/cmd/jsonmap/cmd.Version=...".
var Version = "dev"

// VersionInfo is printed by the version command.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var (
		shortPrint bool
		output     string
	)

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Example: `jsonmap version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "yaml" && output != "json" {
				return fmt.Errorf("output format must be yaml or json")
			}

			if shortPrint {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return nil
			}

			info := VersionInfo{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			var (
				marshalled []byte
				err        error
			)

			if output == "json" {
				marshalled, err = json.Marshal(info)
			} else {
				marshalled, err = yaml.Marshal(info)
			}

			if err != nil {
				return fmt.Errorf("fail to marshal %s: %w", output, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(marshalled))

			return nil
		},
	}

	versionCmd.Flags().BoolVar(&shortPrint, "short", false, "If true, print just the version number.")
	versionCmd.Flags().StringVarP(&output, "output", "o", "yaml", "choose `yaml` or `json` format to print version info")

	return versionCmd
}
