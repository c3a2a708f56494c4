package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"json-mapper/internal/logger"
)

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeNever,
	colorModeAlways,
}

const envPrefix = "JSONMAP"

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	colorMode   string

	// config holds values from the config file, JSONMAP_* variables and
	// bound flags, in that order of increasing precedence.
	config *viper.Viper
}

var longRootCmdDescription = `jsonmap builds a new document from a source document by following a
declarative spec: output paths on the left, field rules on the right.
Specs and sources may be JSON, YAML or TOML.
`

// NewRootCmd creates the jsonmap command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{config: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "jsonmap",
		Short:         "Reshape structured documents with a declarative mapping spec.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file of jsonmap (json, yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.hideLogTime, "hide-time", false, "hide the log time")
	rootCmd.PersistentFlags().StringVar(&opts.colorMode, "color", colorModeAlways,
		fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))

	rootCmd.AddCommand(
		NewMapCmd(opts),
		NewCheckCmd(opts),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("jsonmap-%s: %v", Version, err)
		os.Exit(1)
	}
}

// init reads the config file and environment and sets up logging.
func (o *rootOpts) init(cmd *cobra.Command) error {
	o.config.SetEnvPrefix(envPrefix)
	o.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.config.AutomaticEnv()

	if o.cfgFile != "" {
		o.config.SetConfigFile(o.cfgFile)

		if err := o.config.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", o.cfgFile, err)
		}
	}

	if err := o.config.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	colorMode := o.config.GetString("color")
	if !isSupportedColorMode(colorMode) {
		return fmt.Errorf("unknown color mode %q, the possible values can be %v", colorMode, supportedColorModes)
	}

	logger.Init(logger.LogOptions{
		Verbose:      o.config.GetBool("debug"),
		DisableColor: colorMode == colorModeNever,
		HideLogTime:  o.config.GetBool("hide-time"),
		Output:       cmd.ErrOrStderr(),
	})

	return nil
}

// requiredString returns a setting that may come from a flag, the config
// file or the environment, and fails when none of them sets it.
func (o *rootOpts) requiredString(key string) (string, error) {
	v := o.config.GetString(key)
	if v == "" {
		return "", fmt.Errorf("required setting %q not set, use --%s, %q in the config file or %s",
			key, key, key, envName(key))
	}

	return v, nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func isSupportedColorMode(mode string) bool {
	for _, m := range supportedColorModes {
		if m == mode {
			return true
		}
	}

	return false
}
