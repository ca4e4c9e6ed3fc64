package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/go-stl/internal/logger"
)

type (
	rbbenchApp struct {
		baseCmd    *cobra.Command
		baseConfig *baseConfiguration
	}

	baseConfiguration struct {
		// Configuration file location, optional.
		CfgFile   string
		LogLevel  string
		LogFormat string

		log zerolog.Logger
	}
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "RBB"

	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

// New creates the rbbench application.
func New() *rbbenchApp {
	baseCmd, baseConfig := newBaseCmd()
	return &rbbenchApp{baseCmd, baseConfig}
}

// Execute adds all child commands and runs the application.
func (a *rbbenchApp) Execute(ctx context.Context) error {
	a.baseCmd.AddCommand(newBenchCmd(a.baseConfig))
	a.baseCmd.AddCommand(newVerifyCmd(a.baseConfig))
	a.baseCmd.AddCommand(newDumpCmd(a.baseConfig))
	return a.baseCmd.ExecuteContext(ctx)
}

func newBaseCmd() (*cobra.Command, *baseConfiguration) {
	config := &baseConfiguration{log: zerolog.Nop()}
	var baseCmd = &cobra.Command{
		Use:           "rbbench",
		Short:         "Exercises the red-black tree",
		Long:          `rbbench benchmarks the red-black tree against other ordered containers, verifies it under random workloads and prints its shape.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	baseCmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file location")
	baseCmd.PersistentFlags().StringVar(&config.LogLevel, keyLogLevel, "info", "logging level: trace, debug, info, warn, error")
	baseCmd.PersistentFlags().StringVar(&config.LogFormat, keyLogFormat, logger.FormatConsole, "logging format: console or json")
	return baseCmd, config
}

func initializeConfig(cmd *cobra.Command, config *baseConfiguration) error {
	var errs []error
	if err := config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}
	l, err := logger.New(logger.Config{Level: config.LogLevel, Format: config.LogFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	} else {
		config.log = l
	}
	return errors.Join(errs...)
}

// initializeConfig reads in config file and ENV variables if set.
func (config *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	if config.CfgFile != "" {
		if _, err := os.Stat(config.CfgFile); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	// Flags bind to environment variables with the prefix, e.g. --size to RBB_SIZE.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to RBB_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				// lists come from config files as sequences and from the environment as CSV.
				var items []string
				for _, s := range v.GetStringSlice(f.Name) {
					items = append(items, strings.Split(s, ",")...)
				}
				if err := sv.Replace(items); err != nil {
					bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				}
				return
			}
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})
	return errors.Join(bindFlagErr...)
}
