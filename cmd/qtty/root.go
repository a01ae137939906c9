package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/siderust/qtty/formats"
)

var (
	format   string
	logLevel string

	viperInst = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "qtty",
	Short: "Physical quantity and unit conversion",
	Long:  "qtty converts values between units of the same physical dimension using a fixed unit registry.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags take precedence, then env, then config file.
		if !cmd.Flags().Changed("format") {
			if v := viperInst.GetString("format"); v != "" {
				format = v
			}
		}
		if !cmd.Flags().Changed("log-level") {
			if v := viperInst.GetString("log-level"); v != "" {
				logLevel = v
			}
		}
		initLogging(logLevel)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "Output format: table|json|yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	setupViperConfig()

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(compatCmd)
}

// setupViperConfig configures Viper with environment variables and config files
func setupViperConfig() {
	// QTTY_CONFIG points at an explicit config file, otherwise fall back
	// to default discovery.
	if configFile := os.Getenv("QTTY_CONFIG"); configFile != "" {
		viperInst.SetConfigFile(configFile)
	} else {
		viperInst.SetConfigName("qtty")
		viperInst.SetConfigType("yaml")
		viperInst.AddConfigPath(".")
		viperInst.AddConfigPath("$HOME/.qtty")
		viperInst.AddConfigPath("/etc/qtty")
	}

	viperInst.AutomaticEnv()
	viperInst.SetEnvPrefix("QTTY")

	// Replace dash with underscore in env vars (e.g., --log-level -> QTTY_LOG_LEVEL)
	viperInst.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Read config file if it exists (ignore errors)
	_ = viperInst.ReadInConfig()
}

// render prints the payload on stdout in the selected output format.
func render(v interface{}) error {
	f, err := formats.Get(format)
	if err != nil {
		return err
	}
	out, err := f.Render(v)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Print(out)
	return nil
}
