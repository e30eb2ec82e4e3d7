package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"treekit/pkg/logging"
)

// logger is shared by every subcommand; Execute installs it.
var logger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "treekit",
	Short: "treekit is a set of CLI utilities for developer workflow automation",
	Long: `treekit bundles small batch utilities over a filesystem subtree:
combining a directory into a single annotated document, normalizing line
endings, and translating directory names via a remote translation API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			l, err := logging.Setup(true, "treekit")
			if err != nil {
				return fmt.Errorf("failed to initialize verbose logger: %w", err)
			}
			logger = l
		}
		return nil
	},
}

// Execute wires the logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) logging")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "treekit"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("TREEKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("separator_style", "detailed")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}
