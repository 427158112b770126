// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sexpr-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sexpr-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "sexpr-engine",
	Short: "Convert YAML and JSON documents to S-expressions",
	Long: `sexpr-engine converts structured data documents into a deterministic
S-expression rendering. The input format (YAML or JSON) is detected from the
file extension or, failing that, the content; the detected format becomes the
namespace prefix on every emitted key symbol.

Conversion is a one-shot transformation: read a document, walk it, emit text.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sexpr-engine.yaml or ~/.config/sexpr-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sexpr-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sexpr-engine"))
		}
	}

	viper.SetEnvPrefix("SEXPR_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
