// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sexpr-engine/internal/decode"
	"github.com/pdiddy/sexpr-engine/internal/sexpr"
	"github.com/pdiddy/sexpr-engine/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert YAML or JSON documents to S-expressions",
	Long: `Convert reads each input file, detects its format, and writes the
S-expression rendering to stdout (or --output). Pass "-" to read a single
document from stdin; stdin content is sniffed for format.

Defaults for pretty, indent, prefix, and date_markers may also be set in the
config file or via SEXPR_ENGINE_* environment variables; flags win.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("pretty", false, "indented multi-line output")
	convertCmd.Flags().Int("indent", 2, "pretty-mode indent width in spaces")
	convertCmd.Flags().String("prefix", "", "override the namespace prefix (default: detected format)")
	convertCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig assembles the conversion settings: defaults, then config
// file / environment via viper, then explicitly set flags.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.DefaultConvertConfig()

	if viper.IsSet("prefix") {
		cfg.Prefix = viper.GetString("prefix")
	}
	if viper.IsSet("pretty") {
		cfg.Pretty = viper.GetBool("pretty")
	}
	if viper.IsSet("indent") {
		cfg.Indent = viper.GetInt("indent")
	}
	if viper.IsSet("date_markers") {
		cfg.DateMarkers = viper.GetStringSlice("date_markers")
	}

	if cmd.Flags().Changed("prefix") {
		cfg.Prefix, _ = cmd.Flags().GetString("prefix")
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty, _ = cmd.Flags().GetBool("pretty")
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent, _ = cmd.Flags().GetInt("indent")
	}

	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	out := io.Writer(os.Stdout)
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	for _, arg := range args {
		if err := convertOne(out, arg, cfg); err != nil {
			return err
		}
	}
	return nil
}

// convertOne converts a single input and writes the S-expression plus a
// trailing newline.
func convertOne(w io.Writer, arg string, cfg types.ConvertConfig) error {
	var (
		value  *sexpr.Value
		format types.Format
		err    error
	)
	if arg == "-" {
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		format = decode.DetectFormat("", data)
		value, err = decode.Document(data, format)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	} else {
		value, format, err = decode.File(arg)
		if err != nil {
			return err
		}
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = format.Prefix()
	}

	text := sexpr.Convert(value, sexpr.Options{
		Prefix:      prefix,
		Pretty:      cfg.Pretty,
		Indent:      cfg.Indent,
		DateMarkers: cfg.DateMarkers,
	})
	_, err = fmt.Fprintln(w, text)
	return err
}
