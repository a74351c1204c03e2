// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Command md2docx converts lightweight markup files to .docx documents.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	md2docx "github.com/nicholasgasior/md2docx-go"
)

// version is set at build time via ldflags.
var version = "dev"

var errNoInputs = errors.New("no input files")

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "md2docx [flags] <file.md>...",
		Short: "Convert lightweight markup files to .docx documents",
		Long: `md2docx converts markup files into Word documents, one paragraph per input line.

Lines starting with "# ", "## ", "### " and "#### " become the Title and
Heading 1-3 styles, "- " and "* " lines become bulleted paragraphs, other
lines become plain paragraphs with emphasis, inline code and links removed,
and blank lines become empty paragraphs.

Each input is written next to itself with ".md" replaced by ".docx".
Missing inputs are reported and skipped. An input named like a subcommand
(inspect, version, help, completion) must be given as a path, e.g. ./help.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default: ./md2docx.yaml or ~/.config/md2docx/md2docx.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	cmd.Flags().String("charset", md2docx.CharsetUTF8, `input charset, or "auto" to detect it`)
	cmd.Flags().Bool("front-matter", false, "read a leading front matter block into document properties")
	cmd.Flags().String("out-dir", "", "write outputs into this directory instead of next to the inputs")

	bindFlags(v, cmd)

	cmd.AddCommand(newInspectCmd(), newVersionCmd())
	return cmd
}

// bindFlags maps flags onto config keys; dashes become underscores.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for _, name := range []string{"log-level", "log-format"} {
		_ = v.BindPFlag(configKey(name), cmd.PersistentFlags().Lookup(name))
	}
	for _, name := range []string{"charset", "front-matter", "out-dir"} {
		_ = v.BindPFlag(configKey(name), cmd.Flags().Lookup(name))
	}
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("md2docx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "md2docx"))
		}
	}

	v.SetEnvPrefix("MD2DOCX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return errNoInputs
	}

	logger, err := newLogger(v.GetString("log_level"), v.GetString("log_format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	conv := md2docx.New(
		md2docx.WithCharset(v.GetString("charset")),
		md2docx.WithFrontMatter(v.GetBool("front_matter")),
		md2docx.WithOutputDir(v.GetString("out_dir")),
		md2docx.WithLogger(logger),
	)

	_, err = conv.ConvertAll(args, cmd.OutOrStdout())
	return err
}
