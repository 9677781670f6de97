// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the foldcheck command line.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"code.hybscloud.com/fold/internal/config"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	logger     *slog.Logger
}

// NewRootCmd builds the foldcheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "foldcheck",
		Short: "Fold named number sequences and check the fold laws",
		Long: `foldcheck loads named number sequences from a YAML file and runs the
fold library over them: aggregate summaries, and the fold direction,
short-circuit and monoid laws checked against native and derived containers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "foldcheck.yaml", "path to the sequences file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newLawsCmd(opts))
	return root
}

// Execute runs the foldcheck command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("sequences loaded", "path", o.configPath, "count", len(cfg.Sequences))
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
