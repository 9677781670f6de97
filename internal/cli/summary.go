// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"code.hybscloud.com/fold"
	"code.hybscloud.com/fold/internal/config"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print size, sum, product, extrema and both subtraction folds of each sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), cfg.Sequences)
		},
	}
}

func writeSummary(w io.Writer, seqs []config.Sequence) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tSUM\tPRODUCT\tMIN\tMAX\tFOLDR(-)\tFOLDL(-)")
	for _, s := range seqs {
		xs := s.Seq()
		minimum, err := extremum(fold.Minimum[float64](xs))
		if err != nil {
			return err
		}
		maximum, err := extremum(fold.Maximum[float64](xs))
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Name,
			fold.Size[float64](xs),
			formatFloat(fold.Sum[float64](xs)),
			formatFloat(fold.Product[float64](xs)),
			minimum,
			maximum,
			formatFloat(fold.Foldr(func(a, b float64) float64 { return a - b }, 0, xs)),
			formatFloat(fold.Foldl(func(b, a float64) float64 { return b - a }, 0, xs)),
		)
	}
	return tw.Flush()
}

// extremum renders an empty container as "empty" and passes other errors on.
func extremum(v float64, err error) (string, error) {
	if errors.Is(err, fold.ErrEmptyContainer) {
		return "empty", nil
	}
	if err != nil {
		return "", err
	}
	return formatFloat(v), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
