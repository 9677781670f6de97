// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"code.hybscloud.com/fold"
	"code.hybscloud.com/fold/internal/config"
)

// law is one checked property of a sequence.
type law struct {
	name  string
	check func(xs []float64) (bool, error)
}

var laws = []law{
	{"foldr direction", checkFoldrDirection},
	{"foldl direction", checkFoldlDirection},
	{"short foldr without stop equals foldr", checkShortFoldr},
	{"short foldl without stop equals foldl", checkShortFoldl},
	{"foldMap sum equals sum", checkFoldMapSum},
	{"derived agrees with native", checkDerivedAgrees},
}

func newLawsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "laws",
		Short: "Check the fold laws on every sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			failed, err := runLaws(cmd.OutOrStdout(), opts.logger, cfg.Sequences)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d law violations", failed)
			}
			return nil
		},
	}
}

// runLaws checks every law on every sequence, plus the monoid identity law
// once, and returns the number of violations.
func runLaws(w io.Writer, logger *slog.Logger, seqs []config.Sequence) (int, error) {
	failed := 0
	report := func(seq, name string, ok bool) {
		status := "ok"
		if !ok {
			status = "FAIL"
			failed++
			logger.Error("law violated", "sequence", seq, "law", name)
		}
		fmt.Fprintf(w, "%-4s %s: %s\n", status, seq, name)
	}

	report("-", "foldMap of empty is identity", checkFoldMapIdentity())
	for _, s := range seqs {
		logger.Debug("checking sequence", "sequence", s.Name, "size", len(s.Values))
		for _, l := range laws {
			ok, err := l.check(s.Values)
			if err != nil {
				return failed, fmt.Errorf("sequence %q, %s: %w", s.Name, l.name, err)
			}
			report(s.Name, l.name, ok)
		}
	}
	logger.Info("laws checked", "sequences", len(seqs), "violations", failed)
	return failed, nil
}

func sub(a, b float64) float64 { return a - b }

// rfold and lfold are the recursive definitions the folds are checked against.
func rfold(f func(a, b float64) float64, z float64, xs []float64) float64 {
	if len(xs) == 0 {
		return z
	}
	return f(xs[0], rfold(f, z, xs[1:]))
}

func lfold(f func(b, a float64) float64, z float64, xs []float64) float64 {
	if len(xs) == 0 {
		return z
	}
	return lfold(f, f(z, xs[0]), xs[1:])
}

// derived wraps xs in a container that only provides Foldr.
func derived(xs []float64) (fold.NumericOps[float64], error) {
	return fold.DeriveNumeric[float64](fold.FoldrFunc[float64](func(f func(float64, fold.Erased) fold.Erased, z fold.Erased) fold.Erased {
		for i := len(xs) - 1; i >= 0; i-- {
			z = f(xs[i], z)
		}
		return z
	}))
}

func checkFoldrDirection(xs []float64) (bool, error) {
	return fold.Foldr(sub, 1, fold.Of(xs...)) == rfold(sub, 1, xs), nil
}

func checkFoldlDirection(xs []float64) (bool, error) {
	return fold.Foldl(sub, 1, fold.Of(xs...)) == lfold(sub, 1, xs), nil
}

func checkShortFoldr(xs []float64) (bool, error) {
	d, err := derived(xs)
	if err != nil {
		return false, err
	}
	step := func(a, b float64) fold.Outcome[float64] { return fold.Continue(a - b) }
	want := fold.Foldr(sub, 1, fold.Of(xs...))
	return fold.ShortFoldr(step, 1, fold.Of(xs...)) == want && fold.ShortFoldr(step, 1, d) == want, nil
}

func checkShortFoldl(xs []float64) (bool, error) {
	d, err := derived(xs)
	if err != nil {
		return false, err
	}
	step := func(b, a float64) fold.Outcome[float64] { return fold.Continue(b - a) }
	want := fold.Foldl(sub, 1, fold.Of(xs...))
	return fold.ShortFoldl(step, 1, fold.Of(xs...)) == want && fold.ShortFoldl(step, 1, d) == want, nil
}

func checkFoldMapSum(xs []float64) (bool, error) {
	return fold.FoldMap(fold.SumMonoid[float64](), fold.Of(xs...)) == fold.Sum[float64](fold.Of(xs...)), nil
}

func checkFoldMapIdentity() bool {
	empty := fold.Of[float64]()
	return fold.FoldMap(fold.SumMonoid[float64](), empty) == 0 &&
		fold.FoldMap(fold.ProductMonoid[float64](), empty) == 1 &&
		fold.FoldMap(fold.MaxMonoid[float64](), empty).IsNothing()
}

func checkDerivedAgrees(xs []float64) (bool, error) {
	d, err := derived(xs)
	if err != nil {
		return false, err
	}
	native := fold.Of(xs...)

	dMax, dErr := d.Maximum()
	nMax, nErr := fold.Maximum[float64](native)
	if (dErr == nil) != (nErr == nil) || dMax != nMax {
		return false, nil
	}
	dMin, dErr := d.Minimum()
	nMin, nErr := fold.Minimum[float64](native)
	if (dErr == nil) != (nErr == nil) || dMin != nMin {
		return false, nil
	}
	return d.Size() == fold.Size[float64](native) &&
		d.Sum() == fold.Sum[float64](native) &&
		fold.Foldl(sub, 1, d) == fold.Foldl(sub, 1, native) &&
		slices.Equal(fold.ToSlice[float64](d), fold.ToSlice[float64](native)), nil
}
