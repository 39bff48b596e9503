// Command gridbin bins 2-D points into the cells of a dense grid and prints
// one line per occupied cell: "ix iy count mean_x mean_y".
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/gridstore"
	"github.com/hupe1980/gridstore/backend/array"
	"github.com/hupe1980/gridstore/index"
	"github.com/hupe1980/gridstore/indexer"
	"github.com/hupe1980/gridstore/value"
)

type binOptions struct {
	size       []int
	offset     []int
	resolution float64
	policy     string
	strict     bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts binOptions

	cmd := &cobra.Command{
		Use:   "gridbin [file...]",
		Short: "Bin 2-D points into dense grid cells",
		Long: `Reads "x y" or "x,y" points (one per line, stdin when no file is given),
quantizes them to grid cells of the given resolution and prints the sample
count and mean of every occupied cell in row-major order.

Files are parsed concurrently and binned in argument order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var inputs [][]point
			if len(args) == 0 {
				points, err := readPoints(cmd.InOrStdin(), "<stdin>")
				if err != nil {
					return err
				}
				inputs = [][]point{points}
			} else {
				var err error
				if inputs, err = readFiles(cmd.Context(), args); err != nil {
					return err
				}
			}
			return run(inputs, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.size, "size", []int{100, 100}, "number of cells per dimension")
	cmd.Flags().IntSliceVar(&opts.offset, "offset", []int{-50, -50}, "lowest cell index per dimension")
	cmd.Flags().Float64Var(&opts.resolution, "resolution", 1.0, "cell edge length")
	cmd.Flags().StringVar(&opts.policy, "policy", "merge", "duplicate policy: merge, replace or reject")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on points outside the grid instead of skipping them")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return cmd
}

func run(inputs [][]point, out, errOut io.Writer, opts binOptions) error {
	if math.IsNaN(opts.resolution) || opts.resolution <= 0 || math.IsInf(opts.resolution, 1) {
		return fmt.Errorf("resolution must be positive and finite, got %g", opts.resolution)
	}
	policy, err := value.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := gridstore.NewLogger(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	ix := indexer.Grid2(opts.resolution, func(c value.Centroid) (float64, float64) {
		m := c.Mean()
		return m[0], m[1]
	})
	cells, err := gridstore.NewDenseAutoIndex[index.Point2, value.Centroid](
		index.Grid2{}, value.CentroidOps{}, ix,
		array.Config{Size: opts.size, Offset: opts.offset, OnDuplicate: policy},
		gridstore.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	skipped := 0
	for _, points := range inputs {
		for _, p := range points {
			if _, err := cells.Insert(value.NewCentroid(p.x, p.y)); err != nil {
				if !opts.strict && (errors.Is(err, gridstore.ErrInvalidIndex) || errors.Is(err, gridstore.ErrDuplicateIndex)) {
					skipped++
					continue
				}
				return fmt.Errorf("%s: %w", p.pos(), err)
			}
		}
	}

	for c, v := range cells.Values() {
		m := v.Mean()
		fmt.Fprintf(out, "%d %d %d %g %g\n", c[0], c[1], v.N, m[0], m[1])
	}

	if skipped > 0 {
		logger.Warn("points skipped", "count", skipped)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
