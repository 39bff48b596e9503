package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxOpenInputs bounds the number of input files parsed at once.
const maxOpenInputs = 8

type point struct {
	x, y   float64
	source string
	line   int
}

func (p point) pos() string { return fmt.Sprintf("%s:%d", p.source, p.line) }

// readPoints parses every line of r. Blank lines and lines starting with '#'
// are ignored.
func readPoints(r io.Reader, source string) ([]point, error) {
	var points []point

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		x, y, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		points = append(points, point{x: x, y: y, source: source, line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return points, nil
}

// readFiles parses the named files concurrently. The result keeps argument
// order so binning stays deterministic.
func readFiles(ctx context.Context, paths []string) ([][]point, error) {
	results := make([][]point, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxOpenInputs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()

			points, err := readPoints(f, path)
			if err != nil {
				return err
			}
			results[i] = points
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func parsePoint(s string) (x, y float64, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid x: %w", err)
	}
	if y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid y: %w", err)
	}
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, fmt.Errorf("non-finite coordinate (%g, %g)", x, y)
	}
	return x, y, nil
}
