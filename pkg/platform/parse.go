package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedInput is wrapped by every Parse error caused by the input text.
var ErrMalformedInput = errors.New("malformed grid input")

// MaxDimension is the largest grid side Parse accepts, configured or inferred.
const MaxDimension = 1024

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ParseOptions controls how text is read into a Grid.
type ParseOptions struct {
	// Dimension is the side length of the grid. Zero infers it from the
	// length of the first line.
	Dimension int

	// Strict rejects lines of the wrong width and inputs with the wrong
	// number of rows instead of padding, truncating or dropping them.
	Strict bool
}

// ParseReport describes how lenient parsing reshaped the input.
type ParseReport struct {
	Rows      int `json:"rows"`
	Padded    int `json:"padded"`
	Truncated int `json:"truncated"`
	Dropped   int `json:"dropped"`
	Missing   int `json:"missing"`
}

// Clean reports whether the input matched the grid shape exactly.
func (r ParseReport) Clean() bool {
	return r.Padded == 0 && r.Truncated == 0 && r.Dropped == 0 && r.Missing == 0
}

// Parse reads one grid row per line. In lenient mode short rows are padded
// with Empty, long rows truncated, surplus rows dropped and missing rows
// left Empty. Characters inside the kept part of a row must be valid cells.
func Parse(r io.Reader, opts ParseOptions) (*Grid, ParseReport, error) {
	var report ParseReport

	if opts.Dimension < 0 {
		return nil, report, fmt.Errorf("negative dimension %d", opts.Dimension)
	}
	if opts.Dimension > MaxDimension {
		return nil, report, fmt.Errorf("%w: dimension %d exceeds %d", ErrMalformedInput, opts.Dimension, MaxDimension)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var g *Grid
	if opts.Dimension > 0 {
		g, _ = New(opts.Dimension)
	}

	lineNo := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lineNo++

		if g == nil {
			if len(line) == 0 {
				return nil, report, fmt.Errorf("%w: cannot infer dimension from empty first line", ErrMalformedInput)
			}
			if len(line) > MaxDimension {
				return nil, report, fmt.Errorf("%w: inferred dimension %d exceeds %d", ErrMalformedInput, len(line), MaxDimension)
			}
			g, _ = New(len(line))
		}

		if report.Rows == g.size {
			if opts.Strict {
				return nil, report, fmt.Errorf("%w: line %d: more than %d rows", ErrMalformedInput, lineNo, g.size)
			}
			report.Dropped++
			continue
		}

		width := len(line)
		switch {
		case width < g.size:
			if opts.Strict {
				return nil, report, fmt.Errorf("%w: line %d: width %d, want %d", ErrMalformedInput, lineNo, width, g.size)
			}
			report.Padded++
		case width > g.size:
			if opts.Strict {
				return nil, report, fmt.Errorf("%w: line %d: width %d, want %d", ErrMalformedInput, lineNo, width, g.size)
			}
			report.Truncated++
			width = g.size
		}

		row := report.Rows
		for col := 0; col < width; col++ {
			c := Cell(line[col])
			if !c.Valid() {
				return nil, report, fmt.Errorf("%w: line %d, column %d: unknown cell %q", ErrMalformedInput, lineNo, col+1, line[col])
			}
			g.cells[row*g.size+col] = c
		}
		report.Rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("failed to read grid: %w", err)
	}

	if g == nil {
		return nil, report, fmt.Errorf("%w: empty input and no dimension configured", ErrMalformedInput)
	}

	if report.Rows < g.size {
		if opts.Strict {
			return nil, report, fmt.Errorf("%w: %d rows, want %d", ErrMalformedInput, report.Rows, g.size)
		}
		report.Missing = g.size - report.Rows
	}

	return g, report, nil
}
