package platform

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Lenient(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		dimension  int
		wantGrid   string
		wantReport ParseReport
	}{
		{
			name:       "exact",
			input:      "O.#\n...\n#.O\n",
			dimension:  3,
			wantGrid:   "O.#\n...\n#.O\n",
			wantReport: ParseReport{Rows: 3},
		},
		{
			name:       "no trailing newline",
			input:      "O.#\n...\n#.O",
			dimension:  3,
			wantGrid:   "O.#\n...\n#.O\n",
			wantReport: ParseReport{Rows: 3},
		},
		{
			name:       "crlf line endings",
			input:      "O.#\r\n...\r\n#.O\r\n",
			dimension:  3,
			wantGrid:   "O.#\n...\n#.O\n",
			wantReport: ParseReport{Rows: 3},
		},
		{
			name:       "short row padded",
			input:      "O\n...\n#.O\n",
			dimension:  3,
			wantGrid:   "O..\n...\n#.O\n",
			wantReport: ParseReport{Rows: 3, Padded: 1},
		},
		{
			name:       "long row truncated",
			input:      "O.#x\n...\n#.O\n",
			dimension:  3,
			wantGrid:   "O.#\n...\n#.O\n",
			wantReport: ParseReport{Rows: 3, Truncated: 1},
		},
		{
			name:       "surplus rows dropped",
			input:      "O.#\n...\n#.O\nOOO\n",
			dimension:  3,
			wantGrid:   "O.#\n...\n#.O\n",
			wantReport: ParseReport{Rows: 3, Dropped: 1},
		},
		{
			name:       "missing rows left empty",
			input:      "O.#\n",
			dimension:  3,
			wantGrid:   "O.#\n...\n...\n",
			wantReport: ParseReport{Rows: 1, Missing: 2},
		},
		{
			name:       "dimension inferred",
			input:      "O.\n.#\n",
			dimension:  0,
			wantGrid:   "O.\n.#\n",
			wantReport: ParseReport{Rows: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, report, err := Parse(strings.NewReader(tt.input), ParseOptions{Dimension: tt.dimension})
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}

			if diff := cmp.Diff(tt.wantGrid, g.String()); diff != "" {
				t.Errorf("Grid mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantReport, report); diff != "" {
				t.Errorf("Report mismatch (-want +got):\n%s", diff)
			}
			if report.Clean() != (tt.wantReport == ParseReport{Rows: tt.wantReport.Rows}) {
				t.Errorf("Clean() = %v for report %+v", report.Clean(), report)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		dimension int
		strict    bool
	}{
		{name: "unknown character", input: "O.x\n...\n...\n", dimension: 3},
		{name: "empty input without dimension", input: "", dimension: 0},
		{name: "empty first line without dimension", input: "\nO.\n", dimension: 0},
		{name: "strict short row", input: "O.\n...\n...\n", dimension: 3, strict: true},
		{name: "strict long row", input: "O...\n...\n...\n", dimension: 3, strict: true},
		{name: "strict surplus row", input: "...\n...\n...\n...\n", dimension: 3, strict: true},
		{name: "strict missing row", input: "...\n...\n", dimension: 3, strict: true},
		{name: "inferred dimension too large", input: strings.Repeat(".", MaxDimension+1) + "\n", dimension: 0},
		{name: "inferred dimension too large in strict mode", input: strings.Repeat(".", 60000), dimension: 0, strict: true},
		{name: "configured dimension too large", input: "...\n", dimension: MaxDimension + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.input), ParseOptions{Dimension: tt.dimension, Strict: tt.strict})
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got: %v", err)
			}
		})
	}
}

func TestParse_UnknownCharacterBeyondWidthIsTruncated(t *testing.T) {
	g, report, err := Parse(strings.NewReader("..x\n"), ParseOptions{Dimension: 2})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if report.Truncated != 1 {
		t.Errorf("Expected 1 truncated row, got %d", report.Truncated)
	}
	if g.Count(Empty) != 4 {
		t.Errorf("Expected all cells empty, got:\n%s", g)
	}
}

func TestParse_NegativeDimension(t *testing.T) {
	if _, _, err := Parse(strings.NewReader("..\n..\n"), ParseOptions{Dimension: -2}); err == nil {
		t.Fatal("Expected error for negative dimension")
	}
}

func TestParse_MaxDimensionInferred(t *testing.T) {
	line := strings.Repeat(".", MaxDimension)
	g, report, err := Parse(strings.NewReader(line+"\n"), ParseOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if g.Size() != MaxDimension {
		t.Errorf("Expected size %d, got %d", MaxDimension, g.Size())
	}
	if report.Missing != MaxDimension-1 {
		t.Errorf("Expected %d missing rows, got %d", MaxDimension-1, report.Missing)
	}
}
