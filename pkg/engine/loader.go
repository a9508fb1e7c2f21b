package engine

import (
	"io"
	"os"

	"github.com/parabolic/parabolic/pkg/platform"
)

// StdinSource is the input path that reads the grid from standard input.
const StdinSource = "-"

// LoadPlatform reads a grid from path, or from standard input when path is
// StdinSource.
func LoadPlatform(path string, opts platform.ParseOptions) (*platform.Grid, platform.ParseReport, error) {
	var r io.Reader
	if path == StdinSource {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, platform.ParseReport{}, NewSourceNotFoundError(path, err)
		}
		defer f.Close()
		r = f
	}

	return ParsePlatform(path, r, opts)
}

// ParsePlatform parses a grid read from r, classifying failures as
// malformed input from source.
func ParsePlatform(source string, r io.Reader, opts platform.ParseOptions) (*platform.Grid, platform.ParseReport, error) {
	g, report, err := platform.Parse(r, opts)
	if err != nil {
		return nil, report, NewMalformedInputError(source, err)
	}
	return g, report, nil
}
