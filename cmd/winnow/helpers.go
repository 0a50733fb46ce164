package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/larovann/winnow/dataset"
)

// loadFrame reads one CSV file into a typed frame.
func loadFrame(path string) (*dataset.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	frame, err := dataset.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return frame, nil
}

// numericColumns returns the frame's numeric column names, minus the
// excluded ones, in frame order.
func numericColumns(f *dataset.Frame, exclude ...string) []string {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	var names []string
	for _, name := range f.Columns() {
		if _, drop := skip[name]; drop {
			continue
		}
		s, err := f.Column(name)
		if err == nil && s.IsNumeric() {
			names = append(names, name)
		}
	}

	return names
}

// printFrame renders the frame as an aligned plain-text table.
func printFrame(w io.Writer, f *dataset.Frame) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(f.Columns(), "\t"))

	for i := 0; i < f.NumRows(); i++ {
		cells := make([]string, 0, f.NumCols())
		for _, name := range f.Columns() {
			s, err := f.Column(name)
			if err != nil {
				continue
			}
			cells = append(cells, s.Cell(i))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}
