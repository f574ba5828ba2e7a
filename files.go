package gyration

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//The comment marker for data tables. LAMMPS thermo and fix-output files
//start their header lines with it.
const commentMarker = "#"

//zstd's Close returns nothing, so it can't be an io.ReadCloser by itself.
type zstdql struct {
	close func()
	r     io.Reader
}

func (q *zstdql) Read(p []byte) (int, error) { return q.r.Read(p) }

func (q *zstdql) Close() error { q.close(); return nil }

//ReadSeries reads a (timestep, Rg) table from the named file and returns it
//as a Series. Files ending in ".gz", ".zst" or ".zstd" are decompressed
//transparently; anything else is read as plain text. A file that cannot be
//opened yields a NotFoundError; a file that does not parse as a numeric
//table with at least 2 columns, or that contains no data rows at all,
//yields a FormatError.
func ReadSeries(filename string) (*Series, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &NotFoundError{message: err.Error(), filename: filename, deco: []string{"ReadSeries"}}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, &FormatError{message: "not a gzip stream: " + err.Error(), filename: filename, deco: []string{"ReadSeries"}}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(filename, ".zst"), strings.HasSuffix(filename, ".zstd"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, &FormatError{message: "not a zstd stream: " + err.Error(), filename: filename, deco: []string{"ReadSeries"}}
		}
		ql := &zstdql{zr.Close, zr}
		defer ql.Close()
		r = ql
	}
	S, err := ReadSeriesFrom(r, filename)
	if err != nil {
		return nil, errDecorate(err, "ReadSeries")
	}
	return S, nil
}

//ReadSeriesFrom parses a (timestep, Rg) table from r. name identifies the
//source in errors; it carries no other meaning. Each data row must have at
//least 2 whitespace-separated numeric columns: the timestep and the Rg
//value. Further columns are ignored. Blank lines, and lines whose first
//non-blank byte is '#', are skipped. A table with zero data rows is a
//FormatError, not an empty Series: feeding it silently to the statistics
//stage would just fail later with a less useful message.
func ReadSeriesFrom(r io.Reader, name string) (*Series, error) {
	var steps, rg []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentMarker) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, &FormatError{message: fmt.Sprintf("%s: expected at least 2 columns, got %d", WrongFormat, len(fields)), filename: name, line: line, deco: []string{"ReadSeriesFrom"}}
		}
		step, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &FormatError{message: fmt.Sprintf("%s: bad timestep %q", WrongFormat, fields[0]), filename: name, line: line, deco: []string{"ReadSeriesFrom"}}
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &FormatError{message: fmt.Sprintf("%s: bad Rg value %q", WrongFormat, fields[1]), filename: name, line: line, deco: []string{"ReadSeriesFrom"}}
		}
		steps = append(steps, step)
		rg = append(rg, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{message: err.Error(), filename: name, line: line, deco: []string{"ReadSeriesFrom"}}
	}
	if len(rg) == 0 {
		return nil, &FormatError{message: EmptyTable, filename: name, deco: []string{"ReadSeriesFrom"}}
	}
	return NewSeries(steps, rg), nil
}
