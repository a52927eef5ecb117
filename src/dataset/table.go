package dataset

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/28H4/plot-playground/src/errs"
	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("dataset")

// TableOptions describes where labels and numbers live in a data file.
type TableOptions struct {
	Header HeaderOptions
	// HeaderLine is the 0-based line holding the column labels.
	HeaderLine int
	// SkipHeader lines are ignored before numeric rows start.
	SkipHeader int
	// XScale multiplies every x value; zero means 1.
	XScale float64
}

// DefaultTableOptions matches the ion flux files: labels on line 0, two header lines.
func DefaultTableOptions() TableOptions {
	return TableOptions{Header: DefaultHeaderOptions(), SkipHeader: 2, XScale: 1}
}

// Table is one x column with many y columns sharing it.
type Table struct {
	// XLabel is the header token of the x column ("" when the header only names the series).
	XLabel string
	// Labels name the y columns, in column order.
	Labels  []string
	X       []float64
	Columns [][]float64
}

// Rows reports the number of samples per series.
func (t Table) Rows() int { return len(t.X) }

// LoadTable reads a whitespace separated numeric table (or the first sheet of
// an .xlsx workbook). Cells that do not parse as numbers become NaN.
func LoadTable(path string, opts TableOptions) (Table, error) {
	header, err := ReadHeader(path, opts.HeaderLine, opts.Header)
	if err != nil {
		return Table{}, err
	}

	var rows [][]string
	if isWorkbook(path) {
		all, err := readWorkbookRows(path)
		if err != nil {
			return Table{}, err
		}
		for i, r := range all {
			if i < opts.SkipHeader || isBlank(r) {
				continue
			}
			rows = append(rows, r)
		}
	} else {
		rows, err = readTextRows(path, opts)
		if err != nil {
			return Table{}, err
		}
	}
	if len(rows) == 0 {
		return Table{}, errs.NotFoundf("numeric rows in %s after %d header lines", path, opts.SkipHeader)
	}

	ncols := len(rows[0])
	if ncols < 2 {
		return Table{}, errs.Shapef("%s: need an x column and at least one y column, got %d column(s)", path, ncols)
	}
	scale := opts.XScale
	if scale == 0 {
		scale = 1
	}
	t := Table{
		X:       make([]float64, len(rows)),
		Columns: make([][]float64, ncols-1),
	}
	for j := range t.Columns {
		t.Columns[j] = make([]float64, len(rows))
	}
	bad := 0
	for i, r := range rows {
		if len(r) != ncols {
			return Table{}, errs.Shapef("%s: data row %d has %d columns, expected %d", path, i+1, len(r), ncols)
		}
		for j, cell := range r {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				v = math.NaN()
				bad++
			}
			if j == 0 {
				t.X[i] = v * scale
			} else {
				t.Columns[j-1][i] = v
			}
		}
	}
	if bad > 0 {
		logger.Warnf("%s: %d cell(s) are not numbers and were read as NaN", path, bad)
	}

	switch len(header) {
	case ncols:
		t.XLabel = header[0]
		t.Labels = append([]string(nil), header[1:]...)
	case ncols - 1:
		t.Labels = append([]string(nil), header...)
	default:
		return Table{}, errs.Shapef("%s: header has %d labels for %d data columns", path, len(header), ncols)
	}
	logger.Debugf("%s: %d rows, %d series", path, len(t.X), len(t.Columns))
	return t, nil
}

func readTextRows(path string, opts TableOptions) ([][]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows [][]string
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		n++
		if n <= opts.SkipHeader {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitFields(line, opts.Header.Delimiter))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
