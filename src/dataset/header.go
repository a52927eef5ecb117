// Package dataset reads the column-oriented text (and xlsx) files the
// multi-series plotter consumes: a header line with labels, then numeric rows.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/28H4/plot-playground/src/errs"
)

// HeaderOptions controls how a header line is split.
type HeaderOptions struct {
	// Uppercase converts the line to upper case before splitting.
	Uppercase bool
	// Delimiter separates tokens; empty means runs of whitespace.
	Delimiter string
}

// DefaultHeaderOptions upper-cases and splits on whitespace.
func DefaultHeaderOptions() HeaderOptions { return HeaderOptions{Uppercase: true} }

// ReadHeader returns the tokens of the 0-based line of the file at path.
// Workbooks (.xlsx) are read from their first sheet, one cell per token.
func ReadHeader(path string, line int, opts HeaderOptions) ([]string, error) {
	if line < 0 {
		return nil, errs.NotFoundf("header line %d in %s", line, path)
	}
	if isWorkbook(path) {
		rows, err := readWorkbookRows(path)
		if err != nil {
			return nil, err
		}
		if line >= len(rows) {
			return nil, errs.NotFoundf("header line %d in %s (%d rows)", line, path, len(rows))
		}
		out := make([]string, 0, len(rows[line]))
		for _, cell := range rows[line] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if opts.Uppercase {
				cell = strings.ToUpper(cell)
			}
			out = append(out, cell)
		}
		return out, nil
	}

	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		if n == line {
			text := scanner.Text()
			if opts.Uppercase {
				text = strings.ToUpper(text)
			}
			return splitFields(text, opts.Delimiter), nil
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return nil, errs.NotFoundf("header line %d in %s (%d lines)", line, path, n)
}

func splitFields(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	parts := strings.Split(line, delimiter)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NotFoundf("file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// readWorkbookRows returns all rows of the first sheet.
func readWorkbookRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NotFoundf("file %s", path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer wb.Close()
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errs.NotFoundf("worksheet in %s", path)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}
	return rows, nil
}
