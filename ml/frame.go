package ml

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrMissingFeature means a row lacks a column the model was trained on.
	ErrMissingFeature = errors.New("ml: missing feature column")
	// ErrUnknownFeature means a row carries a column the model does not know.
	ErrUnknownFeature = errors.New("ml: unknown feature column")
)

// Frame is a table of named columns, one map per row.
type Frame []map[string]float64

// Matrix lays the frame out in the given column order. Column names must
// match exactly; their order in the rows is irrelevant.
func (f Frame) Matrix(columns []string) ([][]float64, error) {
	known := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		known[c] = struct{}{}
	}

	matrix := make([][]float64, len(f))
	for i, row := range f {
		if extra := unknownColumns(row, known); len(extra) > 0 {
			return nil, fmt.Errorf("%w: row %d: %v", ErrUnknownFeature, i, extra)
		}
		values := make([]float64, len(columns))
		for j, c := range columns {
			v, ok := row[c]
			if !ok {
				return nil, fmt.Errorf("%w: row %d: %s", ErrMissingFeature, i, c)
			}
			values[j] = v
		}
		matrix[i] = values
	}
	return matrix, nil
}

func unknownColumns(row map[string]float64, known map[string]struct{}) []string {
	var extra []string
	for name := range row {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}
