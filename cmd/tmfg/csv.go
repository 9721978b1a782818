package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tmfg/matrix"
)

// readMatrixFile loads a numeric CSV file into a Dense matrix.
func readMatrixFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := readMatrixCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return m, nil
}

// readMatrixCSV parses comma-separated rows of floats. Lines starting with
// '#' are skipped; every row must have the same number of fields.
func readMatrixCSV(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make([]float64, len(rec))
		for j, field := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				line, _ := cr.FieldPos(j)
				return nil, fmt.Errorf("line %d field %d: %w", line, j+1, err)
			}
		}
		rows = append(rows, row)
	}

	return matrix.NewDenseFromRows(rows)
}
