// SPDX-License-Identifier: MIT
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/wcorr/matrix"
	"github.com/katalvlaran/wcorr/weighted"
	"gopkg.in/yaml.v3"
)

var errEmptyInput = errors.New("wcorr: empty CSV input")

// openInput opens path for reading; "-" selects stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return f, nil
}

func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errEmptyInput
	}

	return records, nil
}

// parseRows converts CSV records to floats. firstLine is the 1-based input
// line of records[0], used in error messages.
func parseRows(records [][]string, firstLine int) ([][]float64, error) {
	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, field %d: %w", firstLine+i, j+1, err)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

// readObservations parses an nobs×nvar CSV matrix. With header set, the
// first record names the variables; otherwise they are named x1..xN.
func readObservations(r io.Reader, header bool) ([]string, *matrix.Dense, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, nil, err
	}

	var names []string
	firstLine := 1
	if header {
		names = make([]string, len(records[0]))
		for j, n := range records[0] {
			names[j] = strings.TrimSpace(n)
		}
		records = records[1:]
		firstLine = 2
	} else {
		names = make([]string, len(records[0]))
		for j := range names {
			names[j] = "x" + strconv.Itoa(j+1)
		}
	}

	rows, err := parseRows(records, firstLine)
	if err != nil {
		return nil, nil, err
	}
	X, err := weighted.ObservationsFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return names, X, nil
}

// readWeights parses a single CSV row or column. Shape and value checks are
// left to the engine so the CLI reports the same errors as the library.
func readWeights(r io.Reader) (weighted.Weights, error) {
	records, err := readRecords(r)
	if err != nil {
		return weighted.Weights{}, err
	}
	rows, err := parseRows(records, 1)
	if err != nil {
		return weighted.Weights{}, err
	}
	m, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return weighted.Weights{}, fmt.Errorf("weights: %w", err)
	}

	return weighted.VectorFromMatrix(m), nil
}

// report is the serialized form of a weighted.Result.
type report struct {
	Nobs        int         `yaml:"nobs"`
	Nvar        int         `yaml:"nvar"`
	DOF         string      `yaml:"dof"`
	Variables   []string    `yaml:"variables,flow"`
	Mean        []float64   `yaml:"mean,flow"`
	StdDev      []float64   `yaml:"stddev,flow"`
	Correlation [][]float64 `yaml:"correlation,flow"`
	PValues     [][]float64 `yaml:"pvalues,flow"`
	Covariance  [][]float64 `yaml:"covariance,flow"`
	Alpha       float64     `yaml:"alpha,omitempty"`
	Significant [][]bool    `yaml:"significant,omitempty,flow"`
}

func newReport(names []string, res *weighted.Result, alpha float64, mask [][]bool) report {
	return report{
		Nobs:        res.Nobs,
		Nvar:        res.Nvar,
		DOF:         res.DOF.String(),
		Variables:   names,
		Mean:        res.Mean,
		StdDev:      res.StdDev,
		Correlation: res.Correlation.ToRows(),
		PValues:     res.PValues.ToRows(),
		Covariance:  res.Covariance.ToRows(),
		Alpha:       alpha,
		Significant: mask,
	}
}

// writeYAML encodes rep; NaN entries are written as .nan.
func writeYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return enc.Close()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

// writeText prints rep as aligned tables, one per statistic.
func writeText(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "nobs=%d\tnvar=%d\tdof=%s\n\n", rep.Nobs, rep.Nvar, rep.DOF)

	fmt.Fprintf(tw, "VARIABLE\tMEAN\tSTDDEV\n")
	for i, n := range rep.Variables {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n, formatFloat(rep.Mean[i]), formatFloat(rep.StdDev[i]))
	}

	sections := []struct {
		title string
		m     [][]float64
	}{
		{"CORRELATION", rep.Correlation},
		{"P-VALUE", rep.PValues},
		{"COVARIANCE", rep.Covariance},
	}
	for _, s := range sections {
		fmt.Fprintf(tw, "\n%s\t%s\n", s.title, strings.Join(rep.Variables, "\t"))
		for i, row := range s.m {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = formatFloat(v)
				if rep.Significant != nil && s.title == "P-VALUE" && rep.Significant[i][j] {
					cells[j] += "*"
				}
			}
			fmt.Fprintf(tw, "%s\t%s\n", rep.Variables[i], strings.Join(cells, "\t"))
		}
	}
	if rep.Significant != nil {
		fmt.Fprintf(tw, "\n* p < %s\n", formatFloat(rep.Alpha))
	}

	return tw.Flush()
}
