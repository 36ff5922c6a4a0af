// Command covinfo prints second-moment matrices of CSV columns.
//
// Usage:
//
//	covinfo [flags] [file.csv]
//
// Without a file argument it reads CSV from stdin. Rows are observations,
// columns are variables; a non-numeric first row is treated as a header.
//
// Examples:
//
//	covinfo data.csv
//	covinfo -kind cor data.csv
//	covinfo -kind cov -method ml -weights 0.2,0.3,0.5 data.csv
//	covinfo -means data.csv < data.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-moment/moment"
)

func main() {
	kind := flag.String("kind", "cov", "matrix kind: cov, cor, or cosine")
	method := flag.String("method", "unbiased", "estimator for weighted covariance: unbiased or ml")
	weightsFlag := flag.String("weights", "", "comma-separated per-row weights (must sum to 1)")
	showMeans := flag.Bool("means", false, "also print column means")
	prec := flag.Int("prec", 6, "digits after the decimal point")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: covinfo [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the covariance, correlation, or cosine-similarity matrix\n")
		fmt.Fprintf(os.Stderr, "of the columns of a numeric CSV file (stdin if no file is given).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  covinfo data.csv\n")
		fmt.Fprintf(os.Stderr, "  covinfo -kind cor data.csv\n")
		fmt.Fprintf(os.Stderr, "  covinfo -method ml -weights 0.2,0.3,0.5 data.csv\n")
	}
	flag.Parse()

	input := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		input = f
	}

	names, m, n, x, err := readMatrix(input)
	if err != nil {
		fatalf("%v", err)
	}

	var mt moment.Method
	switch strings.ToLower(*method) {
	case "unbiased":
		mt = moment.MethodUnbiased
	case "ml":
		mt = moment.MethodML
	default:
		fatalf("unknown method %q (want unbiased or ml)", *method)
	}

	weights, err := parseWeights(*weightsFlag)
	if err != nil {
		fatalf("%v", err)
	}

	var (
		means  []float64
		result []float64
	)

	switch strings.ToLower(*kind) {
	case "cov":
		means, result, err = moment.WeightedCovariance(mt, m, n, x, weights)
	case "cor":
		means, result, err = moment.WeightedCorrelation(mt, m, n, x, weights)
	case "cosine":
		if weights != nil {
			fatalf("-weights does not apply to -kind cosine")
		}
		result, err = moment.Cosine(m, n, x)
	default:
		fatalf("unknown kind %q (want cov, cor, or cosine)", *kind)
	}

	if err != nil {
		fatalf("%v", err)
	}

	if *showMeans && means != nil {
		printVector("mean", names, means, *prec)
	}

	printMatrix(names, n, result, *prec)
}

// readMatrix parses CSV into an m×n column-major matrix. A first row that
// fails numeric parsing becomes the column names.
func readMatrix(r io.Reader) (names []string, m, n int, x []float64, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, 0, nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, 0, 0, nil, fmt.Errorf("empty input")
	}

	if _, convErr := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); convErr != nil {
		names = records[0]
		records = records[1:]
	}

	if len(records) == 0 {
		return nil, 0, 0, nil, fmt.Errorf("no data rows")
	}

	m = len(records)
	n = len(records[0])

	x = make([]float64, m*n)
	for i, rec := range records {
		if len(rec) != n {
			return nil, 0, 0, nil, fmt.Errorf("row %d has %d fields, want %d", i+1, len(rec), n)
		}

		for j, field := range rec {
			v, convErr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if convErr != nil {
				return nil, 0, 0, nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, convErr)
			}

			x[i+j*m] = v
		}
	}

	return names, m, n, x, nil
}

func parseWeights(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")

	weights := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing weight %d: %w", i+1, err)
		}

		weights[i] = v
	}

	return weights, nil
}

func colName(names []string, j int) string {
	if j < len(names) {
		return names[j]
	}

	return "c" + strconv.Itoa(j)
}

func printVector(label string, names []string, v []float64, prec int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s", label)
	for j := range v {
		fmt.Fprintf(tw, "\t%s", colName(names, j))
	}
	fmt.Fprintln(tw)

	for _, val := range v {
		fmt.Fprintf(tw, "\t%.*f", prec, val)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw)

	tw.Flush()
}

func printMatrix(names []string, n int, c []float64, prec int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	for j := range n {
		fmt.Fprintf(tw, "\t%s", colName(names, j))
	}
	fmt.Fprintln(tw)

	for i := range n {
		fmt.Fprintf(tw, "%s", colName(names, i))
		for j := range n {
			fmt.Fprintf(tw, "\t%.*f", prec, c[i+j*n])
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
