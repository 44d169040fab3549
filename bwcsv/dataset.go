// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwcsv reads object-store bandwidth benchmark results from
// CSV files.
//
// The CSV must have a header row naming at least the columns objsz
// (object size in bytes), workers (number of concurrent workers),
// type (put or get) and bandwidth (MB/s). Other columns are ignored.
// For example:
//
//	objsz,workers,type,bandwidth
//	262144,1,put,41.2
//	262144,1,get,88.0
//	262144,4,put,130.9
//
// Each file becomes a Dataset whose object sizes have been replaced
// by their bucket index in a sizemap.Map.
package bwcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"golang.org/x/bwgraph/sizemap"
)

// An Op is a benchmark transfer type.
type Op string

const (
	OpPut Op = "put" // write
	OpGet Op = "get" // read
)

// Column names of a Dataset's Table.
const (
	ColSize      = "size"      // raw object size in bytes, []int
	ColBucket    = "objsz"     // sizemap bucket index, []int
	ColWorkers   = "workers"   // []int
	ColOp        = "type"      // []string, an Op
	ColBandwidth = "bandwidth" // MB/s, []float64
)

// requiredCols are the CSV header fields Read looks up by name.
var requiredCols = []string{"objsz", "workers", "type", "bandwidth"}

// A Row is one benchmark result as read from the CSV.
type Row struct {
	ObjSize   int
	Workers   int
	Op        Op
	Bandwidth float64
}

// A Dataset is the full set of results from one input file.
type Dataset struct {
	// Path is the file the data was read from.
	Path string

	// Name identifies the dataset in chart titles. It defaults to
	// the upper-cased base name of Path without its extension.
	Name string

	// Sizes maps object sizes to buckets.
	Sizes *sizemap.Map

	// Table holds one row per CSV record with the columns ColSize,
	// ColBucket, ColWorkers, ColOp and ColBandwidth.
	Table *table.Table

	cols int
}

// A SyntaxError reports a malformed record or header in a CSV input.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Name returns the default dataset name for path: its base name
// without the extension, upper-cased.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Load reads the CSV file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses CSV benchmark results from r. fileName is used in
// error messages and to derive the Dataset's Name.
//
// Read does not return partial results: any malformed record fails
// the whole input with a *SyntaxError.
func Read(r io.Reader, fileName string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "missing header"}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	idx, err := headerIndexes(header)
	if err != nil {
		return nil, &SyntaxError{fileName, 1, err.Error()}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		row, err := parseRecord(rec, idx)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, &SyntaxError{fileName, line, err.Error()}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &SyntaxError{fileName, 1, "no results"}
	}

	d := newDataset(rows)
	d.Path = fileName
	d.Name = Name(fileName)
	d.cols = len(header)
	return d, nil
}

// newDataset buckets the object sizes in rows and builds the Table.
func newDataset(rows []Row) *Dataset {
	var (
		sizes     = make([]int, len(rows))
		buckets   = make([]int, len(rows))
		workers   = make([]int, len(rows))
		ops       = make([]string, len(rows))
		bandwidth = make([]float64, len(rows))
	)
	for i, r := range rows {
		sizes[i] = r.ObjSize
		workers[i] = r.Workers
		ops[i] = string(r.Op)
		bandwidth[i] = r.Bandwidth
	}
	sm := sizemap.New(sizes)
	for i, sz := range sizes {
		buckets[i], _ = sm.Index(sz)
	}

	var b table.Builder
	b.Add(ColSize, sizes).
		Add(ColBucket, buckets).
		Add(ColWorkers, workers).
		Add(ColOp, ops).
		Add(ColBandwidth, bandwidth)
	return &Dataset{Sizes: sm, Table: b.Done(), cols: len(requiredCols)}
}

// FromRows returns a Dataset built from rows rather than a file.
func FromRows(name string, rows []Row) *Dataset {
	d := newDataset(rows)
	d.Name = name
	return d
}

// Len returns the number of results in d.
func (d *Dataset) Len() int {
	return d.Table.Len()
}

// Shape returns the number of records and columns of the CSV d was
// read from.
func (d *Dataset) Shape() (rows, cols int) {
	return d.Table.Len(), d.cols
}

// Rows returns the results in d in input order.
func (d *Dataset) Rows() []Row {
	var (
		sizes     = d.Table.MustColumn(ColSize).([]int)
		workers   = d.Table.MustColumn(ColWorkers).([]int)
		ops       = d.Table.MustColumn(ColOp).([]string)
		bandwidth = d.Table.MustColumn(ColBandwidth).([]float64)
	)
	rows := make([]Row, len(sizes))
	for i := range rows {
		rows[i] = Row{sizes[i], workers[i], Op(ops[i]), bandwidth[i]}
	}
	return rows
}

// Op returns the results of d for one transfer type, with one row per
// (bucket, workers) pair. Repeated measurements of the same pair are
// averaged. The result has the columns ColBucket, ColWorkers and
// ColBandwidth; it has no rows if d has no results for op.
func (d *Dataset) Op(op Op) table.Grouping {
	g := table.FilterEq(d.Table, ColOp, string(op))
	if numRows(g) == 0 {
		return g
	}
	g = ggstat.Agg(ColBucket, ColWorkers)(ggstat.AggMean(ColBandwidth)).F(g)
	return table.Rename(g, "mean "+ColBandwidth, ColBandwidth)
}

// numRows returns the total number of rows in g.
func numRows(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// headerIndexes returns the position of each of requiredCols in
// header.
func headerIndexes(header []string) ([]int, error) {
	pos := make(map[string]int)
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	idx := make([]int, len(requiredCols))
	var missing []string
	for i, col := range requiredCols {
		p, ok := pos[col]
		if !ok {
			missing = append(missing, col)
		}
		idx[i] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header missing column %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRecord(rec []string, idx []int) (Row, error) {
	var r Row
	var err error
	if r.ObjSize, err = parsePositive("objsz", rec[idx[0]]); err != nil {
		return r, err
	}
	if r.Workers, err = parsePositive("workers", rec[idx[1]]); err != nil {
		return r, err
	}
	switch op := Op(strings.TrimSpace(rec[idx[2]])); op {
	case OpPut, OpGet:
		r.Op = op
	default:
		return r, fmt.Errorf("type %q is not put or get", rec[idx[2]])
	}
	bw, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[3]]), 64)
	if err != nil || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return r, fmt.Errorf("bandwidth %q is not a number", rec[idx[3]])
	}
	r.Bandwidth = bw
	return r, nil
}

func parsePositive(col, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s %q is not a positive integer", col, s)
	}
	return n, nil
}

// csvError converts an encoding/csv error into a *SyntaxError.
func csvError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{fileName, pe.Line, pe.Err.Error()}
	}
	return fmt.Errorf("%s: %w", fileName, err)
}
