// Package Reports reads and writes the measurement rows produced by the measure command and
// formats them for people.
//
// A row is one CSV record without header: mode, size, operation, collection, nanoseconds.
package Reports

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Operations.
const (
	Create      = "create"
	Find        = "find"
	IncLessThan = "inc-less-than"
)

const rowFields = 5

var (
	// ErrBadRow is returned for records that don't parse as a Row.
	ErrBadRow = errors.New("bad row format")
	// ErrNotFound is returned by Query when no row has the key.
	ErrNotFound = errors.New("not found")
)

// Row is the measured duration of one operation on one collection.
type Row struct {
	// Mode names the run, usually the machine or build that produced it.
	Mode       string
	Size       int
	Operation  string
	Collection string
	Duration   time.Duration
}

func (r Row) record() []string {
	return []string{r.Mode, strconv.Itoa(r.Size), r.Operation, r.Collection,
		strconv.FormatInt(r.Duration.Nanoseconds(), 10)}
}

// ParseRow from the fields of one record.
func ParseRow(fields []string) (Row, error) {
	if len(fields) != rowFields {
		return Row{}, errors.Wrapf(ErrBadRow, "%q must have %d fields", fields, rowFields)
	}
	size, err := strconv.Atoi(fields[1])
	if err != nil {
		return Row{}, errors.Wrapf(ErrBadRow, "%q size: %s", fields, err)
	}
	ns, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return Row{}, errors.Wrapf(ErrBadRow, "%q nanoseconds: %s", fields, err)
	}
	return Row{fields[0], size, fields[2], fields[3], time.Duration(ns)}, nil
}

// Writer appends rows to an underlying io.Writer.
type Writer struct {
	w *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv.NewWriter(w)}
}

// Write r. Rows are buffered until Flush.
func (u *Writer) Write(r Row) error {
	return errors.Wrap(u.w.Write(r.record()), "writing row")
}

// Flush buffered rows and report any error from earlier writes.
func (u *Writer) Flush() error {
	u.w.Flush()
	return errors.Wrap(u.w.Error(), "flushing rows")
}

// ReadRows until the end of r.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var rows []Row
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading row %d", len(rows)+1)
		}
		row, err := ParseRow(fields)
		if err != nil {
			return nil, errors.WithMessagef(err, "row %d", len(rows)+1)
		}
		rows = append(rows, row)
	}
}
