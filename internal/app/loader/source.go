package loader

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/yigit/facultyroster/internal/app/models"
)

// RowSource supplies roster rows one at a time. Next returns io.EOF once
// every row has been read.
type RowSource interface {
	Next() ([]string, error)
}

// CSVOptions tunes how a CSV roster is read
type CSVOptions struct {
	// Comma is the field delimiter (defaults to ',')
	Comma rune
	// Comment, if set, marks lines to skip
	Comment rune
	// LazyQuotes allows quotes to appear in unquoted fields
	LazyQuotes bool
}

// csvSource adapts encoding/csv to RowSource
type csvSource struct {
	r *csv.Reader
}

// NewCSVSource reads rows from r. Rows may have any number of fields.
func NewCSVSource(r io.Reader, opts CSVOptions) RowSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false
	cr.LazyQuotes = opts.LazyQuotes
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	if opts.Comment != 0 {
		cr.Comment = opts.Comment
	}
	return &csvSource{r: cr}
}

// Next implements RowSource
func (s *csvSource) Next() ([]string, error) {
	return s.r.Read()
}

// sliceSource serves rows that are already in memory
type sliceSource struct {
	rows [][]string
	pos  int
}

// NewSliceSource returns a RowSource over rows. The rows are not copied.
func NewSliceSource(rows [][]string) RowSource {
	return &sliceSource{rows: rows}
}

// Next implements RowSource
func (s *sliceSource) Next() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

// FileLoader loads a CSV roster from a fixed path
type FileLoader struct {
	Path    string
	Options CSVOptions
}

// Load reads the roster file. It fails fast if ctx is already done.
func (l FileLoader) Load(ctx context.Context) ([]*models.Instructor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(l.Path, l.Options)
}
