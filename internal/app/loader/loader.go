// Package loader turns roster rows into instructors.
//
// A row is [name, department, title, degree...]; every field from index 3
// on is a degree description such as "1994, Ph.D., Cornell University".
// Loading is all or nothing: the first bad row or unreadable source aborts
// the load and no instructors are returned.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yigit/facultyroster/internal/app/models"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
	"github.com/yigit/facultyroster/internal/pkg/logger"
)

const (
	nameField = iota
	departmentField
	titleField
	firstDegreeField
)

// Load reads every row from src and builds one instructor per row, in order.
func Load(src RowSource) ([]*models.Instructor, error) {
	return load("rows", src)
}

// LoadReader reads a CSV roster from r.
func LoadReader(r io.Reader, opts CSVOptions) ([]*models.Instructor, error) {
	return load("reader", NewCSVSource(r, opts))
}

// LoadFile reads a CSV roster from the file at path. The file is closed
// before LoadFile returns, whether or not loading succeeded.
func LoadFile(path string, opts CSVOptions) ([]*models.Instructor, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to open roster file")
		return nil, apperrors.NewSourceReadError(path, err)
	}
	defer f.Close()

	return load(path, NewCSVSource(f, opts))
}

func load(name string, src RowSource) ([]*models.Instructor, error) {
	var instructors []*models.Instructor

	for rowNum := 1; ; rowNum++ {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error().Err(err).Str("source", name).Int("row", rowNum).Msg("Error reading roster row")
			return nil, apperrors.NewSourceReadError(name, err).WithDetail("row", rowNum)
		}

		instructor, err := parseRow(rowNum, row)
		if err != nil {
			logger.Error().Err(err).Str("source", name).Int("row", rowNum).Msg("Error parsing roster row")
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	logger.Debug().Str("source", name).Int("instructors", len(instructors)).Msg("Roster loaded")
	if instructors == nil {
		instructors = []*models.Instructor{}
	}
	return instructors, nil
}

// parseRow builds an instructor from a single row; rowNum is 1-based.
func parseRow(rowNum int, row []string) (*models.Instructor, error) {
	if len(row) < firstDegreeField {
		return nil, apperrors.NewCustomError(
			apperrors.ErrMalformedRow,
			fmt.Sprintf("row %d: %s: expected at least %d fields, got %d", rowNum, apperrors.ErrMalformedRow, firstDegreeField, len(row)),
		).WithDetails(map[string]interface{}{
			"row":    rowNum,
			"fields": len(row),
		})
	}

	degrees := make([]models.Degree, 0, len(row)-firstDegreeField)
	for field := firstDegreeField; field < len(row); field++ {
		degree, err := models.ParseDegree(row[field])
		if err != nil {
			return nil, apperrors.NewCustomError(err, fmt.Sprintf("row %d, field %d: %v", rowNum, field, err)).
				WithCode("MALFORMED_DEGREE").
				WithDetails(map[string]interface{}{
					"row":         rowNum,
					"field":       field,
					"description": row[field],
				})
		}
		degrees = append(degrees, degree)
	}

	return models.NewInstructor(row[nameField], row[departmentField], row[titleField], degrees), nil
}
