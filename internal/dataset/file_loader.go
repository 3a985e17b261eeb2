package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"customer-listing/internal/models"
	"customer-listing/internal/validation"

	"github.com/google/uuid"
)

// Canonical column names. Headers are matched after NormalizeHeader.
const (
	ColumnID          = "id"
	ColumnName        = "name"
	ColumnEmail       = "email"
	ColumnCreatedDate = "createddate"
	ColumnIsActive    = "isactive"
	ColumnCountryCode = "countrycode"
)

const peekSize = 4096

var requiredColumns = []string{
	ColumnID,
	ColumnName,
	ColumnEmail,
	ColumnCreatedDate,
	ColumnIsActive,
	ColumnCountryCode,
}

// dateLayouts are tried in order when parsing createddate. Layouts without a
// zone are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// FileOption is a functional option for the file loader
type FileOption func(*fileLoader)

// WithDelimiter sets the field delimiter (default is comma)
func WithDelimiter(d rune) FileOption {
	return func(l *fileLoader) {
		l.delimiter = d
	}
}

type fileLoader struct {
	path      string
	delimiter rune
}

// FileLoader returns a Loader reading the delimited file at path
func FileLoader(path string, opts ...FileOption) Loader {
	l := &fileLoader{
		path:      path,
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(l)
	}

	return func(ctx context.Context) ([]models.Customer, error) {
		return LoadFile(ctx, l.path, WithDelimiter(l.delimiter))
	}
}

// LoadFile reads every customer from the delimited file at path. Either the whole
// file loads or an error is returned; partial results are never returned.
func LoadFile(ctx context.Context, path string, opts ...FileOption) ([]models.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	return Parse(ctx, f, opts...)
}

// Parse reads customers from a delimited stream with a header row
func Parse(ctx context.Context, r io.Reader, opts ...FileOption) ([]models.Customer, error) {
	l := &fileLoader{delimiter: ','}
	for _, opt := range opts {
		opt(l)
	}

	reader, err := newCSVReader(r, l.delimiter)
	if err != nil {
		return nil, err
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	validate := validation.GetValidator()
	customers := make([]models.Customer, 0)
	line := 1

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		row := rowFromRecord(record, columns)
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidRow, line, err)
		}

		customer, err := row.toCustomer()
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidRow, line, err)
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// NormalizeHeader lower-cases a column name and drops spaces, underscores and dashes,
// so "Created_Date", "created date" and "CreatedDate" all become "createddate"
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newCSVReader(r io.Reader, delimiter rune) (*csv.Reader, error) {
	buf := bufio.NewReader(r)

	content, err := buf.Peek(peekSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, ErrEmptyFile
	}
	if !validUTF8Prefix(content, len(content) == peekSize) {
		return nil, ErrInvalidEncoding
	}

	// UTF-8 BOM
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	reader := csv.NewReader(buf)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	return reader, nil
}

// validUTF8Prefix reports whether a peeked window is valid UTF-8, ignoring a
// rune cut off at the end of a full window
func validUTF8Prefix(content []byte, full bool) bool {
	if full {
		for i := 0; i < utf8.UTFMax-1 && len(content) > 0; i++ {
			if r, _ := utf8.DecodeLastRune(content); r != utf8.RuneError {
				break
			}
			content = content[:len(content)-1]
		}
	}
	return utf8.Valid(content)
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		normalized := NormalizeHeader(name)
		if _, exists := columns[normalized]; !exists {
			columns[normalized] = i
		}
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := columns[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return columns, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// customerRow is one raw dataset row before type conversion
type customerRow struct {
	ID          string `csv:"id" validate:"required"`
	Name        string `csv:"name"`
	Email       string `csv:"email" validate:"required,email"`
	CreatedDate string `csv:"createddate" validate:"required"`
	IsActive    string `csv:"isactive" validate:"required"`
	CountryCode string `csv:"countrycode" validate:"omitempty,country_alpha2"`
}

func rowFromRecord(record []string, columns map[string]int) customerRow {
	field := func(column string) string {
		return strings.TrimSpace(record[columns[column]])
	}

	return customerRow{
		ID:          field(ColumnID),
		Name:        field(ColumnName),
		Email:       field(ColumnEmail),
		CreatedDate: field(ColumnCreatedDate),
		IsActive:    field(ColumnIsActive),
		CountryCode: field(ColumnCountryCode),
	}
}

func (r customerRow) toCustomer() (models.Customer, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Customer{}, fmt.Errorf("id %q: %w", r.ID, err)
	}

	createdDate, err := parseDate(r.CreatedDate)
	if err != nil {
		return models.Customer{}, err
	}

	isActive, err := strconv.ParseBool(r.IsActive)
	if err != nil {
		return models.Customer{}, fmt.Errorf("isactive %q: %w", r.IsActive, err)
	}

	return models.Customer{
		ID:          id,
		Name:        r.Name,
		Email:       r.Email,
		CreatedDate: createdDate,
		IsActive:    isActive,
		CountryCode: strings.ToUpper(r.CountryCode),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("createddate %q: unrecognized date format", value)
}
