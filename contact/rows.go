package contact

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Row is one line of a delimited contact source.
// Line is 1-based and points at the source line the row came from.
type Row struct {
	Line        int
	FirstName   string
	LastName    string
	PhoneNumber string
}

// ReadRows parses comma separated rows. A row is either a single phone
// number, in which case names are taken from defaults, or
// "first,last,phone". Lines starting with '#' are ignored.
// Field values are not validated here: an empty field is kept as is.
func ReadRows(r io.Reader, defaults Row) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		line, _ := reader.FieldPos(0)

		switch len(record) {
		case 1:
			rows = append(rows, Row{
				Line:        line,
				FirstName:   defaults.FirstName,
				LastName:    defaults.LastName,
				PhoneNumber: record[0],
			})
		case 3:
			rows = append(rows, Row{
				Line:        line,
				FirstName:   record[0],
				LastName:    record[1],
				PhoneNumber: record[2],
			})
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 3 fields, got %d", line, len(record))
		}
	}
}

// PhoneNumbers extracts the phone column.
func PhoneNumbers(rows []Row) []string {
	phones := make([]string, 0, len(rows))
	for _, row := range rows {
		phones = append(phones, row.PhoneNumber)
	}
	return phones
}
