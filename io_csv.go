package expplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// nullValues are the cell contents treated as missing.
var nullValues = NewStringSetFrom([]string{"", "null", "NULL", "NA", "N/A"})

// ReadCSV reads a comma separated table with a header row. Column types
// are inferred from all cells of a column: Int if every value parses as
// an integer, Float if every value parses as a number and String
// otherwise.
func ReadCSV(r io.Reader, name string) (*DataFrame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("failed to read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}
		records = append(records, record)
	}

	builders := make([]*columnBuilder, len(header))
	for c, h := range header {
		b := &columnBuilder{name: strings.TrimSpace(h), typ: inferCSVType(records, c)}
		for _, record := range records {
			cell := strings.TrimSpace(record[c])
			switch {
			case nullValues.Contains(cell):
				b.addNull()
			case b.typ == String:
				b.addStr(cell)
			default:
				x, _ := strconv.ParseFloat(cell, 64)
				b.addNum(x)
			}
		}
		builders[c] = b
	}
	return buildFrame(name, builders)
}

// inferCSVType determines the type of column c of records.
func inferCSVType(records [][]string, c int) FieldType {
	typ, seen := Int, false
	for _, record := range records {
		cell := strings.TrimSpace(record[c])
		if nullValues.Contains(cell) {
			continue
		}
		seen = true
		if typ == Int {
			if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
				continue
			}
			typ = Float
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return String
		}
	}
	if !seen {
		return String
	}
	return typ
}
