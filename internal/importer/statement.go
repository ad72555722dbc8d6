// Package importer turns bank statement CSV exports into transaction
// creation requests.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mreis/penny/internal/encoding"
)

// Row is one statement line with a signed amount: positive for money in,
// negative for money out.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Statement header columns. Matching is case-insensitive.
const (
	colDate        = "date"
	colDescription = "description"
	colAmount      = "amount"
)

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006"}

// Parse reads a semicolon- or comma-separated statement. The header row is
// located by name, rows before it (bank preambles) and rows without a
// parseable date (footers, balance lines) are skipped.
func Parse(r io.Reader) ([]Row, error) {
	utf8r, err := encoding.ToUTF8(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = detectSeparator(string(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	dateIdx, descIdx, amountIdx := -1, -1, -1
	headerIdx := -1

	for i, record := range records {
		for j, cell := range record {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case colDate:
				dateIdx = j
			case colDescription:
				descIdx = j
			case colAmount:
				amountIdx = j
			}
		}

		if dateIdx >= 0 && descIdx >= 0 && amountIdx >= 0 {
			headerIdx = i
			break
		}

		dateIdx, descIdx, amountIdx = -1, -1, -1
	}

	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row with date, description and amount columns found")
	}

	var rows []Row

	for _, record := range records[headerIdx+1:] {
		date, ok := parseDate(cell(record, dateIdx))
		if !ok {
			continue
		}

		desc := cell(record, descIdx)
		if desc == "" {
			continue
		}

		amount, err := parseAmount(cell(record, amountIdx))
		if err != nil || amount.IsZero() {
			continue
		}

		rows = append(rows, Row{Date: date, Description: desc, Amount: amount})
	}

	return rows, nil
}

// detectSeparator picks semicolon when it is more common than comma in the
// first line; European exports use semicolons because commas are decimal
// separators.
func detectSeparator(data string) rune {
	firstLine, _, _ := strings.Cut(data, "\n")
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}

	return ','
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount accepts plain decimals ("1234.56") as well as European
// formatting ("1.234,56").
func parseAmount(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(s)
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
