package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hamilton-sales/internal/address"
	"github.com/hamilton-sales/internal/debug"
)

// ReadSalesCSV reads a scraped sales export into raw rows. Columns are
// located by header name, case-insensitively, accepting both the site's
// "Parcel Number" headings and snake_case variants. Malformed records are
// skipped, not fatal.
func ReadSalesCSV(debugEnabled bool, path string) ([]address.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	debug.DebugOutput(debugEnabled, "CSV columns: %v", header)

	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[normalizeHeader(col)] = i
	}

	var rows []address.Row
	recordCount := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			debug.DebugOutput(debugEnabled, "error reading CSV record %d: %v", recordCount, err)
			continue
		}
		recordCount++

		rows = append(rows, address.Row{
			ParcelNumber: columnValue(record, columnMap, "parcel_number"),
			Address:      columnValue(record, columnMap, "address"),
			BBB:          columnValue(record, columnMap, "bbb"),
			FinSqFt:      columnValue(record, columnMap, "finsqft"),
			Use:          columnValue(record, columnMap, "use"),
			YearBuilt:    columnValue(record, columnMap, "year_built"),
			TransferDate: columnValue(record, columnMap, "transfer_date"),
			Amount:       columnValue(record, columnMap, "amount"),
		})
	}

	debug.DebugOutput(debugEnabled, "read %d sale rows from %s", len(rows), path)
	return rows, nil
}

// normalizeHeader lowercases and snake_cases a CSV heading so "Parcel
// Number" and "parcel_number" address the same column.
func normalizeHeader(col string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(col)), " ", "_")
}

func columnValue(record []string, columnMap map[string]int, name string) string {
	idx, ok := columnMap[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
