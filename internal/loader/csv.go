package loader

import (
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV reads a delimited-text file and returns the header row and the
// data rows. Quoting is relaxed because real-world exports are sloppy
// about embedded quotes in product descriptions.
func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty csv file: %s", path)
	}

	return records[0], records[1:], nil
}
