package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// SummaryLoaderImpl implements the SummaryLoader interface
type SummaryLoaderImpl struct{}

// NewSummaryLoader creates a new summary CSV loader
func NewSummaryLoader() *SummaryLoaderImpl {
	return &SummaryLoaderImpl{}
}

// Load parses the accuracy summary CSV: one row per sequence, one float
// column per variant, keyed by indexColumn. Blank cells stay absent; cells
// that fail to parse as floats are treated the same way.
func (l *SummaryLoaderImpl) Load(path, indexColumn string) (*domain.SummaryTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewParseError(fmt.Sprintf("failed to parse summary CSV: %s", path), err)
	}
	if len(records) == 0 {
		return nil, domain.NewParseError(fmt.Sprintf("summary CSV is empty: %s", path), nil)
	}

	header := records[0]
	indexPos := -1
	for i, name := range header {
		if strings.TrimSpace(name) == indexColumn {
			indexPos = i
			break
		}
	}
	if indexPos < 0 {
		return nil, domain.NewParseError(fmt.Sprintf("summary CSV %s has no %q column", path, indexColumn), nil)
	}

	variants := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != indexPos {
			variants = append(variants, strings.TrimSpace(name))
		}
	}

	scores := make(map[string]map[string]float64, len(records)-1)
	for _, record := range records[1:] {
		if indexPos >= len(record) {
			continue
		}
		sequence := strings.TrimSpace(record[indexPos])
		if sequence == "" {
			continue
		}
		row := make(map[string]float64)
		for i, cell := range record {
			if i == indexPos {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row[strings.TrimSpace(header[i])] = v
		}
		scores[sequence] = row
	}

	return &domain.SummaryTable{
		IndexColumn: indexColumn,
		Variants:    variants,
		Scores:      scores,
	}, nil
}
