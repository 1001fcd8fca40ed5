package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// TrajectoryLoaderImpl implements the TrajectoryLoader interface
type TrajectoryLoaderImpl struct{}

// NewTrajectoryLoader creates a new trajectory CSV loader
func NewTrajectoryLoader() *TrajectoryLoaderImpl {
	return &TrajectoryLoaderImpl{}
}

// Discover returns the sorted paths of files under inputDir whose base name
// matches pattern. Subdirectories are not descended into; the solver logger
// writes all trajectory files flat.
func (l *TrajectoryLoaderImpl) Discover(inputDir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, domain.NewFileNotFoundError(inputDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid glob pattern: %s", pattern), err)
		}
		if matched {
			paths = append(paths, filepath.Join(inputDir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Load parses one trajectory CSV into a dataset. The final data row is always
// dropped: the logger appends while the solver runs, so the last line may be
// cut off mid-write. Rows with the wrong field count or non-numeric cells are
// skipped and reported as warnings.
func (l *TrajectoryLoaderImpl) Load(path string) (*domain.Dataset, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, domain.NewFileNotFoundError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, domain.NewParseError(fmt.Sprintf("failed to read CSV header: %s", path), err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	var warnings []string
	var rows [][]float64
	line := 1
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		line++

		if len(record) != len(columns) {
			warnings = append(warnings, fmt.Sprintf("%s:%d: expected %d fields, got %d; row skipped", path, line, len(columns), len(record)))
			continue
		}

		row := make([]float64, len(record))
		ok := true
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s:%d: non-numeric value %q in column %s; row skipped", path, line, cell, columns[i]))
				ok = false
				break
			}
			row[i] = v
		}
		if ok {
			rows = append(rows, row)
		}
	}

	// Drop the trailing row.
	if len(rows) > 0 {
		rows = rows[:len(rows)-1]
	}

	series := make(map[string][]float64, len(columns))
	for i, name := range columns {
		values := make([]float64, len(rows))
		for j, row := range rows {
			values[j] = row[i]
		}
		series[name] = values
	}

	return &domain.Dataset{
		Key:     DatasetKeyFromPath(path),
		Path:    path,
		Columns: columns,
		Series:  series,
		Rows:    len(rows),
	}, warnings, nil
}

// DatasetKeyFromPath derives the dataset key from a trajectory filename.
func DatasetKeyFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
