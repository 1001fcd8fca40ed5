package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// TableServiceImpl implements the TableService interface
type TableServiceImpl struct {
	loader domain.SummaryLoader
}

// NewTableService creates a new table service
func NewTableService(loader domain.SummaryLoader) *TableServiceImpl {
	return &TableServiceImpl{loader: loader}
}

// Build loads the summary CSV and assembles the comparison table: outlier
// scores become missing cells, columns are renamed before selection so the
// variant filter can use the new names, and per-variant summaries are
// aggregated over the surviving cells.
func (s *TableServiceImpl) Build(ctx context.Context, req domain.TableRequest) (*domain.TableResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	table, err := s.loader.Load(req.SummaryPath, req.IndexColumn)
	if err != nil {
		return nil, err
	}

	var warnings []string

	if req.OutlierThreshold > 0 {
		dropped := dropOutliers(table, req.OutlierThreshold)
		if dropped > 0 {
			warnings = append(warnings, fmt.Sprintf("%d scores above %g marked as failed runs", dropped, req.OutlierThreshold))
		}
	}

	renameColumns(table, req.Rename)

	if len(req.Variants) > 0 {
		missing := selectVariants(table, req.Variants)
		if len(missing) > 0 {
			warnings = append(warnings, fmt.Sprintf("variants not found: %s", strings.Join(missing, ", ")))
		}
	} else if len(req.Exclude) > 0 {
		excludeVariants(table, req.Exclude)
	}

	summaries := summarizeVariants(table)

	bestVariant := ""
	bestMean := 0.0
	for _, sum := range summaries {
		if sum.Count == 0 {
			continue
		}
		if bestVariant == "" || sum.Mean < bestMean {
			bestVariant = sum.Variant
			bestMean = sum.Mean
		}
	}

	return &domain.TableResponse{
		Table:       table,
		Summaries:   summaries,
		BestVariant: bestVariant,
		Warnings:    warnings,
	}, nil
}

// dropOutliers removes cells above the threshold and returns how many were cut.
func dropOutliers(table *domain.SummaryTable, threshold float64) int {
	dropped := 0
	for _, row := range table.Scores {
		for column, v := range row {
			if v > threshold {
				delete(row, column)
				dropped++
			}
		}
	}
	return dropped
}

// renameColumns applies old->new column renames to the variant list and every row.
func renameColumns(table *domain.SummaryTable, rename map[string]string) {
	if len(rename) == 0 {
		return
	}
	for i, variant := range table.Variants {
		if newName, ok := rename[variant]; ok {
			table.Variants[i] = newName
		}
	}
	for _, row := range table.Scores {
		for old, newName := range rename {
			if v, ok := row[old]; ok {
				delete(row, old)
				row[newName] = v
			}
		}
	}
}

// selectVariants keeps only the named columns, in the requested order, and
// returns the names that do not exist in the table.
func selectVariants(table *domain.SummaryTable, variants []string) []string {
	var kept, missing []string
	for _, v := range variants {
		if table.HasVariant(v) {
			kept = append(kept, v)
		} else {
			missing = append(missing, v)
		}
	}
	if len(kept) == 0 {
		return missing
	}

	keep := make(map[string]bool, len(kept))
	for _, v := range kept {
		keep[v] = true
	}
	table.Variants = kept
	for _, row := range table.Scores {
		for column := range row {
			if !keep[column] {
				delete(row, column)
			}
		}
	}
	return missing
}

func excludeVariants(table *domain.SummaryTable, exclude []string) {
	drop := make(map[string]bool, len(exclude))
	for _, v := range exclude {
		drop[v] = true
	}

	variants := table.Variants[:0]
	for _, v := range table.Variants {
		if !drop[v] {
			variants = append(variants, v)
		}
	}
	table.Variants = variants
	for _, row := range table.Scores {
		for column := range row {
			if drop[column] {
				delete(row, column)
			}
		}
	}
}

// summarizeVariants aggregates each variant column over its present cells.
func summarizeVariants(table *domain.SummaryTable) []domain.VariantSummary {
	sequences := table.Sequences()
	summaries := make([]domain.VariantSummary, 0, len(table.Variants))

	for _, variant := range table.Variants {
		sum := domain.VariantSummary{Variant: variant}
		var values []float64
		best, worst := 0.0, 0.0
		for _, seq := range sequences {
			v, ok := table.Score(seq, variant)
			if !ok {
				continue
			}
			if len(values) == 0 || v < best {
				best = v
				sum.BestSequence = seq
			}
			if len(values) == 0 || v > worst {
				worst = v
				sum.WorstSequence = seq
			}
			values = append(values, v)
		}
		sum.Count = len(values)
		sum.Mean = Mean(values)
		sum.Std = StdDev(values)
		summaries = append(summaries, sum)
	}

	return summaries
}
