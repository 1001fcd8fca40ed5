package service

import (
	"math"
	"sort"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// StatsServiceImpl implements the StatsService interface
type StatsServiceImpl struct{}

// NewStatsService creates a new statistics service
func NewStatsService() *StatsServiceImpl {
	return &StatsServiceImpl{}
}

// Compute builds the per-dataset roll-up: generic column statistics for every
// series plus the VINS-specific aggregates driving the overview cards.
func (s *StatsServiceImpl) Compute(dataset *domain.Dataset) domain.DatasetStats {
	stats := domain.DatasetStats{
		Frames:  dataset.Rows,
		Costs:   make(map[domain.CostGroup]domain.CostStats),
		Columns: make(map[string]domain.ColumnStats, len(dataset.Columns)),
	}

	for _, name := range dataset.Columns {
		values, _ := dataset.Column(name)
		stats.Columns[name] = s.ComputeColumn(values)
	}

	if cs, ok := stats.Columns[domain.ColumnSolverTime]; ok {
		stats.SolverTimeAvg = cs.Mean
	}
	if cs, ok := stats.Columns[domain.ColumnIterations]; ok {
		stats.IterationsAvg = cs.Mean
	}
	if cs, ok := stats.Columns[domain.ColumnFeatures]; ok {
		stats.FeaturesAvg = cs.Mean
	}

	// Cost levels use medians so a handful of divergence spikes cannot
	// dominate; reduction percentages average cleanly.
	for _, group := range domain.CostGroups {
		init, hasInit := stats.Columns[group.InitColumn()]
		final, hasFinal := stats.Columns[group.FinalColumn()]
		if !hasInit && !hasFinal {
			continue
		}
		cost := domain.CostStats{
			InitMedian:  init.Median,
			FinalMedian: final.Median,
		}
		if red, ok := stats.Columns[group.ReductionColumn()]; ok {
			cost.ReductionAvg = red.Mean
		}
		stats.Costs[group] = cost
	}

	stats.VisualFactorsAvg = s.sumMeans(stats.Columns,
		domain.ColumnVisualMonoFactors,
		domain.ColumnVisualStereoFactors,
		domain.ColumnVisualOneFrameFactors)
	stats.IMUFactorsAvg = s.sumMeans(stats.Columns, domain.ColumnIMUFactors)
	stats.DepthFactorsAvg = s.sumMeans(stats.Columns, domain.ColumnDepthFactors)
	stats.MarginFactorsAvg = s.sumMeans(stats.Columns, domain.ColumnMarginFactors)

	return stats
}

// ComputeColumn computes the aggregate statistics of one series. NaN samples
// are ignored; an all-NaN or empty series yields zero stats.
func (s *StatsServiceImpl) ComputeColumn(values []float64) domain.ColumnStats {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return domain.ColumnStats{}
	}

	stats := domain.ColumnStats{
		Min:   clean[0],
		Max:   clean[0],
		Last:  clean[len(clean)-1],
		Count: len(clean),
	}

	sum := 0.0
	for _, v := range clean {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = sum / float64(len(clean))
	stats.Median = median(clean)

	return stats
}

func (s *StatsServiceImpl) sumMeans(columns map[string]domain.ColumnStats, names ...string) float64 {
	total := 0.0
	for _, name := range names {
		if cs, ok := columns[name]; ok {
			total += cs.Mean
		}
	}
	return total
}

// median returns the middle value of the samples. Does not mutate its input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation, 0 for fewer than two samples.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
