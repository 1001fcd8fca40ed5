package domain

import "sort"

// Well-known trajectory columns emitted by the VINS-Fusion solver logger.
// The loader and statistics are schema-agnostic; these names only drive the
// cost charts and the roll-up statistics on the rendered pages.
const (
	ColumnFrameID    = "frame_id"
	ColumnSolverTime = "solver_time_ms"
	ColumnIterations = "iterations"
	ColumnFeatures   = "num_features"

	ColumnVisualMonoFactors     = "num_visual_mono_factors"
	ColumnVisualStereoFactors   = "num_visual_stereo_factors"
	ColumnVisualOneFrameFactors = "num_visual_one_frame_factors"
	ColumnIMUFactors            = "num_imu_factors"
	ColumnDepthFactors          = "num_depth_factors"
	ColumnMarginFactors         = "num_margin_factors"
)

// CostGroup identifies one residual group tracked by the solver.
type CostGroup string

const (
	CostGroupTotal  CostGroup = "total"
	CostGroupVisual CostGroup = "visual"
	CostGroupIMU    CostGroup = "imu"
	CostGroupDepth  CostGroup = "depth"
	CostGroupMargin CostGroup = "margin"
)

// CostGroups lists all residual groups in display order.
var CostGroups = []CostGroup{
	CostGroupTotal,
	CostGroupVisual,
	CostGroupIMU,
	CostGroupDepth,
	CostGroupMargin,
}

// InitColumn returns the column holding the pre-optimization cost for the group.
func (g CostGroup) InitColumn() string { return string(g) + "_cost_init" }

// FinalColumn returns the column holding the post-optimization cost for the group.
func (g CostGroup) FinalColumn() string { return string(g) + "_cost_final" }

// ReductionColumn returns the column holding the per-frame reduction percentage.
func (g CostGroup) ReductionColumn() string { return string(g) + "_reduction_pct" }

// Dataset is one loaded trajectory table. Immutable once loaded: rows are
// samples over the frame axis, columns are named numeric series.
type Dataset struct {
	// Key is the dataset identifier derived from the source filename
	Key string

	// Path is the source file the table was loaded from
	Path string

	// Columns preserves the header order of the source file
	Columns []string

	// Series holds one float64 slice per column, all of length Rows
	Series map[string][]float64

	// Rows is the number of retained samples
	Rows int
}

// Column returns the series for the given column name.
func (d *Dataset) Column(name string) ([]float64, bool) {
	s, ok := d.Series[name]
	return s, ok
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.Series[name]
	return ok
}

// ColumnStats holds the aggregate statistics for a single numeric series.
type ColumnStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Last   float64 `json:"last"`
	Count  int     `json:"count"`
}

// CostStats summarizes one residual group across the trajectory. Cost levels
// use medians (robust to divergence spikes), reductions use means.
type CostStats struct {
	InitMedian   float64 `json:"init_median"`
	FinalMedian  float64 `json:"final_median"`
	ReductionAvg float64 `json:"reduction_avg"`
}

// DatasetStats is the per-dataset roll-up shown on the overview and detail pages.
type DatasetStats struct {
	Frames int `json:"frames"`

	SolverTimeAvg float64 `json:"solver_time_avg"`
	IterationsAvg float64 `json:"iterations_avg"`
	FeaturesAvg   float64 `json:"features_avg"`

	// Costs is keyed by residual group; groups absent from the source table
	// are omitted
	Costs map[CostGroup]CostStats `json:"costs"`

	// Mean factor counts per frame
	VisualFactorsAvg float64 `json:"visual_factors_avg"`
	IMUFactorsAvg    float64 `json:"imu_factors_avg"`
	DepthFactorsAvg  float64 `json:"depth_factors_avg"`
	MarginFactorsAvg float64 `json:"margin_factors_avg"`

	// Columns holds generic statistics for every source column, so tables
	// outside the known VINS schema still aggregate
	Columns map[string]ColumnStats `json:"columns"`
}

// Cost returns the stats for a residual group, if present.
func (s DatasetStats) Cost(group CostGroup) (CostStats, bool) {
	c, ok := s.Costs[group]
	return c, ok
}

// SortedKeys returns dataset keys in deterministic display order.
func SortedKeys(datasets map[string]*Dataset) []string {
	keys := make([]string, 0, len(datasets))
	for k := range datasets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
