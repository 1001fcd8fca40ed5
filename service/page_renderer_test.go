package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

func sampleDashboardData(t *testing.T) *domain.DashboardData {
	t.Helper()

	columns := map[string][]float64{
		domain.ColumnFrameID:      {1, 2, 3},
		domain.ColumnSolverTime:   {10, 20, 30},
		domain.ColumnIterations:   {4, 4, 4},
		domain.ColumnFeatures:     {100, 100, 100},
		"total_cost_init":         {100, 200, 300},
		"total_cost_final":        {10, 20, 30},
		"total_reduction_pct":     {90, 90, 90},
		"visual_cost_init":        {50, 60, 70},
		"visual_cost_final":       {5, 6, 7},
		"visual_reduction_pct":    {90, 90, 90},
		domain.ColumnDepthFactors: {0, 2, 4},
	}

	svc := NewStatsService()
	data := &domain.DashboardData{
		Keys:        []string{"P2001_base", "P2002"},
		Datasets:    map[string]*domain.Dataset{},
		Stats:       map[string]domain.DatasetStats{},
		GeneratedAt: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
		Version:     "test",
		Summary: &domain.SummaryTable{
			IndexColumn: "Sequence",
			Variants:    []string{"baseline"},
			Scores: map[string]map[string]float64{
				"P2001": {"baseline": 0.5123},
			},
		},
	}

	for _, key := range data.Keys {
		dataset := buildDataset(columns)
		dataset.Key = key
		data.Datasets[key] = dataset
		data.Stats[key] = svc.Compute(dataset)
	}
	return data
}

func TestRenderIndex(t *testing.T) {
	renderer, err := NewPageRenderer(600)
	require.NoError(t, err)
	data := sampleDashboardData(t)

	html, err := renderer.RenderIndex(data)
	require.NoError(t, err)

	assert.Contains(t, html, "VINS-Fusion Optimization Dashboard")
	assert.Contains(t, html, `href="P2001_base.html"`)
	assert.Contains(t, html, `href="P2002.html"`)
	assert.Contains(t, html, `href="compare.html"`)
	// Resolved summary score shows on the card.
	assert.Contains(t, html, "0.5123")
	// Variant description from the key.
	assert.Contains(t, html, "Baseline Diagnostics")
	assert.Contains(t, html, "Detailed Statistics")
}

func TestRenderIndexDeterministic(t *testing.T) {
	renderer, err := NewPageRenderer(600)
	require.NoError(t, err)
	data := sampleDashboardData(t)

	first, err := renderer.RenderIndex(data)
	require.NoError(t, err)
	second, err := renderer.RenderIndex(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDataset(t *testing.T) {
	renderer, err := NewPageRenderer(480)
	require.NoError(t, err)
	data := sampleDashboardData(t)

	html, err := renderer.RenderDataset(data, "P2001_base")
	require.NoError(t, err)

	assert.Contains(t, html, "P2001_base")
	assert.Contains(t, html, "cdn.plot.ly")
	assert.Contains(t, html, "chart_total")
	assert.Contains(t, html, "chart_depth")
	assert.Contains(t, html, "const chartHeight = 480;")
	// Inlined series for the charts.
	assert.Contains(t, html, `"total_cost_init":[100,200,300]`)
	// Missing chart columns become zero series instead of JS undefined.
	assert.Contains(t, html, `"imu_cost_init":[0,0,0]`)
	assert.Contains(t, html, "Summary Statistics")
}

func TestRenderDatasetUnknownKey(t *testing.T) {
	renderer, err := NewPageRenderer(600)
	require.NoError(t, err)

	_, err = renderer.RenderDataset(sampleDashboardData(t), "P9999")
	assert.Error(t, err)
}

func TestRenderCompare(t *testing.T) {
	renderer, err := NewPageRenderer(600)
	require.NoError(t, err)
	data := sampleDashboardData(t)

	html, err := renderer.RenderCompare(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Interactive Comparison Tool")
	assert.Contains(t, html, `<option value="P2001_base">`)
	// Second dataset is preselected in the B selector.
	assert.Contains(t, html, `<option value="P2002" selected>`)
	assert.Contains(t, html, "const datasets =")
	assert.Contains(t, html, "const rmseData =")
	assert.Contains(t, html, "Plotly.newPlot")
}

func TestRenderCompareNoSummary(t *testing.T) {
	renderer, err := NewPageRenderer(600)
	require.NoError(t, err)
	data := sampleDashboardData(t)
	data.Summary = nil

	html, err := renderer.RenderCompare(data)
	require.NoError(t, err)
	assert.Contains(t, html, "const rmseData =")
}
