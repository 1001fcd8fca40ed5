package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

const tableCSV = `Sequence,base_w0,sdi_w0,daac_depth_w100
P2001,0.5,0.5,0.4
P2002,0.6,0.6,150.0
P2005,0.7,0.7,0.3
`

func buildTableRequest(t *testing.T, csvContent string) domain.TableRequest {
	t.Helper()
	path := writeFile(t, t.TempDir(), "results_table.csv", csvContent)

	req := domain.DefaultTableRequest()
	req.SummaryPath = path
	req.OutputPath = "out.txt"
	return req
}

func TestTableBuildDefaults(t *testing.T) {
	svc := NewTableService(NewSummaryLoader())
	req := buildTableRequest(t, tableCSV)

	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	// base_w0 renamed, sdi_w0 excluded, outlier cell dropped.
	assert.Equal(t, []string{"baseline", "daac_depth_w100"}, resp.Table.Variants)
	_, ok := resp.Table.Score("P2002", "daac_depth_w100")
	assert.False(t, ok)
	assert.NotEmpty(t, resp.Warnings)

	require.Len(t, resp.Summaries, 2)
	baseline := resp.Summaries[0]
	assert.Equal(t, "baseline", baseline.Variant)
	assert.Equal(t, 3, baseline.Count)
	assert.InDelta(t, 0.6, baseline.Mean, 1e-9)
	assert.Equal(t, "P2001", baseline.BestSequence)
	assert.Equal(t, "P2005", baseline.WorstSequence)

	daac := resp.Summaries[1]
	assert.Equal(t, 2, daac.Count)
	assert.InDelta(t, 0.35, daac.Mean, 1e-9)

	assert.Equal(t, "daac_depth_w100", resp.BestVariant)
}

func TestTableBuildVariantsOverrideExclude(t *testing.T) {
	svc := NewTableService(NewSummaryLoader())
	req := buildTableRequest(t, tableCSV)
	req.Variants = []string{"sdi_w0", "nope"}

	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"sdi_w0"}, resp.Table.Variants)
	assert.Contains(t, resp.Warnings[len(resp.Warnings)-1], "nope")
}

func TestTableBuildZeroThresholdKeepsOutliers(t *testing.T) {
	svc := NewTableService(NewSummaryLoader())
	req := buildTableRequest(t, tableCSV)
	req.OutlierThreshold = 0

	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	v, ok := resp.Table.Score("P2002", "daac_depth_w100")
	require.True(t, ok)
	assert.InDelta(t, 150.0, v, 1e-9)
}

func TestTableBuildInvalidRequest(t *testing.T) {
	svc := NewTableService(NewSummaryLoader())

	_, err := svc.Build(context.Background(), domain.TableRequest{})
	assert.Error(t, err)
}

func TestTableBuildCancelledContext(t *testing.T) {
	svc := NewTableService(NewSummaryLoader())
	req := buildTableRequest(t, tableCSV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Build(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)
}
