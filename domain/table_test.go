package domain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRequest_Validate(t *testing.T) {
	valid := TableRequest{
		SummaryPath:  "results.csv",
		IndexColumn:  DefaultIndexColumn,
		OutputFormat: OutputFormatText,
		OutputWriter: &bytes.Buffer{},
	}

	tests := []struct {
		name    string
		mutate  func(r *TableRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *TableRequest) {},
		},
		{
			name:    "missing summary path",
			mutate:  func(r *TableRequest) { r.SummaryPath = "" },
			wantErr: true,
		},
		{
			name: "no writer and no path",
			mutate: func(r *TableRequest) {
				r.OutputWriter = nil
				r.OutputPath = ""
			},
			wantErr: true,
		},
		{
			name:   "output path without writer",
			mutate: func(r *TableRequest) { r.OutputWriter = nil; r.OutputPath = "out.html" },
		},
		{
			name:    "negative outlier threshold",
			mutate:  func(r *TableRequest) { r.OutlierThreshold = -1 },
			wantErr: true,
		},
		{
			name:    "unsupported format",
			mutate:  func(r *TableRequest) { r.OutputFormat = "xml" },
			wantErr: true,
		},
		{
			name:   "html format",
			mutate: func(r *TableRequest) { r.OutputFormat = OutputFormatHTML },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCostGroupColumns(t *testing.T) {
	assert.Equal(t, "total_cost_init", CostGroupTotal.InitColumn())
	assert.Equal(t, "visual_cost_final", CostGroupVisual.FinalColumn())
	assert.Equal(t, "imu_reduction_pct", CostGroupIMU.ReductionColumn())
}

func TestSortedKeys(t *testing.T) {
	datasets := map[string]*Dataset{
		"P2003_base": {},
		"P2001_base": {},
		"P2002_base": {},
	}
	assert.Equal(t, []string{"P2001_base", "P2002_base", "P2003_base"}, SortedKeys(datasets))
}
