package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalniak/vins-dashboard-generator/domain"
	"github.com/aalniak/vins-dashboard-generator/service"
)

func writeSummary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rmse.csv")
	content := "sequence,base_w0,sdi_w0,daac_depth_w100\n" +
		"P2001,0.5123,0.5123,0.4890\n" +
		"P2002,0.6001,0.6001,0.5432\n" +
		"P2003,150.0,0.7120,0.6980\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTableUseCase(t *testing.T) *TableUseCase {
	t.Helper()
	uc, err := NewTableUseCaseBuilder().
		WithService(service.NewTableService(service.NewSummaryLoader())).
		WithFormatter(service.NewTableFormatter()).
		WithWriter(service.NewFileOutputWriter(io.Discard)).
		Build()
	require.NoError(t, err)
	return uc
}

func TestTableUseCaseExecuteText(t *testing.T) {
	var buf bytes.Buffer
	uc := newTableUseCase(t)

	resp, err := uc.Execute(context.Background(), domain.TableRequest{
		SummaryPath:      writeSummary(t),
		IndexColumn:      "sequence",
		OutputFormat:     domain.OutputFormatText,
		OutputWriter:     &buf,
		Exclude:          []string{"sdi_w0"},
		Rename:           map[string]string{"base_w0": "baseline"},
		OutlierThreshold: 100,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.GeneratedAt)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, []string{"baseline", "daac_depth_w100"}, resp.Table.Variants)

	out := buf.String()
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "P2003")
	assert.NotContains(t, out, "sdi_w0")
	assert.Contains(t, out, "Best variant")
}

func TestTableUseCaseExecuteHTMLFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "table.html")
	uc := newTableUseCase(t)

	_, err := uc.Execute(context.Background(), domain.TableRequest{
		SummaryPath:  writeSummary(t),
		IndexColumn:  "sequence",
		OutputFormat: domain.OutputFormatHTML,
		OutputPath:   outPath,
		NoOpen:       true,
	})
	require.NoError(t, err)

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table")
	assert.Contains(t, string(html), "P2001")
}

func TestTableUseCaseExecuteInvalidRequest(t *testing.T) {
	uc := newTableUseCase(t)

	_, err := uc.Execute(context.Background(), domain.TableRequest{
		IndexColumn:  "sequence",
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &bytes.Buffer{},
	})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeInvalidInput, domainErr.Code)
}

func TestTableUseCaseBuilderValidation(t *testing.T) {
	_, err := NewTableUseCaseBuilder().Build()
	assert.ErrorContains(t, err, "table service is required")

	_, err = NewTableUseCaseBuilder().
		WithService(service.NewTableService(service.NewSummaryLoader())).
		WithFormatter(service.NewTableFormatter()).
		Build()
	assert.ErrorContains(t, err, "report writer is required")
}
