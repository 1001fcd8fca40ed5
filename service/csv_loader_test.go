package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "P2001_base.csv", "frame_id\n")
	writeFile(t, dir, "P2002.csv", "frame_id\n")
	writeFile(t, dir, "notes.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "P2003_dir.csv"), 0o755))

	loader := NewTrajectoryLoader()
	paths, err := loader.Discover(dir, "P*.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "P2001_base.csv"),
		filepath.Join(dir, "P2002.csv"),
	}, paths)
}

func TestDiscoverNoMatches(t *testing.T) {
	loader := NewTrajectoryLoader()
	paths, err := loader.Discover(t.TempDir(), "P*.csv")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDiscoverMissingDir(t *testing.T) {
	loader := NewTrajectoryLoader()
	_, err := loader.Discover(filepath.Join(t.TempDir(), "nope"), "P*.csv")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeFileNotFound, domainErr.Code)
}

func TestLoadDropsTrailingRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "P2001_base.csv",
		"frame_id,total_cost_init\n"+
			"1,10\n"+
			"2,20\n"+
			"3,30\n")

	loader := NewTrajectoryLoader()
	dataset, warnings, err := loader.Load(path)
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.Equal(t, "P2001_base", dataset.Key)
	assert.Equal(t, []string{"frame_id", "total_cost_init"}, dataset.Columns)
	assert.Equal(t, 2, dataset.Rows)
	assert.Equal(t, []float64{1, 2}, dataset.Series["frame_id"])
	assert.Equal(t, []float64{10, 20}, dataset.Series["total_cost_init"])
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "P2001.csv",
		"frame_id,total_cost_init\n"+
			"1,10\n"+
			"2,oops\n"+
			"3,30\n"+
			"4,40,99\n"+
			"5,50\n")

	loader := NewTrajectoryLoader()
	dataset, warnings, err := loader.Load(path)
	require.NoError(t, err)

	// Rows 2 and 4 are skipped, row 5 is the dropped trailing row.
	assert.Len(t, warnings, 2)
	assert.Equal(t, 2, dataset.Rows)
	assert.Equal(t, []float64{1, 3}, dataset.Series["frame_id"])
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "P2001.csv", "")

	loader := NewTrajectoryLoader()
	_, _, err := loader.Load(path)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeParseError, domainErr.Code)
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewTrajectoryLoader()
	_, _, err := loader.Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestDatasetKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/P2001_base.csv", "P2001_base"},
		{"P2002.csv", "P2002"},
		{"runs/P2005_daac_rgd_inv.csv", "P2005_daac_rgd_inv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DatasetKeyFromPath(tt.path))
	}
}
