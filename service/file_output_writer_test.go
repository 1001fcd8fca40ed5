package service

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

func TestWritePage(t *testing.T) {
	dir := t.TempDir()
	w := NewFileOutputWriter(io.Discard)

	path, err := w.WritePage(filepath.Join(dir, "site"), "index.html", "<html></html>")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))
}

func TestWritePageCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	w := NewFileOutputWriter(io.Discard)

	nested := filepath.Join(dir, "a", "b")
	_, err := w.WritePage(nested, "page.html", "x")
	require.NoError(t, err)
	assert.DirExists(t, nested)
}

func TestWriteToWriter(t *testing.T) {
	var status, out strings.Builder
	w := NewFileOutputWriter(&status)

	err := w.Write(&out, "", domain.OutputFormatText, true, func(dst io.Writer) error {
		_, err := io.WriteString(dst, "hello")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", out.String())
	assert.Empty(t, status.String())
}

func TestWriteToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	var status strings.Builder
	w := NewFileOutputWriter(&status)

	err := w.Write(nil, path, domain.OutputFormatJSON, true, func(dst io.Writer) error {
		_, err := io.WriteString(dst, "{}")
		return err
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
	assert.Contains(t, status.String(), "JSON report generated")
}

func TestWriteHTMLNoOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")
	var status strings.Builder
	w := NewFileOutputWriter(&status)

	err := w.Write(nil, path, domain.OutputFormatHTML, true, func(dst io.Writer) error {
		_, err := io.WriteString(dst, "<html></html>")
		return err
	})
	require.NoError(t, err)
	assert.Contains(t, status.String(), "HTML report generated")
}
