package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestTableE2EText verifies the default text table on stdout
func TestTableE2EText(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	summaryPath := createSummaryCSV(t, t.TempDir())

	cmd := exec.Command(binaryPath, "table", summaryPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "P2001") || !strings.Contains(out, "Best variant") {
		t.Errorf("Unexpected table text output: %s", out)
	}
	// Default rename maps base_w0 to baseline
	if !strings.Contains(out, "baseline") {
		t.Errorf("Expected renamed baseline column, got: %s", out)
	}
}

// TestTableE2EJSONOutput verifies JSON output parses and carries the variants
func TestTableE2EJSONOutput(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	summaryPath := createSummaryCSV(t, t.TempDir())

	cmd := exec.Command(binaryPath, "table", summaryPath, "--json")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	var doc struct {
		Variants    []string `json:"variants"`
		BestVariant string   `json:"best_variant"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if len(doc.Variants) != 2 {
		t.Errorf("Expected 2 variants, got %v", doc.Variants)
	}
	if doc.BestVariant == "" {
		t.Error("Expected a best variant in JSON output")
	}
}

// TestTableE2EHTMLFile verifies --html writes the report file
func TestTableE2EHTMLFile(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	workDir := t.TempDir()
	summaryPath := createSummaryCSV(t, workDir)

	cmd := exec.Command(binaryPath, "table", summaryPath, "--html", "--no-open")
	cmd.Dir = workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	html, err := os.ReadFile(filepath.Join(workDir, "rmse_table.html"))
	if err != nil {
		t.Fatalf("Expected rmse_table.html: %v", err)
	}
	if !strings.Contains(string(html), "<table") {
		t.Error("HTML report should contain a table")
	}
}

// TestTableE2EVariantSelection verifies --variants keeps only the named columns
func TestTableE2EVariantSelection(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	summaryPath := createSummaryCSV(t, t.TempDir())

	cmd := exec.Command(binaryPath, "table", summaryPath, "--csv", "--variants", "daac_depth_w100")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	out := stdout.String()
	if strings.Contains(out, "baseline") {
		t.Errorf("Variant selection should drop other columns, got: %s", out)
	}
	if !strings.Contains(out, "daac_depth_w100") {
		t.Errorf("Expected selected variant column, got: %s", out)
	}
}
