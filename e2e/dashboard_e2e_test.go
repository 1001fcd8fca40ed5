package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGenerateE2EBasic runs the generate command against two trajectory logs
func TestGenerateE2EBasic(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "site")
	createTrajectoryCSV(t, inputDir, "P2001_base.csv")
	createTrajectoryCSV(t, inputDir, "P2001_daac_rgd_inv.csv")

	cmd := exec.Command(binaryPath, "generate",
		"--input-dir", inputDir,
		"--output-dir", outputDir,
		"--no-open",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	if !strings.Contains(stdout.String(), "Generated 2 dataset pages") {
		t.Errorf("Unexpected generate output: %s", stdout.String())
	}

	for _, name := range []string{"index.html", "compare.html", "P2001_base.html", "P2001_daac_rgd_inv.html"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("Expected page %s: %v", name, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("Failed to read index: %v", err)
	}
	if !strings.Contains(string(index), "P2001_base.html") {
		t.Error("Index should link the dataset pages")
	}
}

// TestGenerateE2EWithSummary verifies RMSE scores land on the index cards
func TestGenerateE2EWithSummary(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "site")
	createTrajectoryCSV(t, inputDir, "P2001_base.csv")
	summaryPath := createSummaryCSV(t, inputDir)

	cmd := exec.Command(binaryPath, "generate",
		"--input-dir", inputDir,
		"--output-dir", outputDir,
		"--rmse", summaryPath,
		"--no-open",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("Failed to read index: %v", err)
	}
	if !strings.Contains(string(index), "0.5123") {
		t.Error("Index should show the RMSE score from the summary CSV")
	}
}

// TestGenerateE2EConfigFile verifies the output directory can come from
// .vinsdash.toml discovered in the working directory
func TestGenerateE2EConfigFile(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	testDir := t.TempDir()
	outputDir := t.TempDir()
	createTrajectoryCSV(t, testDir, "P2001_base.csv")
	createTestConfigFile(t, testDir, outputDir)

	cmd := exec.Command(binaryPath, "generate", "--input-dir", testDir)
	cmd.Dir = testDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(outputDir, "index.html")); err != nil {
		t.Errorf("Expected index in configured output directory: %v", err)
	}
}

// TestGenerateE2EEmptyInput verifies an empty input directory warns, exits
// zero and still writes an index listing no datasets
func TestGenerateE2EEmptyInput(t *testing.T) {
	binaryPath := buildVinsdashBinary(t)
	defer os.Remove(binaryPath)

	outputDir := filepath.Join(t.TempDir(), "site")
	cmd := exec.Command(binaryPath, "generate",
		"--input-dir", t.TempDir(),
		"--output-dir", outputDir,
		"--no-open",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command should succeed on empty input: %v", err)
	}
	if !strings.Contains(stderr.String(), "no files matching") {
		t.Errorf("Expected warning about empty input, got: %s", stderr.String())
	}

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("Expected index even with no datasets: %v", err)
	}
	if strings.Contains(string(index), `class="card"`) {
		t.Errorf("Expected no dataset cards in empty index")
	}
}
