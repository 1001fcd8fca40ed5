package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildVinsdashBinary builds the vinsdash binary into a temp directory and
// returns its path.
func buildVinsdashBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "vinsdash")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vinsdash")

	// Build from the project root (one level up from e2e directory)
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}
	cmd.Dir = projectRoot

	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build vinsdash binary: %v\n%s", err, out)
	}

	return binaryPath
}

// createTrajectoryCSV writes a small per-frame optimization log under dir.
func createTrajectoryCSV(t *testing.T, dir, name string) string {
	t.Helper()

	content := "frame_id,total_cost_init,total_cost_final,total_reduction_pct,solver_time_ms,iterations,num_features\n" +
		"0,120.5,40.2,66.6,11.0,8,140\n" +
		"1,130.0,45.0,65.4,12.5,9,150\n" +
		"2,125.0,42.0,66.4,11.8,8,145\n" +
		"3,0,0,0,0,0,0\n"

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create trajectory CSV: %v", err)
	}
	return path
}

// createSummaryCSV writes a small RMSE summary table under dir.
func createSummaryCSV(t *testing.T, dir string) string {
	t.Helper()

	content := "Sequence,base_w0,daac_depth_w100\n" +
		"P2001,0.5123,0.4890\n" +
		"P2002,0.6001,0.5432\n"

	path := filepath.Join(dir, "rmse_summary.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create summary CSV: %v", err)
	}
	return path
}

// createTestConfigFile creates a .vinsdash.toml in testDir that directs
// output to the specified output directory
func createTestConfigFile(t *testing.T, testDir, outputDir string) {
	t.Helper()
	configFile := filepath.Join(testDir, ".vinsdash.toml")
	configContent := fmt.Sprintf("[output]\ndirectory = \"%s\"\nopen_browser = false\n", outputDir)
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
}
