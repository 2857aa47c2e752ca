package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and runs it as a user would.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	tmpDir := t.TempDir()
	binName := "drills"
	if runtime.GOOS == "windows" {
		binName = "drills.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/drills")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build drills: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:    "Slices",
			args:    []string{"slices"},
			wantOut: "Hel\nhello",
		},
		{
			name:    "Sum Defaults",
			args:    []string{"sum"},
			wantOut: "The sum is: 150",
		},
		{
			name:     "Sum Overflow",
			args:     []string{"sum", "9223372036854775807", "1"},
			wantOut:  "overflows 64-bit",
			wantCode: 4,
		},
		{
			name:    "Temperature",
			args:    []string{"temp"},
			stdin:   "100\n10\n",
			wantOut: "10th Fibonacci number is: 55",
		},
		{
			name:     "Temperature Malformed",
			args:     []string{"temp"},
			stdin:    "abc\n10\n",
			wantOut:  `invalid temperature "abc"`,
			wantCode: 4,
		},
		{
			name:    "Rectangles",
			args:    []string{"rect"},
			wantOut: "Can rect1 hold rect3? false",
		},
		{
			name:    "Fibonacci",
			args:    []string{"fib", "10"},
			wantOut: "F(10) = 55",
		},
		{
			name:    "Fibonacci Compare",
			args:    []string{"fib", "compare", "30"},
			wantOut: "F(30) = 832040",
		},
		{
			name:    "Fibonacci Last Digits",
			args:    []string{"fib", "1000000", "--last-digits", "6"},
			wantOut: "Last 6 digits",
		},
		{
			name:     "Fibonacci Overflow",
			args:     []string{"fib", "93"},
			wantCode: 4,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"fib", "1000000000", "--algo", "fast", "--timeout", "1ms"},
			wantCode: 130,
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "Version",
			args:    []string{"version"},
			wantOut: "drills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running drills: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
