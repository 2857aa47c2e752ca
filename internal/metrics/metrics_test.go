package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveRun(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveRun("sum", time.Millisecond, nil)
	r.ObserveRun("sum", time.Millisecond, nil)
	r.ObserveRun("temp", time.Second, errors.New("bad input"))

	if got := testutil.ToFloat64(r.runs.WithLabelValues("sum", OutcomeSuccess)); got != 2 {
		t.Errorf("sum success runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.runs.WithLabelValues("temp", OutcomeError)); got != 1 {
		t.Errorf("temp error runs = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(r.duration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestRecorder_InputError(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.InputError("temperature")

	expected := `
# HELP drills_input_errors_total Rejected user input by field.
# TYPE drills_input_errors_total counter
drills_input_errors_total{field="temperature"} 1
`
	if err := testutil.CollectAndCompare(r.inputErrors, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveRun("rect", time.Microsecond, nil)

	path := filepath.Join(t.TempDir(), "drills.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`drills_exercise_runs_total{exercise="rect",outcome="success"} 1`, "go_goroutines"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}
