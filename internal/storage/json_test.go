package storage

import (
	"testing"
	"time"

	"jth/internal/config"
	"jth/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	verdicts := []domain.Verdict{
		{
			Fixture: domain.Fixture{Suite: "inner-classes", Name: "StaticInnerClass"},
			Status:  domain.StatusPassed,
		},
		{
			Fixture:  domain.Fixture{Suite: "inner-classes", Name: "Mismatch"},
			Status:   domain.StatusFailed,
			Expected: []string{"OUT: 6"},
			Actual:   []string{"OUT: 5"},
			Raw:      "RUNNING\nOUT: 5\nDONE\n",
		},
		{
			Fixture: domain.Fixture{Suite: "broken", Name: "Broken"},
			Status:  domain.StatusCompileFailed,
			Reason:  "error: ';' expected",
		},
	}

	st := NewJSONStorage(cfg)
	if err := st.Save(verdicts, 1500*time.Millisecond); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	meta := output.Meta
	if meta.TotalCases != 3 {
		t.Errorf("expected 3 total cases, got %d", meta.TotalCases)
	}
	if meta.PassedCases != 1 {
		t.Errorf("expected 1 passed case, got %d", meta.PassedCases)
	}
	if meta.FailedCases != 1 {
		t.Errorf("expected 1 failed case, got %d", meta.FailedCases)
	}
	if meta.CompileFailures != 1 {
		t.Errorf("expected 1 compile failure, got %d", meta.CompileFailures)
	}

	// Only non-passing cases carry diagnostic details
	if len(output.Details) != 2 {
		t.Fatalf("expected 2 detail records, got %d", len(output.Details))
	}
	if output.Details[0].Case != "Mismatch" {
		t.Errorf("expected first detail to be Mismatch, got %s", output.Details[0].Case)
	}
	if output.Details[1].Reason == "" {
		t.Error("expected compile failure reason to be stored")
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
