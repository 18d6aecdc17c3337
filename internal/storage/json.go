package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jth/internal/domain"
)

// Save writes the run's verdicts to the configured JSON output file. Only
// non-passing cases carry a diagnostic detail record.
func (s *JSONStorage) Save(verdicts []domain.Verdict, duration time.Duration) error {
	passed := 0
	failed := 0
	compileFailed := 0
	var details []domain.CaseFailure
	for _, v := range verdicts {
		switch v.Status {
		case domain.StatusPassed:
			passed++
			continue
		case domain.StatusCompileFailed:
			compileFailed++
		default:
			failed++
		}
		details = append(details, domain.FailureFromVerdict(v))
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalCases:      len(verdicts),
			PassedCases:     passed,
			FailedCases:     failed,
			CompileFailures: compileFailed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}

	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after marking failures resolved).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
