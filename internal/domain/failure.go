package domain

// CaseFailure is the stored diagnostic record of one failed case
type CaseFailure struct {
	Suite     string   `json:"suite"`
	Case      string   `json:"case"`
	FilePath  string   `json:"file_path"`
	ClassDir  string   `json:"class_dir,omitempty"`
	Status    Status   `json:"status"`
	Reason    string   `json:"reason,omitempty"`
	Expected  []string `json:"expected,omitempty"`
	Actual    []string `json:"actual,omitempty"`
	RawOutput string   `json:"raw_output,omitempty"`
	Resolved  bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved in the viewer
}

// FailureFromVerdict converts a non-passing verdict into its storable form
func FailureFromVerdict(v Verdict) CaseFailure {
	return CaseFailure{
		Suite:     v.Fixture.Suite,
		Case:      v.Fixture.Name,
		FilePath:  v.Fixture.Path,
		ClassDir:  v.ClassDir,
		Status:    v.Status,
		Reason:    v.Reason,
		Expected:  v.Expected,
		Actual:    v.Actual,
		RawOutput: v.Raw,
	}
}
