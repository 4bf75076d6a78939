package shadowlint

// Run statuses for a single target.
const (
	StatusClean    = "clean"
	StatusShadowed = "shadowed"
	StatusError    = "error"
)

// RunResponse is the complete JSON response structure for a shadowlint run
type RunResponse struct {
	Tool    string     `json:"tool"`
	Version string     `json:"version"`
	Run     RunDetails `json:"run"`
}

// RunDetails contains the execution details and results
type RunDetails struct {
	ReportID string         `json:"reportId,omitempty"`
	Argv     []string       `json:"argv"`
	Config   RunConfig      `json:"config"`
	Targets  []TargetResult `json:"targets"`
}

// RunConfig records the rule configuration the run was executed with
type RunConfig struct {
	MatcherMethods    []string `json:"matcherMethods"`
	TerminatorMethods []string `json:"terminatorMethods"`
	Include           []string `json:"include,omitempty"`
	Exclude           []string `json:"exclude,omitempty"`
}

// TargetResult represents the analysis result for a single target
type TargetResult struct {
	Source   SourceInfo      `json:"source"`
	Status   string          `json:"status"` // clean | shadowed | error
	Summary  TargetSummary   `json:"summary"`
	Findings []FindingResult `json:"findings"`
	Errors   []string        `json:"errors,omitempty"`
}

// SourceInfo contains information about the source being analyzed
type SourceInfo struct {
	Type string `json:"type"` // dir | file | stdin
	Ref  string `json:"ref"`
}

// TargetSummary provides statistics about the analyzed target
type TargetSummary struct {
	Files    int `json:"files"`
	Chains   int `json:"chains"`
	Patterns int `json:"patterns"`
	Findings int `json:"findings"`
}

// FindingResult is the reportable form of one ordering conflict
type FindingResult struct {
	Message   string              `json:"message"`
	Offending string              `json:"offending"`
	Broader   string              `json:"broader"`
	Primary   Location            `json:"primary"`
	Secondary []SecondaryLocation `json:"secondary"`
}

// NewFindingResult renders a Finding into its reportable form.
func NewFindingResult(f Finding) FindingResult {
	return FindingResult{
		Message:   f.Message(),
		Offending: f.Offending.Value,
		Broader:   f.Broader.Value,
		Primary:   f.Offending.Site,
		Secondary: []SecondaryLocation{
			{Label: lessRestrictiveLabel, Location: f.Broader.Site},
		},
	}
}

// NewRunResponse creates a response shell for the given invocation.
func NewRunResponse(tool, version string, argv []string, cfg RunConfig) *RunResponse {
	return &RunResponse{
		Tool:    tool,
		Version: version,
		Run: RunDetails{
			Argv:    argv,
			Config:  cfg,
			Targets: []TargetResult{},
		},
	}
}

// AddTarget appends a target result to the response
func (r *RunResponse) AddTarget(result TargetResult) {
	r.Run.Targets = append(r.Run.Targets, result)
}

// HasFindings returns true if any target produced at least one finding.
func (r *RunResponse) HasFindings() bool {
	for _, t := range r.Run.Targets {
		if t.Summary.Findings > 0 {
			return true
		}
	}
	return false
}

// HasErrors returns true if any target failed to be analyzed.
func (r *RunResponse) HasErrors() bool {
	for _, t := range r.Run.Targets {
		if t.Status == StatusError {
			return true
		}
	}
	return false
}
