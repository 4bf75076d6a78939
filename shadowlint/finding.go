package shadowlint

import "fmt"

// lessRestrictiveLabel annotates the secondary location of every finding.
const lessRestrictiveLabel = "less restrictive"

// Finding is one ordering conflict: a pattern declared after a broader pattern
// that also matches it, making the narrower rule dead configuration. Offending
// always occurs later in chain-declaration order than Broader.
type Finding struct {
	Offending Pattern `json:"offending" yaml:"offending"`
	Broader   Pattern `json:"broader" yaml:"broader"`
}

// Message returns the primary issue message for the finding.
func (f Finding) Message() string {
	return fmt.Sprintf(
		"Reorder the URL patterns from most to less specific, the pattern %q should occur before %q.",
		f.Offending.Value, f.Broader.Value)
}

// SecondaryLocation is an auxiliary source reference attached to a reported
// issue, pointing at related code with a short label.
type SecondaryLocation struct {
	Label    string   `json:"label" yaml:"label"`
	Location Location `json:"location" yaml:"location"`
}

// Reporter is the sink findings are forwarded to. Implementations render the
// primary message at the primary location with any secondary context.
type Reporter interface {
	Report(message string, primary Location, secondary []SecondaryLocation)
}

// Report forwards the finding to the sink: the offending pattern's site is
// primary, the broader pattern's site is the single "less restrictive"
// secondary.
func (f Finding) Report(r Reporter) {
	r.Report(f.Message(), f.Offending.Site, []SecondaryLocation{
		{Label: lessRestrictiveLabel, Location: f.Broader.Site},
	})
}
