package shadowlint

import "fmt"

// Location is the source position of a pattern argument. It is carried through
// analysis for reporting only and never participates in matching.
type Location struct {
	File   string `json:"file" yaml:"file"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// String returns the location in the conventional file:line:column form.
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid returns true if the location carries usable file and line information.
func (l Location) IsValid() bool {
	return l.File != "" && l.Line > 0
}
