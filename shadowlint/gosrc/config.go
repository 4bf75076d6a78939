package gosrc

// Config controls which chained calls are treated as rule declarations and
// which files are scanned.
type Config struct {
	// MatcherMethods are method names whose string arguments declare URL
	// patterns, e.g. AntMatchers("/admin/**").
	MatcherMethods []string `json:"matcher-methods" yaml:"matcher-methods" mapstructure:"matcher-methods"`

	// TerminatorMethods are method names that root an authorization chain;
	// declarations before them are out of the comparison window.
	TerminatorMethods []string `json:"terminator-methods" yaml:"terminator-methods" mapstructure:"terminator-methods"`

	// Include restricts scanning to files whose slash-relative path matches
	// any of these glob patterns. Empty means all .go files.
	Include []string `json:"include" yaml:"include" mapstructure:"include"`

	// Exclude removes files whose slash-relative path matches any of these
	// glob patterns.
	Exclude []string `json:"exclude" yaml:"exclude" mapstructure:"exclude"`
}

// DefaultConfig returns the method-name sets for the common security DSL
// spellings and no file filters.
func DefaultConfig() Config {
	return Config{
		MatcherMethods: []string{
			"AntMatchers",
			"RequestMatchers",
			"PathMatchers",
		},
		TerminatorMethods: []string{
			"AuthorizeRequests",
			"AuthorizeHTTPRequests",
		},
		Exclude: []string{},
		Include: []string{},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if len(c.MatcherMethods) == 0 {
		c.MatcherMethods = def.MatcherMethods
	}
	if len(c.TerminatorMethods) == 0 {
		c.TerminatorMethods = def.TerminatorMethods
	}
	return c
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
