package option

import "github.com/shadowsec/shadowlint/shadowlint/gosrc"

// Rules selects which chained method calls declare URL patterns and which
// ones root an authorization chain.
type Rules struct {
	MatcherMethods    []string `json:"matcher-methods" yaml:"matcher-methods" mapstructure:"matcher-methods"`
	TerminatorMethods []string `json:"terminator-methods" yaml:"terminator-methods" mapstructure:"terminator-methods"`
}

func DefaultRules() Rules {
	def := gosrc.DefaultConfig()
	return Rules{
		MatcherMethods:    def.MatcherMethods,
		TerminatorMethods: def.TerminatorMethods,
	}
}
