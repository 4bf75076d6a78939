package option

type Check struct {
	FailOnFindings bool     `json:"fail-on-findings" yaml:"fail-on-findings" mapstructure:"fail-on-findings"`
	Include        []string `json:"include" yaml:"include" mapstructure:"include"`
	Exclude        []string `json:"exclude" yaml:"exclude" mapstructure:"exclude"`
}

func DefaultCheck() Check {
	return Check{
		FailOnFindings: true,
		Include:        []string{},
		Exclude:        []string{},
	}
}
