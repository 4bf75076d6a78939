package shadowlint

// Pattern is one literal URL pattern argument together with the source site it
// was declared at. Pattern values only exist for arguments that resolved to a
// string constant; anything else never becomes a Pattern.
type Pattern struct {
	Value string   `json:"value" yaml:"value"`
	Site  Location `json:"site" yaml:"site"`
}
