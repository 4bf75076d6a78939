package command

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/shadowsec/shadowlint/cmd/shadowlint/cli/internal"
	"github.com/shadowsec/shadowlint/shadowlint"
)

// Explain creates the explain command
func Explain() *cobra.Command {
	return &cobra.Command{
		Use:   "explain PATTERN [TEXT...]",
		Short: "Show how an ant-style pattern is matched",
		Long: `Explain compiles an ant-style URL pattern and prints the regular expression it
translates to, then tests any additional arguments against it.

Examples:
  shadowlint explain "/admin/**"
  shadowlint explain "/a*" /axyz /a/b`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExplain,
	}
}

// runExplain executes the explain command
func runExplain(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	rule := shadowlint.Compile(pattern)

	fmt.Printf("Pattern:    %s\n", pattern)
	switch {
	case pattern == "":
		fmt.Printf("Expression: %s\n", dim("(empty pattern, matches nothing)"))
	case strings.Contains(pattern, "{"):
		fmt.Printf("Expression: %s\n", dim("(path variable syntax, not a glob, matches nothing)"))
	default:
		fmt.Printf("Expression: %s\n", rule.Expression())
	}

	for _, text := range args[1:] {
		if rule.Matches(text) {
			fmt.Printf("  %s %s\n", color.Green.Sprint("✔"), text)
		} else {
			fmt.Printf("  %s %s\n", color.Red.Sprint("✗"), text)
		}
	}
	return nil
}

func dim(s string) string {
	if !internal.IsStdoutATerminal() {
		return s
	}
	return color.Gray.Sprint(s)
}
