package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config creates the config command
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate a configuration file with all available options",
		Long: `Generate a complete YAML configuration file with all available shadowlint options:
- which chained method calls declare URL patterns and which root a chain
- file include/exclude glob filters
- output and failure behavior

The generated configuration can be saved as .shadowlint.yaml and customized as needed.`,
		RunE: runConfig,
	}

	// Add command-specific flags
	cmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")

	return cmd
}

// runConfig executes the config command
func runConfig(cmd *cobra.Command, args []string) error {
	outputFile, _ := cmd.Flags().GetString("output")

	config, err := generateConfig()
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	if outputFile != "" {
		dir := filepath.Dir(outputFile)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(outputFile, []byte(config), 0600); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("Configuration written to: %s\n", outputFile)
	} else {
		fmt.Print(config)
	}

	return nil
}

// generateConfig generates a commented configuration file from the defaults
func generateConfig() (string, error) {
	yamlData, err := yaml.Marshal(DefaultFileConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	var result strings.Builder
	result.WriteString(`# Shadowlint Configuration
# Complete configuration file with all available options

`)

	for _, line := range strings.Split(string(yamlData), "\n") {
		switch {
		case strings.HasPrefix(line, "format:"):
			result.WriteString(line + ` # Output format: "table" or "json" (default: "table")` + "\n")
		case strings.HasPrefix(line, "rules:"):
			result.WriteString("# Which chained method calls the analyzer watches\n" + line + "\n")
		case strings.HasPrefix(line, "  matcher-methods:"):
			result.WriteString(line + " # method names whose string arguments declare URL patterns\n")
		case strings.HasPrefix(line, "  terminator-methods:"):
			result.WriteString(line + " # method names that root an authorization chain\n")
		case strings.HasPrefix(line, "  fail-on-findings:"):
			result.WriteString(line + " # exit non-zero when shadowed patterns are found\n")
		case strings.HasPrefix(line, "  include:"):
			result.WriteString(line + " # only scan files matching these globs (empty = all .go files)\n")
		case strings.HasPrefix(line, "  exclude:"):
			result.WriteString(line + " # skip files matching these globs\n")
		default:
			result.WriteString(line + "\n")
		}
	}

	return result.String(), nil
}
