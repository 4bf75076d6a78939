package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/logrus"
	"github.com/shadowsec/shadowlint/cmd/shadowlint/cli/internal"
	"github.com/shadowsec/shadowlint/cmd/shadowlint/cli/option"
	"github.com/shadowsec/shadowlint/internal/log"
	"github.com/shadowsec/shadowlint/shadowlint"
)

const (
	formatJSON  = "json"
	formatTable = "table"

	configFileName = ".shadowlint.yaml"
)

// GlobalConfig holds configuration that applies to all commands
type GlobalConfig struct {
	ConfigFile   string
	OutputFormat string
	OutputFile   string
	Quiet        bool
	Verbose      bool
	NoOutput     bool
}

// GetGlobalConfig extracts global configuration from cobra command
func GetGlobalConfig(cmd *cobra.Command) *GlobalConfig {
	configFile, _ := cmd.Flags().GetString("config")
	outputFormat, _ := cmd.Flags().GetString("output")
	outputFile, _ := cmd.Flags().GetString("output-file")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noOutput, _ := cmd.Flags().GetBool("no-output")

	return &GlobalConfig{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		OutputFile:   outputFile,
		Quiet:        quiet,
		Verbose:      verbose,
		NoOutput:     noOutput,
	}
}

// SetupLogging configures logging based on verbose flag
func SetupLogging(verbose bool) {
	var logLevel logger.Level
	if verbose {
		logLevel = logger.DebugLevel
	} else {
		logLevel = logger.WarnLevel
	}

	cfg := logrus.Config{
		EnableConsole: true,
		Level:         logLevel,
	}

	l, _ := logrus.New(cfg)
	log.Set(l)
}

// FileConfig is the on-disk configuration (.shadowlint.yaml)
type FileConfig struct {
	Format  string       `yaml:"format,omitempty"`
	Quiet   bool         `yaml:"quiet,omitempty"`
	Verbose bool         `yaml:"verbose,omitempty"`
	Rules   option.Rules `yaml:"rules"`
	Check   option.Check `yaml:"check"`
}

// DefaultFileConfig returns the configuration used when no file is present.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Format: formatTable,
		Rules:  option.DefaultRules(),
		Check:  option.DefaultCheck(),
	}
}

// LoadFileConfig reads configuration from the given path, or discovers
// .shadowlint.yaml in the working directory and then the home directory when
// the path is empty. A missing file is not an error.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	if path == "" {
		path = discoverConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}

	log.Debugf("config file: %s", path)
	return cfg, nil
}

// applyFileConfig layers file-backed settings under their flags: a flag set on
// the command line wins, otherwise the config file value applies. The output
// format is normalized either way.
func applyFileConfig(cmd *cobra.Command, c *GlobalConfig, fileConfig FileConfig) {
	if !cmd.Flags().Changed("output") && fileConfig.Format != "" {
		c.OutputFormat = fileConfig.Format
	}
	c.OutputFormat = string(internal.ValidateFormat(internal.Format(c.OutputFormat)))

	if !cmd.Flags().Changed("quiet") && fileConfig.Quiet {
		c.Quiet = true
	}
	if !cmd.Flags().Changed("verbose") && fileConfig.Verbose {
		c.Verbose = true
		SetupLogging(true)
	}
}

func discoverConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if home, err := homedir.Dir(); err == nil {
		candidate := filepath.Join(home, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// HandleError handles command errors consistently
func HandleError(err error, quiet bool) {
	if err != nil && !quiet {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// WriteJSONFile writes the JSON result to a file without any terminal output
func WriteJSONFile(result *shadowlint.RunResponse, outputFile string) error {
	return internal.NewOutput().WriteJSONFile(result, outputFile)
}

// RenderResult renders the result in the specified format; if an output file
// is given the JSON form is additionally written there
func RenderResult(result *shadowlint.RunResponse, format string, outputFile string) (string, error) {
	output := internal.NewOutput()

	// If output file is specified, always write JSON to file
	if outputFile != "" {
		if err := output.WriteJSONFile(result, outputFile); err != nil {
			return "", err
		}
	}

	switch format {
	case formatJSON:
		return output.RenderJSON(result)
	case formatTable:
		return output.RenderTable(result)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
