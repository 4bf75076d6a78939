package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowsec/shadowlint/shadowlint"
)

func Test_DefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig()

	assert.Equal(t, formatTable, cfg.Format)
	assert.True(t, cfg.Check.FailOnFindings)
	assert.Contains(t, cfg.Rules.MatcherMethods, "AntMatchers")
	assert.Contains(t, cfg.Rules.TerminatorMethods, "AuthorizeRequests")
}

func Test_LoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".shadowlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`format: json
rules:
  matcher-methods:
    - Route
check:
  fail-on-findings: false
  exclude:
    - "vendor/**"
`), 0o644))

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)

	assert.Equal(t, formatJSON, cfg.Format)
	assert.Equal(t, []string{"Route"}, cfg.Rules.MatcherMethods)
	assert.False(t, cfg.Check.FailOnFindings)
	assert.Equal(t, []string{"vendor/**"}, cfg.Check.Exclude)
}

func Test_LoadFileConfig_missingExplicitPath(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read config file")
}

func Test_LoadFileConfig_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".shadowlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0o644))

	_, err := LoadFileConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse config file")
}

func Test_RenderResult(t *testing.T) {
	result := shadowlint.NewRunResponse("shadowlint", "0.0.0", nil, shadowlint.RunConfig{})
	result.AddTarget(shadowlint.TargetResult{
		Source: shadowlint.SourceInfo{Type: "dir", Ref: "."},
		Status: shadowlint.StatusClean,
	})

	rendered, err := RenderResult(result, formatJSON, "")
	require.NoError(t, err)
	var decoded shadowlint.RunResponse
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	assert.Equal(t, "shadowlint", decoded.Tool)

	rendered, err = RenderResult(result, formatTable, "")
	require.NoError(t, err)
	assert.Contains(t, rendered, "Target: . (dir)")

	_, err = RenderResult(result, "xml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func Test_RenderResult_writesOutputFile(t *testing.T) {
	result := shadowlint.NewRunResponse("shadowlint", "0.0.0", nil, shadowlint.RunConfig{})
	outputFile := filepath.Join(t.TempDir(), "report.json")

	_, err := RenderResult(result, formatTable, outputFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var decoded shadowlint.RunResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "shadowlint", decoded.Tool)
}

func Test_applyFileConfig(t *testing.T) {
	fileConfig := DefaultFileConfig()
	fileConfig.Format = formatJSON
	fileConfig.Quiet = true

	cmd := Check()
	globalConfig := &GlobalConfig{OutputFormat: formatTable}
	applyFileConfig(cmd, globalConfig, fileConfig)
	assert.Equal(t, formatJSON, globalConfig.OutputFormat)
	assert.True(t, globalConfig.Quiet)
	assert.False(t, globalConfig.Verbose)
}

func Test_applyFileConfig_flagsWin(t *testing.T) {
	fileConfig := DefaultFileConfig()
	fileConfig.Format = formatJSON
	fileConfig.Quiet = true

	// check inherits these persistent flags from the root command at runtime
	cmd := Check()
	cmd.Flags().StringP("output", "o", formatTable, "")
	cmd.Flags().BoolP("quiet", "q", false, "")
	require.NoError(t, cmd.Flags().Set("output", formatTable))
	require.NoError(t, cmd.Flags().Set("quiet", "false"))

	globalConfig := &GlobalConfig{OutputFormat: formatTable}
	applyFileConfig(cmd, globalConfig, fileConfig)
	assert.Equal(t, formatTable, globalConfig.OutputFormat)
	assert.False(t, globalConfig.Quiet)
}

func Test_applyFileConfig_normalizesFormat(t *testing.T) {
	fileConfig := DefaultFileConfig()
	fileConfig.Format = ""

	cmd := Check()
	globalConfig := &GlobalConfig{OutputFormat: "xml"}
	applyFileConfig(cmd, globalConfig, fileConfig)
	assert.Equal(t, formatTable, globalConfig.OutputFormat)
}

func Test_resolveScanConfig(t *testing.T) {
	fileConfig := DefaultFileConfig()
	fileConfig.Rules.MatcherMethods = []string{"Route"}
	fileConfig.Check.Exclude = []string{"vendor/**"}

	cmd := Check()
	cfg := resolveScanConfig(cmd, fileConfig)
	assert.Equal(t, []string{"Route"}, cfg.MatcherMethods)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)

	require.NoError(t, cmd.Flags().Set("matcher-method", "PathMatchers"))
	require.NoError(t, cmd.Flags().Set("include", "internal/**"))
	cfg = resolveScanConfig(cmd, fileConfig)
	assert.Equal(t, []string{"PathMatchers"}, cfg.MatcherMethods)
	assert.Equal(t, []string{"internal/**"}, cfg.Include)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
}

func Test_resolveFailOnFindings(t *testing.T) {
	fileConfig := DefaultFileConfig()
	fileConfig.Check.FailOnFindings = false

	cmd := Check()
	assert.False(t, resolveFailOnFindings(cmd, fileConfig))

	require.NoError(t, cmd.Flags().Set("fail-on-findings", "true"))
	assert.True(t, resolveFailOnFindings(cmd, fileConfig))
}
