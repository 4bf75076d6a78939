package cli

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const (
	shadowlintTmpPath = "../../.tmp/shadowlint"
	emptyConfigPath   = "../../.tmp/shadowlint_empty.yaml"
	jsonConfigPath    = "../../.tmp/shadowlint_json.yaml"
)

func buildBinary() (string, error) {
	if err := os.MkdirAll(filepath.Dir(shadowlintTmpPath), 0o755); err != nil {
		return "", err
	}
	buildCmd := exec.Command("go", "build", "-o", shadowlintTmpPath, "../../cmd/shadowlint/main.go")
	err := buildCmd.Run()
	return shadowlintTmpPath, err
}

func generateEmptyConfig() (string, error) {
	err := os.WriteFile(emptyConfigPath, nil, 0o644)
	return emptyConfigPath, err
}

func generateJSONConfig() (string, error) {
	err := os.WriteFile(jsonConfigPath, []byte("format: json\n"), 0o644)
	return jsonConfigPath, err
}

// setup function that you want to run before any tests
func setup(m *testing.M) {
	_, err := buildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}
	_, err = generateEmptyConfig()
	if err != nil {
		log.Fatalf("Failed to generate empty config: %v", err)
	}
	_, err = generateJSONConfig()
	if err != nil {
		log.Fatalf("Failed to generate json config: %v", err)
	}
}

// TestMain is the entry point for testing
func TestMain(m *testing.M) {
	setup(m)
	os.Exit(m.Run())
}
