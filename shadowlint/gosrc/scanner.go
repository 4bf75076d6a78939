package gosrc

import (
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/shadowsec/shadowlint/internal/log"
	"github.com/shadowsec/shadowlint/shadowlint"
)

// Scanner finds rule-declaration chains in Go source files and runs the order
// analyzer over them. A scanner is single-use per analysis pass, matching the
// analyzer's per-pass pattern cache.
type Scanner struct {
	cfg      Config
	include  []glob.Glob
	exclude  []glob.Glob
	analyzer *shadowlint.Analyzer
}

// FileResult is the outcome of analyzing one source file.
type FileResult struct {
	Path     string
	Chains   int
	Patterns int
	Findings []shadowlint.Finding
}

// NewScanner builds a scanner for the given configuration. Invalid
// include/exclude globs are reported as errors up front rather than silently
// matching nothing.
func NewScanner(cfg Config) (*Scanner, error) {
	cfg = cfg.withDefaults()

	include, err := compileGlobs(cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern: %w", err)
	}
	exclude, err := compileGlobs(cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern: %w", err)
	}

	return &Scanner{
		cfg:      cfg,
		include:  include,
		exclude:  exclude,
		analyzer: shadowlint.NewAnalyzer(),
	}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// SelectFiles returns the Go files under root (a file or directory) that pass
// the include/exclude filters, in walk order.
func (s *Scanner) SelectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !strings.HasSuffix(root, ".go") {
			return nil, fmt.Errorf("not a Go source file: %s", root)
		}
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if s.selected(filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields("root", root, "files", len(files)).Debug("selected files for scan")
	return files, nil
}

func (s *Scanner) selected(rel string) bool {
	if len(s.include) > 0 {
		found := false
		for _, g := range s.include {
			if g.Match(rel) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, g := range s.exclude {
		if g.Match(rel) {
			return false
		}
	}
	return true
}

// ScanFile parses one file from disk and analyzes its chains.
func (s *Scanner) ScanFile(path string) (FileResult, error) {
	return s.scan(path, nil)
}

// ScanSource analyzes Go source provided by a reader, attributing findings to
// filename. Used for stdin input and tests.
func (s *Scanner) ScanSource(filename string, src io.Reader) (FileResult, error) {
	return s.scan(filename, src)
}

func (s *Scanner) scan(filename string, src io.Reader) (FileResult, error) {
	result := FileResult{Path: filename}

	fset := token.NewFileSet()
	var source any
	if src != nil {
		source = src
	}
	f, err := parser.ParseFile(fset, filename, source, parser.SkipObjectResolution)
	if err != nil {
		return result, fmt.Errorf("unable to parse %s: %w", filename, err)
	}

	for _, node := range chainNodes(fset, f, s.cfg) {
		result.Chains++
		if patterns, ok := node.Patterns(); ok {
			result.Patterns += len(patterns)
		}
		result.Findings = append(result.Findings, s.analyzer.CheckNode(node)...)
	}

	if len(result.Findings) > 0 {
		log.WithFields("file", filename, "findings", len(result.Findings)).Debug("shadowed patterns found")
	}
	return result, nil
}
