// Package scan coordinates shadowlint analysis across one or more targets,
// publishing progress over the event bus and aggregating results into a run
// response.
package scan

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/shadowsec/shadowlint/event"
	"github.com/shadowsec/shadowlint/internal"
	"github.com/shadowsec/shadowlint/internal/bus"
	"github.com/shadowsec/shadowlint/internal/input"
	"github.com/shadowsec/shadowlint/internal/log"
	"github.com/shadowsec/shadowlint/shadowlint"
	"github.com/shadowsec/shadowlint/shadowlint/gosrc"
)

// Orchestrator runs the analyzer over multiple targets with one shared
// configuration and pattern cache.
type Orchestrator struct {
	Config  gosrc.Config
	scanner *gosrc.Scanner
}

// NewOrchestrator creates an orchestrator for the given configuration.
func NewOrchestrator(cfg gosrc.Config) (*Orchestrator, error) {
	scanner, err := gosrc.NewScanner(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create scanner: %w", err)
	}
	return &Orchestrator{
		Config:  cfg,
		scanner: scanner,
	}, nil
}

// Check analyzes each target and returns the aggregated run response.
// Per-target failures (unreadable paths, unparsable files) are recorded on the
// target result and never abort the run.
func (o *Orchestrator) Check(argv []string, targets ...string) (*shadowlint.RunResponse, error) {
	response := shadowlint.NewRunResponse(
		internal.ApplicationName,
		internal.ApplicationVersion,
		argv,
		shadowlint.RunConfig{
			MatcherMethods:    o.Config.MatcherMethods,
			TerminatorMethods: o.Config.TerminatorMethods,
			Include:           o.Config.Include,
			Exclude:           o.Config.Exclude,
		},
	)

	for _, target := range targets {
		response.AddTarget(o.checkTarget(target))
	}
	return response, nil
}

func (o *Orchestrator) checkTarget(target string) shadowlint.TargetResult {
	if target == "-" {
		return o.checkStdin()
	}

	path, err := homedir.Expand(target)
	if err != nil {
		path = target
	}

	source := shadowlint.SourceInfo{Type: sourceType(path), Ref: target}

	files, err := o.scanner.SelectFiles(path)
	if err != nil {
		log.WithFields("target", target, "error", err).Warn("unable to select files")
		return errorResult(source, err)
	}

	prog := bus.PublishTask(
		event.Title{
			Default:      "Scan for shadowed URL patterns",
			WhileRunning: "Scanning for shadowed URL patterns",
			OnSuccess:    "Scanned for shadowed URL patterns",
		},
		target,
		len(files),
	)
	defer prog.SetCompleted()

	result := shadowlint.TargetResult{
		Source:   source,
		Findings: []shadowlint.FindingResult{},
	}
	for _, file := range files {
		prog.AtomicStage.Set(file)
		fileResult, err := o.scanner.ScanFile(file)
		prog.Increment()
		if err != nil {
			// graceful degradation: an unparsable file yields no findings
			log.WithFields("file", file, "error", err).Warn("skipping file")
			bus.Notify(fmt.Sprintf("skipping %s: %v", file, err))
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		accumulate(&result, fileResult)
	}
	prog.AtomicStage.Set("")

	result.Status = status(result)
	return result
}

func (o *Orchestrator) checkStdin() shadowlint.TargetResult {
	source := shadowlint.SourceInfo{Type: "stdin", Ref: "-"}

	reader, err := input.GetReader("-")
	if err != nil {
		return errorResult(source, err)
	}

	fileResult, err := o.scanner.ScanSource("<stdin>", reader)
	if err != nil {
		return errorResult(source, err)
	}

	result := shadowlint.TargetResult{
		Source:   source,
		Findings: []shadowlint.FindingResult{},
	}
	accumulate(&result, fileResult)
	result.Status = status(result)
	return result
}

func accumulate(result *shadowlint.TargetResult, fileResult gosrc.FileResult) {
	result.Summary.Files++
	result.Summary.Chains += fileResult.Chains
	result.Summary.Patterns += fileResult.Patterns
	result.Summary.Findings += len(fileResult.Findings)
	for _, f := range fileResult.Findings {
		result.Findings = append(result.Findings, shadowlint.NewFindingResult(f))
	}
}

func status(result shadowlint.TargetResult) string {
	switch {
	case result.Summary.Findings > 0:
		return shadowlint.StatusShadowed
	case len(result.Errors) > 0 && result.Summary.Files == 0:
		return shadowlint.StatusError
	default:
		return shadowlint.StatusClean
	}
}

func errorResult(source shadowlint.SourceInfo, err error) shadowlint.TargetResult {
	return shadowlint.TargetResult{
		Source:   source,
		Status:   shadowlint.StatusError,
		Findings: []shadowlint.FindingResult{},
		Errors:   []string{err.Error()},
	}
}

func sourceType(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return "dir"
	}
	return "file"
}
