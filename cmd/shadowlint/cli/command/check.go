package command

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/shadowsec/shadowlint/cmd/shadowlint/cli/internal"
	"github.com/shadowsec/shadowlint/event"
	"github.com/shadowsec/shadowlint/internal/bus"
	"github.com/shadowsec/shadowlint/internal/input"
	"github.com/shadowsec/shadowlint/internal/log"
	"github.com/shadowsec/shadowlint/shadowlint/gosrc"
	"github.com/shadowsec/shadowlint/shadowlint/scan"
)

// Check creates the check command
func Check() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [TARGET...]",
		Short: "Analyze targets for shadowed URL patterns",
		Long: `Check analyzes Go source for rule-declaration chains in which a broader ant-style
URL pattern is declared before a narrower pattern it also covers, leaving the narrower
rule unreachable.

Targets can be:
- Directories: ./internal, .
- Go source files: server/routes.go
- Stdin: - (reads Go source from stdin)

Exit codes:
- 0: No shadowed patterns found
- 1: Shadowed patterns were found or an error occurred`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheck,
	}

	// Add command-specific flags
	cmd.Flags().StringSlice("include", nil, "only scan files matching these glob patterns")
	cmd.Flags().StringSlice("exclude", nil, "skip files matching these glob patterns")
	cmd.Flags().StringSlice("matcher-method", nil, "method names whose arguments declare URL patterns")
	cmd.Flags().StringSlice("terminator-method", nil, "method names that root an authorization chain")
	cmd.Flags().Bool("fail-on-findings", true, "exit non-zero when shadowed patterns are found")

	return cmd
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	targets := args
	if len(targets) == 0 {
		isStdin, _ := input.IsStdinPipeOrRedirect()
		if !isStdin {
			return fmt.Errorf("no targets provided; pass a path or pipe Go source to stdin")
		}
		targets = []string{"-"}
	}
	for _, target := range targets {
		if target == "-" && internal.IsStdinATerminal() {
			fmt.Fprintln(os.Stderr, "reading Go source from stdin, finish with ctrl-d")
			break
		}
	}

	fileConfig, err := LoadFileConfig(globalConfig.ConfigFile)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}
	applyFileConfig(cmd, globalConfig, fileConfig)

	scanConfig := resolveScanConfig(cmd, fileConfig)
	failOnFindings := resolveFailOnFindings(cmd, fileConfig)

	// wire the event bus so library progress, notifications, and the final
	// report reach the terminal
	eventBus := partybus.NewBus()
	bus.Set(eventBus)
	subscription := eventBus.Subscribe()
	done := make(chan struct{})
	go consumeEvents(subscription, globalConfig, done)

	orchestrator, err := scan.NewOrchestrator(scanConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	cmdProg := &event.ManualStagedProgress{
		Manual:      progress.NewManual(int64(len(targets))),
		AtomicStage: progress.NewAtomicStage(""),
	}
	bus.Publish(partybus.Event{
		Type:   event.CLICheckCmdStarted,
		Source: targets,
		Value:  progress.StagedProgressable(cmdProg),
	})

	argv := append([]string{"shadowlint", "check"}, targets...)
	result, err := orchestrator.Check(argv, targets...)
	cmdProg.SetCompleted()
	if err != nil {
		HandleError(fmt.Errorf("check failed: %w", err), globalConfig.Quiet)
		return err
	}
	result.Run.ReportID = internal.NewReportID()

	if globalConfig.NoOutput && globalConfig.OutputFile != "" {
		// file only, no terminal output
		if err := WriteJSONFile(result, globalConfig.OutputFile); err != nil {
			HandleError(fmt.Errorf("failed to output result: %w", err), globalConfig.Quiet)
			return err
		}
	} else {
		rendered, err := RenderResult(result, globalConfig.OutputFormat, globalConfig.OutputFile)
		if err != nil {
			HandleError(fmt.Errorf("failed to output result: %w", err), globalConfig.Quiet)
			return err
		}
		bus.Report(rendered)
	}

	// close the bus and wait for the consumer to drain so the report lands
	// before the process decides its exit code
	eventBus.Close()
	<-done

	if result.HasErrors() || (failOnFindings && result.HasFindings()) {
		os.Exit(1)
	}
	return nil
}

// resolveScanConfig layers command flags over the file configuration
func resolveScanConfig(cmd *cobra.Command, fileConfig FileConfig) gosrc.Config {
	cfg := gosrc.Config{
		MatcherMethods:    fileConfig.Rules.MatcherMethods,
		TerminatorMethods: fileConfig.Rules.TerminatorMethods,
		Include:           fileConfig.Check.Include,
		Exclude:           fileConfig.Check.Exclude,
	}

	if v, _ := cmd.Flags().GetStringSlice("matcher-method"); len(v) > 0 {
		cfg.MatcherMethods = v
	}
	if v, _ := cmd.Flags().GetStringSlice("terminator-method"); len(v) > 0 {
		cfg.TerminatorMethods = v
	}
	if v, _ := cmd.Flags().GetStringSlice("include"); len(v) > 0 {
		cfg.Include = v
	}
	if v, _ := cmd.Flags().GetStringSlice("exclude"); len(v) > 0 {
		cfg.Exclude = v
	}
	return cfg
}

func resolveFailOnFindings(cmd *cobra.Command, fileConfig FileConfig) bool {
	if cmd.Flags().Changed("fail-on-findings") {
		v, _ := cmd.Flags().GetBool("fail-on-findings")
		return v
	}
	return fileConfig.Check.FailOnFindings
}

// consumeEvents drains the bus for the lifetime of the command: the final
// report goes to stdout, notifications to stderr, progress to trace logging.
func consumeEvents(subscription *partybus.Subscription, globalConfig *GlobalConfig, done chan<- struct{}) {
	defer close(done)
	for e := range subscription.Events() {
		switch e.Type {
		case event.CLIReport:
			_, report, err := event.ParseCLIReport(e)
			if err != nil {
				log.WithFields("error", err).Warn("unable to parse event")
				continue
			}
			fmt.Print(report)
		case event.CLINotification:
			_, message, err := event.ParseCLINotification(e)
			if err != nil {
				log.WithFields("error", err).Warn("unable to parse event")
				continue
			}
			if !globalConfig.Quiet {
				if internal.IsStderrATerminal() {
					message = color.Gray.Sprint(message)
				}
				fmt.Fprintln(os.Stderr, message)
			}
		case event.TaskStartedEvent:
			task, _, err := event.ParseTaskStarted(e)
			if err != nil {
				log.WithFields("error", err).Warn("unable to parse event")
				continue
			}
			log.WithFields("task", task.Title.WhileRunning, "context", task.Context).Trace("task started")
		case event.CLICheckCmdStarted:
			sources, _, err := event.ParseCheckCommandStarted(e)
			if err != nil {
				log.WithFields("error", err).Warn("unable to parse event")
				continue
			}
			log.WithFields("targets", sources).Trace("check started")
		}
	}
}
