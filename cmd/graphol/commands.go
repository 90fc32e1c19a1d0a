package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ontoworks/graphol/checker"
	"github.com/ontoworks/graphol/config"
	"github.com/ontoworks/graphol/vocabulary/owl"
)

func checkCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Validate every edge of the matched projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = cfg.Project.Paths
			}
			files, err := checker.ResolvePaths(patterns)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no project files matched %v", patterns)
			}

			chk, err := newChecker(cfg, logger)
			if err != nil {
				return err
			}
			illegal := 0
			for _, file := range files {
				report, err := chk.CheckFile(file)
				if err != nil {
					return err
				}
				printReport(report)
				illegal += len(report.Diagnostics)
				if illegal > 0 && cfg.Check.FailFast {
					break
				}
			}

			if illegal > 0 {
				return fmt.Errorf("%d illegal edge(s)", illegal)
			}
			return nil
		},
	}
}

func watchCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [patterns...]",
		Short: "Re-check projects whenever they change on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = cfg.Project.Paths
			}
			files, err := checker.ResolvePaths(patterns)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no project files matched %v", patterns)
			}

			chk, err := newChecker(cfg, logger)
			if err != nil {
				return err
			}
			for _, file := range files {
				report, err := chk.CheckFile(file)
				if err != nil {
					logger.Error("initial check failed", "path", file, "error", err)
					continue
				}
				printReport(report)
			}

			w, err := checker.NewWatcher(checker.WatcherConfig{
				Paths:    files,
				Debounce: cfg.Watch.GetDebounce(),
				Checker:  chk,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-w.Events():
					if !ok {
						return nil
					}
					switch {
					case event.Err != nil:
						logger.Error("re-check failed", "path", event.Path, "error", event.Err)
					case event.Op == checker.OpDelete:
						logger.Info("project removed", "path", event.Path)
					default:
						printReport(event.Report)
					}
				}
			}
		},
	}
}

func facetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facets <datatype>",
		Short: "Print the facets admissible for a datatype",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, ok := owl.DatatypeForIRI(args[0])
			if !ok {
				return fmt.Errorf("unknown datatype %q", args[0])
			}
			facets, _ := owl.FacetsForDatatype(dt)
			if len(facets) == 0 {
				fmt.Printf("%s admits no facets\n", dt)
				return nil
			}
			for _, f := range facets {
				name, _ := owl.OWLAPIFacet(f)
				fmt.Printf("%-20s %s\n", f, name)
			}
			return nil
		},
	}
}

func newChecker(cfg *config.Config, logger *slog.Logger) (*checker.Checker, error) {
	profile, ok := owl.ProfileForName(cfg.Check.Profile)
	if !ok {
		return nil, fmt.Errorf("unknown OWL 2 profile %q", cfg.Check.Profile)
	}
	chk := checker.New(logger)
	chk.SetProfile(profile)
	return chk, nil
}

func printReport(r *checker.Report) {
	if r.Clean() {
		fmt.Printf("%s: ok (%d edges)\n", r.Path, r.Edges)
		return
	}
	fmt.Printf("%s: %d illegal edge(s) of %d\n", r.Path, len(r.Diagnostics), r.Edges)
	for _, d := range r.Diagnostics {
		fmt.Printf("  %s\n", d)
	}
}
