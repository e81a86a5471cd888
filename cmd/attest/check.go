package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"attest/internal/batch"
	"attest/internal/conf"
	"attest/internal/observ"
	"attest/internal/render"
	"attest/internal/specfile"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <spec.toml> <file.json|directory>",
	Short: "Check JSON documents against a specification document",
	Long:  `Check one JSON file or every *.json file within a directory against the specification described by a TOML spec document`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("mode", "", "check mode (exhaustive|sampled); overrides attest.toml")
	checkCmd.Flags().Int("sample-size", 0, "elements visited per container in sampled mode")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Int("width", 0, "truncate output lines to this display width (0=off)")
	checkCmd.Flags().Bool("timings", false, "show timing information")
	checkCmd.Flags().Bool("ui", false, "show interactive progress while checking a directory")
	checkCmd.Flags().Bool("cache", false, "enable the persistent result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	specPath, target := args[0], args[1]

	colorMode, _ := cmd.Flags().GetString("color")
	quiet, _ := cmd.Flags().GetBool("quiet")
	modeFlag, _ := cmd.Flags().GetString("mode")
	sampleSize, _ := cmd.Flags().GetInt("sample-size")
	jobs, _ := cmd.Flags().GetInt("jobs")
	width, _ := cmd.Flags().GetInt("width")
	timings, _ := cmd.Flags().GetBool("timings")
	withUI, _ := cmd.Flags().GetBool("ui")
	withCache, _ := cmd.Flags().GetBool("cache")

	cfg, err := conf.LoadNearest(".")
	if err != nil {
		return err
	}
	if modeFlag != "" {
		mode, err := conf.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if sampleSize > 0 {
		cfg.SampleSize = sampleSize
	}

	opts := render.Options{Color: useColor(colorMode, os.Stdout), Width: width}
	timer := observ.NewTimer()

	phase := timer.Start("load-spec")
	doc, err := specfile.Load(specPath)
	if err != nil {
		return err
	}
	timer.Stop(phase, 0)

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var cache *batch.ResultCache
	if withCache {
		cache, err = batch.OpenResultCache("attest")
		if err != nil {
			return err
		}
	}

	var results []batch.Result
	phase = timer.Start("check")
	if info.IsDir() {
		results, err = runDirCheck(cmd.Context(), doc, target, cfg, batch.Options{
			Jobs:  jobs,
			Cache: cache,
		}, withUI)
	} else {
		results, err = batch.CheckFiles(cmd.Context(), doc, []string{target}, cfg, batch.Options{Cache: cache})
	}
	if err != nil {
		return err
	}
	timer.Stop(phase, len(results))

	phase = timer.Start("render")
	render.Report(os.Stdout, results, opts)
	if !quiet {
		render.Summary(os.Stdout, results, opts)
	}
	timer.Stop(phase, 0)

	if timings {
		timer.WriteSummary(os.Stderr)
	}

	for _, r := range results {
		if r.Err != nil || !r.OK {
			// Suppress cobra's error echo and usage text: the report
			// already said everything.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return failedCheckError{}
		}
	}
	return nil
}

func runDirCheck(ctx context.Context, doc *specfile.Document, dir string, cfg *conf.Config, opts batch.Options, withUI bool) ([]batch.Result, error) {
	if !withUI || !isTerminal(os.Stdout) {
		return batch.CheckDir(ctx, doc, dir, cfg, opts)
	}
	return runCheckWithUI(ctx, doc, dir, cfg, opts)
}

// failedCheckError makes the process exit non-zero; the caller
// silences cobra before returning it so nothing prints twice.
type failedCheckError struct{}

func (failedCheckError) Error() string { return "check failed" }
