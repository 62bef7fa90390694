package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/farmsecure/farmsecure/pkg/profile"
	"github.com/farmsecure/farmsecure/pkg/scoring"
	"github.com/farmsecure/farmsecure/pkg/surface"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers   int
		outputFmt string
		lang      string
	)

	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Score many farm profiles in parallel",
		Long:  `Scores every profile file and prints one row per farm, in argument order.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := profile.LoadProfiles(args)
			if err != nil {
				return err
			}

			e, err := a.engine()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			results, err := e.AssessAll(cmd.Context(), profiles, workers)
			if err != nil {
				if errors.Is(err, scoring.ErrInvalidFactors) {
					a.metrics.ObserveRejected()
				}
				return err
			}
			for _, r := range results {
				a.metrics.ObserveAssessment(r)
			}
			a.logger.Info("assessed batch", zap.Int("profiles", len(results)), zap.Int("workers", workers))

			l, err := a.language(lang)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch a.outputFormat(outputFmt) {
			case surface.FormatJSON:
				return surface.WriteJSON(w, results)
			case surface.FormatMarkdown:
				r := &surface.ReportRenderer{Lang: l}
				for _, result := range results {
					if err := r.Render(w, result); err != nil {
						return err
					}
				}
				return nil
			default:
				return (&surface.TerminalRenderer{Lang: l}).RenderBatch(w, results)
			}
		},
	}

	f := cmd.Flags()
	f.IntVar(&workers, "workers", 0, "Parallel workers (default from config, 0 = GOMAXPROCS)")
	f.StringVar(&outputFmt, "output", "", "Output format: text, json or markdown (default from config)")
	f.StringVar(&lang, "lang", "", "Display language: en, hi or te (default from config)")

	return cmd
}
