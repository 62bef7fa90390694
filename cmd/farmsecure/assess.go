package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/farmsecure/farmsecure/pkg/profile"
	"github.com/farmsecure/farmsecure/pkg/scoring"
	"github.com/farmsecure/farmsecure/pkg/surface"
)

// factorFlags maps each ordinal factor to its command-line flag.
var factorFlags = map[scoring.FactorKey]string{
	scoring.FactorVisitorControl:  "visitor-control",
	scoring.FactorAnimalMovement:  "animal-movement",
	scoring.FactorFeedSecurity:    "feed-security",
	scoring.FactorWasteManagement: "waste-management",
	scoring.FactorStaffTraining:   "staff-training",
}

func newAssessCmd(a *app) *cobra.Command {
	var (
		profilePath string
		farm        string
		outbreaks   bool
		ratings     = make(map[scoring.FactorKey]*int, len(factorFlags))
		outputFmt   string
		lang        string
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score one farm's biosecurity risk",
		Long: `Scores a farm from a profile file, individual factor flags, or both. Flags
override the values read from --profile. Ratings run from 1 (poor) to 5 (best practice).
Without --profile all five rating flags are required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := scoring.Profile{Name: farm}
			if profilePath != "" {
				loaded, err := profile.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				p.Factors = loaded.Factors
				p.Name = firstNonEmpty(farm, loaded.Name)
			}

			if cmd.Flags().Changed("nearby-outbreaks") {
				p.Factors.NearbyOutbreaks = outbreaks
			}
			for _, k := range scoring.OrdinalFactors {
				if cmd.Flags().Changed(factorFlags[k]) {
					p.Factors = p.Factors.WithRating(k, *ratings[k])
				}
			}

			e, err := a.engine()
			if err != nil {
				return err
			}
			result, err := a.assess(e, p)
			if err != nil {
				return err
			}
			a.logger.Info("assessed farm",
				zap.String("farm", result.Farm),
				zap.Int("score", result.Score),
				zap.String("level", string(result.Level)))

			l, err := a.language(lang)
			if err != nil {
				return err
			}
			r, err := surface.ForFormat(a.outputFormat(outputFmt), l, noColor)
			if err != nil {
				return err
			}
			return r.Render(cmd.OutOrStdout(), result)
		},
	}

	f := cmd.Flags()
	f.StringVar(&profilePath, "profile", "", "Farm profile file (.yaml, .json or .toml)")
	f.StringVar(&farm, "farm", "", "Farm name shown in the report")
	f.BoolVar(&outbreaks, "nearby-outbreaks", false, "Disease outbreaks reported nearby")
	for _, k := range scoring.OrdinalFactors {
		v := new(int)
		ratings[k] = v
		f.IntVar(v, factorFlags[k], 0, k.Label()+" rating (1-5)")
	}
	f.StringVar(&outputFmt, "output", "", "Output format: text, json or markdown (default from config)")
	f.StringVar(&lang, "lang", "", "Display language: en, hi or te (default from config)")
	f.BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
