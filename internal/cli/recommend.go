package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"investwise-api/internal/advisor"
	"investwise-api/internal/models"
	"investwise-api/internal/report"
)

func newRecommendCmd() *cobra.Command {
	var (
		profilePath string
		asJSON      bool
		raw         bool
		style       string
		width       int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Assess a profile file and print a recommendation report",
		Example: `  investwise recommend --profile profile.json
  cat profile.json | investwise recommend --profile - --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readProfile(cmd.InOrStdin(), profilePath)
			if err != nil {
				return err
			}
			if err := profile.Validate(); err != nil {
				return err
			}
			if profile.UserID == "" {
				profile.UserID = "local"
			}

			engine := advisor.NewEngine(advisor.DefaultCatalog())
			assessment := engine.Assess(profile)
			rec := engine.Recommend(profile, assessment)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(models.Dashboard{
					UserProfile:     &profile,
					RiskAssessment:  &assessment,
					Recommendations: &rec,
				})
			}

			md, err := report.Markdown(report.Report{Profile: profile, Assessment: assessment, Recommendation: rec})
			if err != nil {
				return err
			}
			if raw {
				_, err = io.WriteString(out, md)
				return err
			}

			styleOpt := glamour.WithAutoStyle()
			if style != "auto" {
				styleOpt = glamour.WithStandardStyle(style)
			}
			renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}
			rendered, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("rendering report: %w", err)
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "profile JSON file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print assessment and recommendation as JSON")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty")
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func readProfile(stdin io.Reader, path string) (models.UserProfile, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return models.UserProfile{}, fmt.Errorf("opening profile: %w", err)
		}
		defer f.Close()
		r = f
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r).Decode(&profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return profile, nil
}
