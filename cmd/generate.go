package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wrightlabs/sitewright/internal/config"
	"github.com/wrightlabs/sitewright/internal/generation"
	"github.com/wrightlabs/sitewright/internal/models"
	"github.com/wrightlabs/sitewright/internal/progress"
	"github.com/wrightlabs/sitewright/internal/render"
)

func newGenerateCmd() *cobra.Command {
	var req models.SiteRequest
	var configPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run one site generation from the command line",
		Example: `  sitewright generate --industry plumbing --company "Smith Plumbing" \
    --location "Dallas, TX" --phone "(555) 010-2030" --out site.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			generator, err := generation.FromConfig(cfg)
			if err != nil {
				return err
			}

			tracker := progress.NewTracker()
			result, err := generator.Run(cmd.Context(), req, tracker)
			if err != nil {
				return err
			}

			slots := make([]string, 0, len(result.Images))
			for slot := range result.Images {
				slots = append(slots, slot)
			}
			sort.Strings(slots)
			for _, slot := range slots {
				url := result.Images[slot]
				if len(url) > 96 {
					url = url[:96] + "..."
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", slot, url)
			}

			if outPath != "" {
				html, err := render.Site(result.Content, result.Images)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Industry, "industry", "", "Business industry (e.g. plumbing)")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&req.Location, "location", "", "Service area")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&req.BrandColor, "color", "#2563eb", "Brand color")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write rendered HTML to this file")

	_ = cmd.MarkFlagRequired("industry")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}
