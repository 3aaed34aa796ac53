package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitewright",
		Short: "One-page marketing site generator for local service businesses",
		Long: `Sitewright generates a one-page marketing site for a local service
business: AI-generated text content plus photography resolved from
generative and stock image providers, assembled into an editable preview
and deployable as a static page.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}
