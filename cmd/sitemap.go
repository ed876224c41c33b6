package cmd

import (
	"time"

	"github.com/burrow-io/burrow-site/utils"
	"github.com/spf13/cobra"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml for a built site",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd, "sitemap")

		cfg, err := loadBuildConfiguration(cmd)
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		routes, err := utils.DiscoverRoutes(cfg, outDir)
		if err != nil {
			return err
		}
		logger.Debug().Strs("routes", routes).Msg("discovered routes")

		err = utils.GenerateSitemaps(cfg, outDir, routes, time.Now())
		if err != nil {
			return err
		}

		logger.Info().
			Int("urls", len(routes)).
			Str("site", cfg.CanonicalURL("/")).
			Str("out", outDir).
			Msg("sitemap generated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
	sitemapCmd.Flags().StringP("out", "o", "./public", "Build output directory")
}
