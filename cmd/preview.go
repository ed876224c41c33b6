package cmd

import (
	"net/http"

	"github.com/burrow-io/burrow-site/handlers"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the built site under its base path",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd, "preview")

		cfg, err := loadBuildConfiguration(cmd)
		if err != nil {
			return err
		}
		if !cfg.OutputMode().Prerenders() {
			logger.Warn().Str("output", cfg.OutputMode().String()).Msg("output mode renders per request; preview only serves pre-rendered files")
		}

		outDir, _ := cmd.Flags().GetString("out")
		router, err := handlers.NewPreviewRouter(cfg, outDir)
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetString("port")
		logger.Info().Str("port", port).Str("base", cfg.Base()).Msg("starting preview server")

		return http.ListenAndServe(":"+port, router)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	previewCmd.Flags().StringP("out", "o", "./public", "Build output directory")
}
