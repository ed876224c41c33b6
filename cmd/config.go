package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and print the build configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfiguration(cmd)
		if err != nil {
			return err
		}

		check, _ := cmd.Flags().GetBool("check")
		if check {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "encoding config")
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("check", false, "Only validate, print ok on success")
}
