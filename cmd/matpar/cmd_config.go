// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/matpar/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective sweep configuration as YAML",
		Long: `Print the defaults (or the validated contents of --config) as YAML.
Redirect the output to a file to start a new configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "YAML sweep configuration to validate")

	return cmd
}
