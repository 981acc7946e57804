package cli

import (
	"slices"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(targetsCmd)
}

// TargetInfo describes a registered target.
type TargetInfo struct {
	Name        string `json:"name" yaml:"name"`
	File        string `json:"file" yaml:"file"`
	Description string `json:"description" yaml:"description"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List output targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()

		var infos []TargetInfo
		for _, target := range registryFor(cfg).List() {
			infos = append(infos, TargetInfo{
				Name:        target.Name(),
				File:        target.FileName(),
				Description: target.Description(),
				Enabled:     slices.Contains(cfg.Targets, target.Name()),
			})
		}

		if IsStructuredOutput() {
			return WriteOutput(cmd.OutOrStdout(), infos)
		}

		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{info.Name, info.File, formatYesNo(info.Enabled), info.Description})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "FILE", "ENABLED", "DESCRIPTION"}, rows)
	},
}
