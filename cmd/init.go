package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exprkit/boolsimp"
	"github.com/exprkit/boolsimp/internal/lints"
	tt "github.com/exprkit/boolsimp/internal/types"
)

// initCmd: boolsimp init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = boolsimp.DefaultConfigPath
		}
		if err := writeStarterConfig(path); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created: %s\n", path)
	},
}

// writeStarterConfig spells out every rule at its default so the file is
// self-documenting.
func writeStarterConfig(path string) error {
	config := boolsimp.Config{
		Name: "boolsimp",
		Rules: map[string]tt.ConfigRule{
			"simplify-bool-expr":   {Severity: tt.SeverityWarning},
			"const-bool-condition": {Severity: tt.SeverityWarning},
			"complexity-hotspot":   {Severity: tt.SeverityInfo, Threshold: lints.DefaultComplexityThreshold},
		},
		MinConfidence: boolsimp.DefaultMinConfidence,
	}
	return config.Save(path)
}
