package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exprkit/boolsimp"
	"github.com/exprkit/boolsimp/internal/lints"
)

// complexity command flags
var (
	complexityThreshold int
	complexityJson      bool
	complexityOutPath   string
)

var complexityCmd = &cobra.Command{
	Use:   "complexity [paths...]",
	Short: "Run cyclomatic complexity analysis",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := boolsimp.NewComplexityEngine(complexityThreshold)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		issues, err := boolsimp.ProcessFiles(ctx, logger, engine, args, boolsimp.ProcessFile)
		if err != nil {
			logger.Error("Error processing files for cyclomatic complexity", zap.Error(err))
			os.Exit(1)
		}

		printIssues(logger, issues, complexityJson, complexityOutPath)

		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	complexityCmd.Flags().IntVar(&complexityThreshold, "threshold", lints.DefaultComplexityThreshold, "Cyclomatic complexity threshold")
	complexityCmd.Flags().BoolVar(&complexityJson, "json", false, "Output issues in JSON format")
	complexityCmd.Flags().StringVarP(&complexityOutPath, "output", "o", "", "Output path (when using JSON)")
}
