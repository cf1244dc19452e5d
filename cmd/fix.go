package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exprkit/boolsimp"
	"github.com/exprkit/boolsimp/internal/fixer"
	tt "github.com/exprkit/boolsimp/internal/types"
)

var (
	dryRun              bool
	confidenceThreshold float64
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically apply proven simplifications",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := boolsimp.ParseConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		engine, err := boolsimp.NewFromConfig(config)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		// The flag wins over the config file, but only when given.
		threshold := config.MinConfidence
		if cmd.Flags().Changed("confidence") {
			threshold = confidenceThreshold
		}

		runAutoFix(ctx, logger, engine, args, dryRun, threshold)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes without applying them")
	fixCmd.Flags().Float64Var(&confidenceThreshold, "confidence", boolsimp.DefaultMinConfidence, "Minimum confidence for applying a fix (0.0 to 1.0)")
}

func runAutoFix(ctx context.Context, logger *zap.Logger, engine boolsimp.LintEngine, paths []string, dryRun bool, confidenceThreshold float64) {
	fix := fixer.New(dryRun, confidenceThreshold)

	for _, path := range paths {
		issues, err := boolsimp.ProcessPath(ctx, logger, engine, path, boolsimp.ProcessFile)
		if err != nil {
			logger.Error("error processing path", zap.String("path", path), zap.Error(err))
			continue
		}

		// The path may be a directory; the fixer rewrites one file at a time.
		issuesByFile := make(map[string][]tt.Issue)
		for _, issue := range issues {
			issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
		}

		files := make([]string, 0, len(issuesByFile))
		for filename := range issuesByFile {
			files = append(files, filename)
		}
		sort.Strings(files)

		for _, filename := range files {
			if err := fix.Fix(filename, issuesByFile[filename]); err != nil {
				logger.Error("error fixing issues", zap.String("file", filename), zap.Error(err))
			}
		}
	}
}
