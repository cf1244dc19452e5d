package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exprkit/boolsimp"
	"github.com/exprkit/boolsimp/formatter"
	"github.com/exprkit/boolsimp/internal"
	tt "github.com/exprkit/boolsimp/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-check files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, err := boolsimp.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		watcher, err := internal.NewWatcher(engine, logger, reportIssues)
		if err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer watcher.Close()

		for _, path := range args {
			if err := watcher.Add(path); err != nil {
				logger.Fatal("Failed to watch path", zap.String("path", path), zap.Error(err))
			}
		}
		watcher.Start()

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}

func reportIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		return
	}
	sourceCode, err := internal.ReadSourceCode(filename)
	if err != nil {
		logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
		return
	}
	fmt.Println(formatter.GenerateFormattedIssue(issues, sourceCode))
}
