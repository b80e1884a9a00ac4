package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bradenaw/dlist"
	"github.com/bradenaw/dlist/internal/mlog"
	"github.com/bradenaw/dlist/internal/script"
)

var (
	version = "dev/unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dlist",
	Short: "Replay list operation scripts against a dlist.List.",
}

type runFlags struct {
	c    string
	dump string
}

var rf = runFlags{}

func init() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a script and print the resulting list.",
		Args:  cobra.NoArgs,
		Run:   runScript,
	}
	fs := runCmd.Flags()
	fs.StringVarP(&rf.c, "script", "c", "", "script file (default ./script.yaml)")
	fs.StringVar(&rf.dump, "dump", "", "write the final list contents to this file as yaml")
	rootCmd.AddCommand(runCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print out version info and exit.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})
}

func runScript(cmd *cobra.Command, args []string) {
	s, err := script.Load(rf.c)
	if err != nil {
		mlog.L().Fatal("failed to load script", zap.Error(err))
	}

	logger, err := mlog.NewLogger(s.Log)
	if err != nil {
		mlog.L().Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Sync()

	l := dlist.New[string]()
	sum, err := script.NewRunner(l, cmd.OutOrStdout(), logger, s.StopOnError).Run(s.Ops)
	if err != nil {
		logger.Fatal("script aborted", zap.Error(err))
	}
	logger.Info(
		"script finished",
		zap.Int("applied", sum.Applied),
		zap.Int("failed", sum.Failed),
		zap.Int("len", l.Len()),
	)
	fmt.Fprintln(cmd.OutOrStdout(), l)

	if len(rf.dump) > 0 {
		f, err := os.Create(rf.dump)
		if err != nil {
			logger.Fatal("failed to create dump file", zap.Error(err))
		}
		defer f.Close()
		if err := script.WriteSnapshot(f, l); err != nil {
			logger.Fatal("failed to write dump file", zap.String("file", rf.dump), zap.Error(err))
		}
	}
	l.Clear()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		mlog.S().Fatal(err)
	}
}
