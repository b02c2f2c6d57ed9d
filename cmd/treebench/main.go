// Command treebench compares the unbalanced and the AVL search tree on a
// dataset read from a text file, once with sorted and once with shuffled
// input. Results are printed and appended as a CSV line to an output file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/e11jah/searchtree/internal/bench"
	"github.com/e11jah/searchtree/internal/config"
	"github.com/e11jah/searchtree/internal/dataset"
	"github.com/e11jah/searchtree/internal/report"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cmdRun = &cobra.Command{
		Use:   "run [input-file] [number-of-lines]",
		Short: "Time insert and search on both trees",
		Long: `Run reads up to number-of-lines keys from the input file, skipping a
header line, and times insertion and lookup on an unbalanced and an AVL
search tree for sorted and for shuffled input.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runBenchmark,
	}
	cmdRun.Flags().StringP("config", "c", "treebench.yaml", "configuration file")
	cmdRun.Flags().StringP("input", "i", "", "dataset file, one key per line")
	cmdRun.Flags().IntP("lines", "n", 0, "maximum number of keys to read")
	cmdRun.Flags().StringP("output", "o", "", "file to append the CSV line to")
	cmdRun.Flags().Uint64("seed", 0, "seed for shuffling the input")
	cmdRun.Flags().String("trace", "", "trace level (Error, Info, Debug)")

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print treebench version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "treebench",
		Short:        "Compare a binary search tree with an AVL tree",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmdRun, cmdVersion)
	return rootCmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("treebench").SetTraceLevel(tracing.TraceLevelFromString(conf.TraceLevel))

	keys, err := dataset.ReadFile(conf.Input, conf.Lines)
	if err != nil {
		return err
	}
	tracing.Select("treebench").Infof("read %d keys from %s", len(keys), conf.Input)

	result := bench.Run(keys, conf.Seed)
	if err := report.WriteSummary(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if err := report.AppendCSV(conf.Output, report.CSVLine(time.Now(), result)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "CSV appended to %s\n", conf.Output)
	return nil
}

// loadConfig merges the configuration file, positional arguments and flags,
// later sources taking precedence.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	conf, err := config.Load(path)
	if err != nil {
		return conf, err
	}

	if len(args) > 0 {
		conf.Input = args[0]
	}
	if len(args) > 1 {
		var n int
		if _, err := fmt.Sscan(args[1], &n); err != nil {
			return conf, fmt.Errorf("invalid number of lines %q", args[1])
		}
		conf.Lines = n
	}

	if flags.Changed("input") {
		conf.Input, _ = flags.GetString("input")
	}
	if flags.Changed("lines") {
		conf.Lines, _ = flags.GetInt("lines")
	}
	if flags.Changed("output") {
		conf.Output, _ = flags.GetString("output")
	}
	if flags.Changed("seed") {
		conf.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("trace") {
		conf.TraceLevel, _ = flags.GetString("trace")
	}
	return conf, conf.Validate()
}
