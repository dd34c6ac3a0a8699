// Command mazegen crafts a solved square maze and writes it to a CSV file.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	seed    int64
	outPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mazegen <size>",
	Short: "Generate and solve a square maze",
	Long: `mazegen builds a size x size maze with a loop-erased random walk,
solves it with mark-based backtracking, and writes the result as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil || size < 1 {
			return fmt.Errorf("size must be a positive integer, got %q", args[0])
		}

		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		entry := logrus.NewEntry(logger)

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		m, err := maze.New(size, size)
		if err != nil {
			return err
		}
		if err := maze.Generate(m, rand.New(rand.NewSource(seed)), entry); err != nil {
			return err
		}
		if err := maze.Solve(m, entry); err != nil {
			return err
		}

		if err := os.WriteFile(outPath, []byte(maze.Encode(m)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		entry.WithFields(logrus.Fields{
			"size": size,
			"seed": seed,
			"out":  outPath,
		}).Info("maze written")
		return nil
	},
}

func init() {
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 picks one from the clock")
	rootCmd.Flags().StringVar(&outPath, "out", "mazeData.csv", "output file path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each generation and solving step")
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
