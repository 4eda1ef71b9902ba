package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/bytestr/core/errors"
	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var growBulk int

var growCmd = &cobra.Command{
	Use:   "grow <n>",
	Short: "Count reallocations for n appended bytes",
	Long: `Appends n bytes to an empty buffer and reports how often the
capacity changed. By default bytes are appended one at a time; --bulk k
appends chunks of k bytes instead. buffer.initial_capacity is reserved
first.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrow,
}

func init() {
	growCmd.Flags().IntVar(&growBulk, "bulk", 1, "bytes per append")
	rootCmd.AddCommand(growCmd)
}

// growStats describes one grow run
type growStats struct {
	appends       int
	reallocations int
	capacities    []int
	final         *bytestr.Buffer
}

func runGrow(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return mdwerrors.InvalidInput("cmd", "grow", args[0], "non-negative integer")
	}
	if growBulk < 1 {
		return mdwerrors.InvalidInput("cmd", "grow", growBulk, "--bulk of at least 1")
	}

	timer := app.logger.StartTimer("grow").
		WithLevel(mdwlog.LevelInfo).
		WithField("bytes", n).
		WithField("bulk", growBulk)

	stats := grow(n, growBulk, app.settings.Buffer.InitialCapacity)

	timer.WithField("reallocations", stats.reallocations).Stop()

	s := app.styles
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.row("bytes", fmt.Sprint(stats.final.Len())))
	fmt.Fprintln(out, s.row("appends", fmt.Sprint(stats.appends)))
	fmt.Fprintln(out, s.row("reallocs", fmt.Sprint(stats.reallocations)))
	fmt.Fprintln(out, s.row("capacity", fmt.Sprint(stats.final.Cap())))
	if verbose {
		fmt.Fprintln(out, s.row("steps", fmt.Sprint(stats.capacities)))
	}
	return nil
}

func grow(n, bulk, initial int) growStats {
	b := bytestr.WithCapacity(initial)
	chunk := make([]byte, bulk)
	for i := range chunk {
		chunk[i] = 'x'
	}

	var stats growStats
	for b.Len() < n {
		before := b.Cap()
		if bulk == 1 {
			b.PushBack('x')
		} else {
			b.AppendBytes(chunk[:min(bulk, n-b.Len())])
		}
		stats.appends++
		if b.Cap() != before {
			stats.reallocations++
			stats.capacities = append(stats.capacities, b.Cap())
		}
	}
	stats.final = b
	return stats
}
