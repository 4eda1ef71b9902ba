package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/bytestr/core/errors"
	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var inspectReserve int

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Show the layout of a buffer",
	Long: `Builds a buffer from <text> and shows its length, capacity and the
raw allocation: content bytes, the terminator and unused capacity.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectReserve, "reserve", 0, "reserve this capacity before inspecting")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectReserve < 0 {
		return mdwerrors.InvalidInput("cmd", "inspect", inspectReserve, "non-negative --reserve")
	}

	b := newBuffer(args[0])
	b.Reserve(inspectReserve)

	app.logger.Debug("inspecting buffer", mdwlog.Fields{
		"length":   b.Len(),
		"capacity": b.Cap(),
	})

	fmt.Fprintln(cmd.OutOrStdout(), renderInspect(b))
	return nil
}

func renderInspect(b *bytestr.Buffer) string {
	s := app.styles

	rows := []string{
		s.title.Render("buffer"),
		s.row("content", fmt.Sprintf("%q", b.String())),
		s.row("length", fmt.Sprint(b.Len())),
		s.row("capacity", fmt.Sprint(b.Cap())),
		s.row("terminator", fmt.Sprintf("index %d", b.Len())),
		s.row("layout", renderLayout(b)),
	}
	return s.panel.Render(strings.Join(rows, "\n"))
}

// renderLayout prints every byte of the allocation in hex. At reads past
// Len() on purpose to show the terminator and unused capacity.
func renderLayout(b *bytestr.Buffer) string {
	s := app.styles
	cells := make([]string, 0, b.Cap()+1)
	for i := 0; i <= b.Cap(); i++ {
		cell := fmt.Sprintf("%02x", b.At(i))
		switch {
		case i < b.Len():
			cells = append(cells, s.value.Render(cell))
		case i == b.Len():
			cells = append(cells, s.terminator.Render(cell))
		default:
			cells = append(cells, s.stale.Render(cell))
		}
	}
	return strings.Join(cells, " ")
}
