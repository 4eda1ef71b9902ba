package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Lexicographic ordering of two buffers",
	Long: `Compares two buffers byte by byte as unsigned values. When one is a
prefix of the other the shorter one sorts first.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, b := newBuffer(args[0]), newBuffer(args[1])

	relation := "=="
	switch bytestr.Compare(a, b) {
	case -1:
		relation = "<"
	case 1:
		relation = ">"
	}

	app.logger.Debug("compared", mdwlog.String("relation", relation))
	fmt.Fprintf(cmd.OutOrStdout(), "%q %s %q\n", a.String(), app.styles.value.Render(relation), b.String())
	return nil
}
