package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/bytestr/core/errors"
	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var (
	concatSuffix string
	concatPrefix string
)

var concatCmd = &cobra.Command{
	Use:   "concat <a> <b>...",
	Short: "Join buffers into a new one",
	Long: `Concatenates the arguments into a new buffer and prints it with its
length and capacity. --byte appends and --prefix prepends a single byte.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConcat,
}

func init() {
	concatCmd.Flags().StringVar(&concatSuffix, "byte", "", "append this single byte")
	concatCmd.Flags().StringVar(&concatPrefix, "prefix", "", "prepend this single byte")
	rootCmd.AddCommand(concatCmd)
}

func runConcat(cmd *cobra.Command, args []string) error {
	out := newBuffer(args[0])
	for _, arg := range args[1:] {
		out = bytestr.Concat(out, newBuffer(arg))
	}

	if concatSuffix != "" {
		if len(concatSuffix) != 1 {
			return mdwerrors.InvalidInput("cmd", "concat", concatSuffix, "a single byte for --byte")
		}
		out = bytestr.ConcatByte(out, concatSuffix[0])
	}
	if concatPrefix != "" {
		if len(concatPrefix) != 1 {
			return mdwerrors.InvalidInput("cmd", "concat", concatPrefix, "a single byte for --prefix")
		}
		out = bytestr.PrependByte(concatPrefix[0], out)
	}

	app.logger.Debug("concatenated", mdwlog.Fields{
		"operands": len(args),
		"length":   out.Len(),
		"capacity": out.Cap(),
	})

	s := app.styles
	fmt.Fprintln(cmd.OutOrStdout(), s.row("content", fmt.Sprintf("%q", out.String())))
	fmt.Fprintln(cmd.OutOrStdout(), s.row("length", fmt.Sprint(out.Len())))
	fmt.Fprintln(cmd.OutOrStdout(), s.row("capacity", fmt.Sprint(out.Cap())))
	return nil
}
