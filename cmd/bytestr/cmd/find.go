package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var findCmd = &cobra.Command{
	Use:   "find <haystack> <needle>",
	Short: "Index of the first occurrence of needle",
	Long: `Prints the lowest index at which <needle> occurs in <haystack>.
When there is no match the sentinel, the haystack length, is reported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd, args, (*bytestr.Buffer).Find)
	},
}

var rfindCmd = &cobra.Command{
	Use:   "rfind <haystack> <needle>",
	Short: "Index of the last occurrence of needle",
	Long: `Prints the highest index at which <needle> occurs in <haystack>.
When there is no match the sentinel, the haystack length, is reported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd, args, (*bytestr.Buffer).RFind)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(rfindCmd)
}

func runFind(cmd *cobra.Command, args []string, search func(*bytestr.Buffer, *bytestr.Buffer) int) error {
	hay, needle := newBuffer(args[0]), newBuffer(args[1])
	idx := search(hay, needle)

	// Len() is both the sentinel and a valid match for an empty needle
	found := hay.Contains(needle.Bytes())

	app.logger.Debug("search finished", mdwlog.Fields{
		"haystack_length": hay.Len(),
		"needle_length":   needle.Len(),
		"index":           idx,
		"found":           found,
	})

	out := cmd.OutOrStdout()
	if found {
		fmt.Fprintln(out, app.styles.found.Render(fmt.Sprint(idx)))
	} else {
		fmt.Fprintln(out, app.styles.missing.Render(fmt.Sprintf("not found (%d)", idx)))
	}
	return nil
}
