package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/bytestr/core/error"
	mdwerrors "github.com/msto63/bytestr/core/errors"
	mdwlog "github.com/msto63/bytestr/core/log"
	"github.com/msto63/bytestr/utils/bytestr"
)

var substrCmd = &cobra.Command{
	Use:   "substr <text> <start> <count>",
	Short: "Copy count bytes starting at start",
	Long: `Copies a byte range into a new buffer.

With buffer.checked = true (the default) the range must lie within the
text. With buffer.checked = false the unchecked copy is used: bytes of
unused capacity are copied as they are, and only a range past the
allocation is rejected.`,
	Args: cobra.ExactArgs(3),
	RunE: runSubstr,
}

func init() {
	rootCmd.AddCommand(substrCmd)
}

func runSubstr(cmd *cobra.Command, args []string) error {
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return mdwerrors.InvalidInput("cmd", "substr", args[1], "integer start")
	}
	count, err := strconv.Atoi(args[2])
	if err != nil {
		return mdwerrors.InvalidInput("cmd", "substr", args[2], "integer count")
	}

	b := newBuffer(args[0])
	checked := app.settings.Buffer.Checked

	var sub *bytestr.Buffer
	if checked {
		sub, err = b.Slice(start, count)
	} else {
		sub, err = uncheckedSubstr(b, start, count)
	}
	if err != nil {
		return err
	}

	app.logger.Debug("substring copied", mdwlog.Fields{
		"start":   start,
		"count":   count,
		"checked": checked,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "%q\n", sub.String())
	return nil
}

// uncheckedSubstr turns the runtime panic of a range past the allocation
// into an error
func uncheckedSubstr(b *bytestr.Buffer, start, count int) (sub *bytestr.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = mdwerror.Newf("range [%d, %d) outside allocation of %d bytes", start, start+count, b.Cap()+1).
				WithCode(mdwerror.CodeValueOutOfRange).
				WithOperation("cmd.substr").
				WithDetail("panic", fmt.Sprint(r))
		}
	}()
	return b.Substr(start, count), nil
}
