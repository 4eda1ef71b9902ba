package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/bytestr/core/error"
	"github.com/msto63/bytestr/utils/bytestr"
)

var wordsCount bool

var wordsCmd = &cobra.Command{
	Use:   "words [file]",
	Short: "Split input into whitespace-delimited words",
	Long: `Reads whitespace-delimited words from [file], or from stdin when no
file is given, and prints one word per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().BoolVarP(&wordsCount, "count", "c", false, "print only the number of words")
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) (err error) {
	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			code := mdwerror.CodeIOError
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return mdwerror.Wrap(err, "cannot open input").
				WithCode(code).
				WithOperation("cmd.words").
				WithDetail("file", args[0])
		}
		defer f.Close()
		in = f
		source = args[0]
	}

	timer := app.logger.StartTimer("words").WithField("source", source)
	defer func() {
		if err != nil {
			timer.StopWithError(err)
		} else {
			timer.Stop()
		}
	}()

	out := cmd.OutOrStdout()
	n := 0
	err = bytestr.Words(in, func(w *bytestr.Buffer) error {
		n++
		if wordsCount {
			return nil
		}
		_, werr := w.WriteTo(out)
		if werr == nil {
			_, werr = fmt.Fprintln(out)
		}
		return werr
	})
	if err != nil {
		return err
	}

	timer.WithField("words", n)
	if wordsCount {
		fmt.Fprintln(out, n)
	}
	return nil
}
