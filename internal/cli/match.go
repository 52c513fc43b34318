package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/featurelinks/pkg/errors"
	pkgio "github.com/matzehuels/featurelinks/pkg/io"
)

func (c *CLI) matchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match <a.toml> <b.toml>",
		Short: "Check whether two records describe the same feature",
		Long: `Compare the matching keys of two feature records. The command exits
non-zero when the keys differ.

Example:
  featurelinks match old/servlet-3.1.toml new/servlet-3.1.toml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			w := cmd.OutOrStdout()

			a, err := pkgio.ImportRecord(args[0])
			if err != nil {
				return err
			}
			b, err := pkgio.ImportRecord(args[1])
			if err != nil {
				return err
			}

			ka, kb := a.MatchingKey(), b.MatchingKey()
			logger.Debug("Matching keys", "a", ka, "b", kb)

			printKeyValue(w, args[0], ka.Digest())
			printKeyValue(w, args[1], kb.Digest())
			if !ka.Equal(kb) {
				printError(w, "Records describe different features")
				return errors.New(errors.ErrCodeMismatch, "matching keys differ")
			}
			printSuccess(w, "Records describe the same feature")
			return nil
		},
	}
}
