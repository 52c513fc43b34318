package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/featurelinks/pkg/feature"
	pkgio "github.com/matzehuels/featurelinks/pkg/io"
	"github.com/matzehuels/featurelinks/pkg/snapshot"
)

// diffOpts holds the command-line flags for the diff command.
type diffOpts struct {
	summary bool // print counts only
}

func (c *CLI) diffCommand() *cobra.Command {
	var opts diffOpts

	cmd := &cobra.Command{
		Use:   "diff <old-dir> <new-dir>",
		Short: "Pair the records of two repository snapshots",
		Long: `Load every *.toml record of two snapshot directories and pair them by
matching key. Records only in the new snapshot are reported as added, records
only in the old one as removed, and pairs whose declarations differ as changed.

Example:
  featurelinks diff snapshots/18.0.0.2 snapshots/18.0.0.3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			w := cmd.OutOrStdout()

			prog := newProgress(logger)
			before, err := pkgio.ImportDir(args[0])
			if err != nil {
				return err
			}
			after, err := pkgio.ImportDir(args[1])
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d + %d records", len(before), len(after)))
			for i, records := range [][]*feature.Feature{before, after} {
				if len(records) == 0 {
					printWarning(w, "No records found in %s", args[i])
				}
			}

			res := snapshot.Diff(ctx, before, after, snapshot.Options{
				Logger: func(msg string, args ...any) { logger.Debugf(msg, args...) },
			})
			changed := res.Changed()

			printInfo(w, "%s matched %s added %s removed %s changed",
				StyleNumber.Render(fmt.Sprint(len(res.Matched))),
				StyleNumber.Render(fmt.Sprint(len(res.Added))),
				StyleNumber.Render(fmt.Sprint(len(res.Removed))),
				StyleNumber.Render(fmt.Sprint(len(changed))),
			)
			if opts.summary {
				return nil
			}

			for _, f := range res.Added {
				printEntry(w, iconAdded, styleIconSuccess, "%s", displayName(f))
			}
			for _, f := range res.Removed {
				printEntry(w, iconRemoved, styleIconError, "%s", displayName(f))
			}
			for _, p := range changed {
				printEntry(w, iconChanged, styleIconWarning, "%s", displayName(p.After))
			}
			if len(res.Added)+len(res.Removed)+len(changed) == 0 {
				printSuccess(w, "Snapshots are equivalent")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print counts only")

	return cmd
}

// displayName picks the most specific human-readable name of f.
func displayName(f *feature.Feature) string {
	if f.ShortName != "" {
		return f.ShortName
	}
	if name, ok := f.ProvideFeature(); ok {
		return name
	}
	if f.Name != "" {
		return f.Name
	}
	return "(unnamed)"
}
