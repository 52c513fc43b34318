package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/featurelinks/pkg/errors"
	"github.com/matzehuels/featurelinks/pkg/feature"
	pkgio "github.com/matzehuels/featurelinks/pkg/io"
	"github.com/matzehuels/featurelinks/pkg/observability"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	validateEditions bool   // reject unknown editions in the applies-to header
	format           string // output format: "json" or "text"
	output           string // output file path (stdout if empty)
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "generate <record.toml>",
		Short: "Compute the generated fields of a feature record",
		Long: `Compute the generated fields of a feature record: applies-to filters,
relationship link groups, the Java SE display string and the vanity URL.

Examples:
  featurelinks generate servlet-3.1.toml
  featurelinks generate servlet-3.1.toml --format text
  featurelinks generate servlet-3.1.toml -o servlet-3.1.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatJSON && opts.format != formatText {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want %s or %s)", opts.format, formatJSON, formatText)
			}
			if opts.output != "" && opts.format != formatJSON {
				return errors.New(errors.ErrCodeInvalidInput, "--output requires --format json")
			}

			f, err := generate(cmd.Context(), args[0], opts.validateEditions)
			if err != nil {
				return err
			}
			return writeFeature(cmd.OutOrStdout(), f, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.validateEditions, "validate-editions", false, "reject unknown product editions")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (json, text)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// generate loads the record at path and updates its generated fields.
func generate(ctx context.Context, path string, validateEditions bool) (*feature.Feature, error) {
	logger := loggerFromContext(ctx)

	f, err := pkgio.ImportRecord(path)
	if err != nil {
		return nil, err
	}
	name := f.ShortName
	if name == "" {
		name = path
	}
	logger.Debug("Loaded record", "path", path, "shortName", f.ShortName)

	hooks := observability.Generate()
	hooks.OnGenerateStart(ctx, name)
	prog := newProgress(logger)

	err = f.UpdateGeneratedFields(validateEditions)
	hooks.OnGenerateComplete(ctx, name, len(f.Links), time.Since(prog.start), err)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", name, err)
	}
	prog.done(fmt.Sprintf("Generated %d link groups for %s", len(f.Links), name))
	return f, nil
}

func writeFeature(w io.Writer, f *feature.Feature, opts generateOpts) error {
	switch {
	case opts.format == formatText:
		writeText(w, f)
		return nil
	case opts.output != "":
		if err := pkgio.ExportJSON(f, opts.output); err != nil {
			return err
		}
		printSuccess(w, "Generated %s", f.ShortName)
		printFile(w, opts.output)
		return nil
	default:
		return pkgio.WriteJSON(f, w)
	}
}
