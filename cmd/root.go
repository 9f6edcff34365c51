// Package cmd implements the habrmd command line using Cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gaurav-prasanna/habrmd/core/extract"
	"github.com/gaurav-prasanna/habrmd/core/fetch"
	"github.com/gaurav-prasanna/habrmd/core/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultSavePath = "."

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "habrmd <url> [save_path]",
	Short: "habrmd — save an article as Markdown with tag front matter",
	Long: `habrmd fetches one article page, points its images at full-size sources,
converts the body to Markdown and writes "<title>.md" with the article's tags
as YAML front matter.

Usage:
  habrmd https://habr.com/ru/articles/123456/
  habrmd https://habr.com/ru/articles/123456/ ./notes`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pipeline.New(pipeline.Options{Logger: logger})
		return save(cmd.Context(), p, cmd.OutOrStdout(), args)
	},
}

// Execute runs the root command.
func Execute() {
	logger = newLogger(os.Stderr)
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// save runs the pipeline for args (url, optional save path). Failures the
// user can act on are logged and swallowed; anything else is returned.
func save(ctx context.Context, p *pipeline.Pipeline, out io.Writer, args []string) error {
	rawURL := args[0]
	savePath := defaultSavePath
	if len(args) > 1 {
		savePath = args[1]
	}

	path, err := p.Run(ctx, rawURL, savePath)
	if err != nil {
		if pipeline.IsReported(err) {
			report(rawURL, err)
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "✓ Written: %s\n", path)
	return nil
}

// report logs a diagnostic for a failure classified by pipeline.IsReported.
func report(rawURL string, err error) {
	var httpErr *fetch.HTTPError
	switch {
	case errors.As(err, &httpErr):
		logger.Error("could not access article",
			zap.String("url", rawURL),
			zap.Int("status", httpErr.StatusCode))
	case errors.Is(err, extract.ErrTitleNotFound):
		logger.Error("could not find article title", zap.String("url", rawURL), zap.Error(err))
	case errors.Is(err, extract.ErrContentNotFound):
		logger.Error("could not find article content", zap.String("url", rawURL), zap.Error(err))
	}
}
