package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/AdrianWangs/go-buffer/config"
	"github.com/AdrianWangs/go-buffer/internal/export"
	"github.com/AdrianWangs/go-buffer/internal/script"
	"github.com/AdrianWangs/go-buffer/pkg/codec"
	"github.com/AdrianWangs/go-buffer/pkg/logger"
	"github.com/AdrianWangs/go-buffer/pkg/region"
)

// runCommand executes a script against a fresh region and exports the result
type runCommand struct {
	global *globalFlags
	script *string
	format *string
	output *string
	quiet  *bool
}

func addRunCommand(app *kingpin.Application, g *globalFlags) {
	cmd := &runCommand{global: g}
	run := app.Command("run", "Run a script and export the final region.").Default()
	cmd.script = run.Flag("script", "Script file; standard input when empty.").Short('s').String()
	cmd.format = run.Flag("format", "Export format.").Default(string(export.FormatText)).Enum(formatNames()...)
	cmd.output = run.Flag("output", "Export destination; standard output when empty.").Short('o').String()
	cmd.quiet = run.Flag("quiet", "Do not export the final region.").Short('q').Bool()
	run.Action(func(_ *kingpin.ParseContext) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cmd.run(ctx, os.Stdin, os.Stdout)
	})
}

func formatNames() []string {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	return names
}

func (cmd *runCommand) run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	cfg, err := cmd.global.load()
	if err != nil {
		return err
	}

	r, textCodec, err := newRegion(cfg)
	if err != nil {
		return err
	}

	src := stdin
	if *cmd.script != "" {
		f, err := os.Open(*cmd.script)
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer f.Close()
		src = f
	}

	if err := script.New(r, stdout).Run(ctx, src); err != nil {
		return err
	}
	if cached, ok := textCodec.(*codec.Cached); ok {
		stats := cached.Stats()
		logger.WithFields(logger.Fields{
			"entries": stats.Entries,
			"bytes":   stats.Bytes,
			"hits":    stats.Hits,
			"misses":  stats.Misses,
		}).Debug("codec cache")
	}

	if *cmd.quiet {
		return nil
	}
	return writeExport(r, export.Format(*cmd.format), *cmd.output, stdout)
}

// newRegion builds a region from cfg and returns the codec it was given, so
// that callers can report cache statistics
func newRegion(cfg *config.Config) (*region.Region, codec.Codec, error) {
	textCodec := cfg.Codec()
	r, err := region.New(cfg.RegionOptionsWithCodec(textCodec)...)
	if err != nil {
		return nil, nil, err
	}
	return r, textCodec, nil
}

func writeExport(r *region.Region, f export.Format, path string, stdout io.Writer) error {
	if path == "" {
		if err := export.Write(stdout, r, f); err != nil {
			return err
		}
		if f == export.FormatText || f == export.FormatHex {
			_, err := io.WriteString(stdout, "\n")
			return err
		}
		return nil
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := export.Write(out, r, f); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "close output")
}
