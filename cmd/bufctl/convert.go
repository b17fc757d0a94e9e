package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/AdrianWangs/go-buffer/internal/export"
	"github.com/AdrianWangs/go-buffer/pkg/logger"
)

// convertCommand reads an exported region and writes it in another format
type convertCommand struct {
	global *globalFlags
	input  *string
	from   *string
	to     *string
	output *string
}

func addConvertCommand(app *kingpin.Application, g *globalFlags) {
	cmd := &convertCommand{global: g}
	conv := app.Command("convert", "Convert an exported region between formats.")
	cmd.input = conv.Arg("input", "Exported region; standard input when omitted.").String()
	cmd.from = conv.Flag("from", "Input format.").Required().Enum(formatNames()...)
	cmd.to = conv.Flag("to", "Output format.").Required().Enum(formatNames()...)
	cmd.output = conv.Flag("output", "Destination; standard output when empty.").Short('o').String()
	conv.Action(func(_ *kingpin.ParseContext) error {
		return cmd.run(os.Stdin, os.Stdout)
	})
}

func (cmd *convertCommand) run(stdin io.Reader, stdout io.Writer) error {
	cfg, err := cmd.global.load()
	if err != nil {
		return err
	}

	var data []byte
	if *cmd.input != "" {
		data, err = os.ReadFile(*cmd.input)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	r, err := export.Decode(data, export.Format(*cmd.from), cfg.RegionOptions()...)
	if err != nil {
		return err
	}
	logger.Infof("decoded %d bytes from %s", r.Len(), *cmd.from)

	return writeExport(r, export.Format(*cmd.to), *cmd.output, stdout)
}
