// Package script runs line-oriented commands against a region.
//
// Each non-empty line holds one command followed by its arguments, for example
//
//	append "héllo"        # encoded with the region's charset
//	write 414243 2 hex
//	indexof l 3
//	text
//
// Every command prints exactly one result line. Execution stops at the first
// failing command and the error names its line.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AdrianWangs/go-buffer/pkg/codec"
	"github.com/AdrianWangs/go-buffer/pkg/logger"
	"github.com/AdrianWangs/go-buffer/pkg/region"
)

// ErrUnknownCommand is returned for a command name the interpreter does not know
var ErrUnknownCommand = errors.New("unknown command")

// undefined is printed by get and at for out-of-range positions
const undefined = "undefined"

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(r *region.Region, args []string) (string, error)
}

var commands = map[string]command{
	"append":      {"append TEXT [charset]", 1, 2, runAppend},
	"appendhex":   {"appendhex HEX", 1, 1, runAppendHex},
	"write":       {"write TEXT OFFSET [charset]", 2, 3, runWrite},
	"set":         {"set INDEX BYTE", 2, 2, runSet},
	"get":         {"get OFFSET", 1, 1, runGet},
	"at":          {"at INDEX", 1, 1, runAt},
	"indexof":     {"indexof TEXT [OFFSET]", 1, 2, runIndexOf},
	"lastindexof": {"lastindexof TEXT [OFFSET]", 1, 2, runLastIndexOf},
	"includes":    {"includes TEXT [OFFSET]", 1, 2, runIncludes},
	"compare":     {"compare TEXT", 1, 1, runCompare},
	"equals":      {"equals TEXT", 1, 1, runEquals},
	"fill":        {"fill BYTE START END", 3, 3, runFill},
	"truncate":    {"truncate N", 1, 1, runTruncate},
	"reset":       {"reset", 0, 0, runReset},
	"grow":        {"grow N", 1, 1, runGrow},
	"text":        {"text [charset] [start] [end]", 0, 3, runText},
	"stats":       {"stats", 0, 0, runStats},
}

// Commands lists the usage line of every command, sorted by name
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	usages := make([]string, len(names))
	for i, name := range names {
		usages[i] = commands[name].usage
	}
	return usages
}

// Interpreter executes commands against a single region
type Interpreter struct {
	region *region.Region
	out    io.Writer
	log    *logrus.Entry
}

// New creates an interpreter that mutates r and prints results to out
func New(r *region.Region, out io.Writer) *Interpreter {
	return &Interpreter{
		region: r,
		out:    out,
		log:    logger.Component("script"),
	}
}

// Region returns the region the interpreter works on
func (in *Interpreter) Region() *region.Region {
	return in.region
}

// Exec runs one line and returns its result. Blank and comment-only lines
// return "" with no error.
func (in *Interpreter) Exec(line string) (string, error) {
	args, err := splitLine(line)
	if err != nil || len(args) == 0 {
		return "", err
	}
	return in.exec(args)
}

func (in *Interpreter) exec(args []string) (string, error) {
	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return "", errors.Wrap(ErrUnknownCommand, args[0])
	}
	args = args[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return "", errors.Errorf("usage: %s", cmd.usage)
	}

	result, err := cmd.run(in.region, args)
	if err != nil {
		return "", errors.Wrap(err, name)
	}
	in.log.WithFields(logrus.Fields{
		"command": name,
		"len":     in.region.Len(),
		"cap":     in.region.Cap(),
	}).Debug("command executed")
	return result, nil
}

// Run executes every line of src in order, writing one result line per
// command. It stops at the first error or when ctx is done.
func (in *Interpreter) Run(ctx context.Context, src io.Reader) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	executed := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}

		args, err := splitLine(scanner.Text())
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		if len(args) == 0 {
			continue
		}
		result, err := in.exec(args)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}

		executed++
		if _, err := fmt.Fprintln(in.out, result); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}

	in.log.Infof("ran %d commands from %d lines", executed, lineNo)
	return nil
}

func parseInt(arg string) (int, error) {
	n, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad integer %q", arg)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.Errorf("integer %s out of range", arg)
	}
	return int(n), nil
}

// parseByte accepts a number in [0, 255] or a single character
func parseByte(arg string) (byte, error) {
	if n, err := strconv.ParseUint(arg, 0, 8); err == nil {
		return byte(n), nil
	}
	if len(arg) == 1 {
		return arg[0], nil
	}
	return 0, errors.Errorf("bad byte %q", arg)
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func optionalInt(args []string, i, def int) (int, error) {
	if i < len(args) {
		return parseInt(args[i])
	}
	return def, nil
}

func runAppend(r *region.Region, args []string) (string, error) {
	n, err := r.AppendStringN(args[0], math.MaxInt, optionalArg(args, 1))
	return strconv.Itoa(n), err
}

func runAppendHex(r *region.Region, args []string) (string, error) {
	n, err := r.AppendStringN(args[0], math.MaxInt, codec.Hex)
	return strconv.Itoa(n), err
}

func runWrite(r *region.Region, args []string) (string, error) {
	off, err := parseInt(args[1])
	if err != nil {
		return "", err
	}
	n, err := r.WriteStringAtN(args[0], off, math.MaxInt, optionalArg(args, 2))
	return strconv.Itoa(n), err
}

func runSet(r *region.Region, args []string) (string, error) {
	i, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	b, err := parseByte(args[1])
	if err != nil {
		return "", err
	}
	r.Set(i, b)
	return "ok", nil
}

func formatByte(b byte, ok bool) string {
	if !ok {
		return undefined
	}
	return strconv.Itoa(int(b))
}

func runGet(r *region.Region, args []string) (string, error) {
	off, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	return formatByte(r.Get(off)), nil
}

func runAt(r *region.Region, args []string) (string, error) {
	i, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	return formatByte(r.At(i)), nil
}

func runIndexOf(r *region.Region, args []string) (string, error) {
	off, err := optionalInt(args, 1, 0)
	if err != nil {
		return "", err
	}
	i, err := r.IndexOf(region.Text(args[0]), off)
	return strconv.Itoa(i), err
}

func runLastIndexOf(r *region.Region, args []string) (string, error) {
	off, err := optionalInt(args, 1, r.Len())
	if err != nil {
		return "", err
	}
	i, err := r.LastIndexOf(region.Text(args[0]), off)
	return strconv.Itoa(i), err
}

func runIncludes(r *region.Region, args []string) (string, error) {
	off, err := optionalInt(args, 1, 0)
	if err != nil {
		return "", err
	}
	found, err := r.Includes(region.Text(args[0]), off)
	return strconv.FormatBool(found), err
}

func runCompare(r *region.Region, args []string) (string, error) {
	return strconv.Itoa(r.Compare([]byte(args[0]))), nil
}

func runEquals(r *region.Region, args []string) (string, error) {
	return strconv.FormatBool(r.Equals([]byte(args[0]))), nil
}

func runFill(r *region.Region, args []string) (string, error) {
	b, err := parseByte(args[0])
	if err != nil {
		return "", err
	}
	start, err := parseInt(args[1])
	if err != nil {
		return "", err
	}
	end, err := parseInt(args[2])
	if err != nil {
		return "", err
	}
	if err := r.Fill(b, start, end); err != nil {
		return "", err
	}
	return "ok", nil
}

func runTruncate(r *region.Region, args []string) (string, error) {
	n, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	if err := r.Truncate(n); err != nil {
		return "", err
	}
	return "ok", nil
}

func runReset(r *region.Region, _ []string) (string, error) {
	r.Reset()
	return "ok", nil
}

func runGrow(r *region.Region, args []string) (string, error) {
	n, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	if err := r.EnsureCapacity(n); err != nil {
		return "", err
	}
	return strconv.Itoa(r.Cap()), nil
}

func runText(r *region.Region, args []string) (string, error) {
	start, err := optionalInt(args, 1, 0)
	if err != nil {
		return "", err
	}
	end, err := optionalInt(args, 2, -1)
	if err != nil {
		return "", err
	}
	text, err := r.ToText(optionalArg(args, 0), start, end)
	if err != nil {
		return "", err
	}
	return strconv.Quote(text), nil
}

func runStats(r *region.Region, _ []string) (string, error) {
	return fmt.Sprintf("len=%d cap=%d (%s) max=%s fill=%d charset=%s",
		r.Len(), r.Cap(), humanize.IBytes(uint64(r.Cap())),
		humanize.IBytes(uint64(r.MaxLen())), r.FillValue(), r.Charset()), nil
}
