package script

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// splitLine breaks a line into arguments. Words are separated by whitespace;
// a word starting with a double quote, back quote or single quote is read as a
// Go literal and unquoted. A '#' at the start of a word ends the line.
func splitLine(line string) ([]string, error) {
	var args []string
	rest := line
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" || rest[0] == '#' {
			return args, nil
		}

		switch rest[0] {
		case '"', '`', '\'':
			lit, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, errors.Errorf("unterminated or invalid quoted argument at %q", rest)
			}
			arg, err := strconv.Unquote(lit)
			if err != nil {
				return nil, errors.Wrapf(err, "unquote %s", lit)
			}
			args = append(args, arg)
			rest = rest[len(lit):]
			if rest != "" && !unicode.IsSpace(rune(rest[0])) {
				return nil, errors.Errorf("missing space after %s", lit)
			}
		default:
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}
			args = append(args, rest[:end])
			rest = rest[end:]
		}
	}
}
