package replay

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads a script from r.
// Returns ErrMissingSize for an empty script and *LineError for a malformed
// line; range checks on n and on coordinates are left to the grid.
func Parse(r io.Reader) (*Script, error) {
	sc := bufio.NewScanner(r)
	s := &Script{}
	haveSize := false
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)

		if !haveSize {
			if len(fields) != 1 {
				return nil, &LineError{Line: line, Text: text}
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, &LineError{Line: line, Text: text, Err: err}
			}
			s.N = n
			haveSize = true
			continue
		}

		if len(fields) != 2 {
			return nil, &LineError{Line: line, Text: text}
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		e := Entry{Line: line}
		e.Row, e.Col = row, col
		s.Entries = append(s.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveSize {
		return nil, ErrMissingSize
	}

	return s, nil
}
