package leap

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Scanner yields the data lines of a leap-second list one at a time. Blank
// lines and lines starting with "#" are skipped. Lines may end in "\n",
// "\r\n", or a lone "\r", and the last line is returned even without a
// terminator.
type Scanner struct {
	sc   *bufio.Scanner
	text string
	line int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(scanLines)
	return &Scanner{sc: sc}
}

// Scan advances to the next data line. It returns false at the end of the
// input or on a read error; call Err to tell them apart.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		s.text = text
		return true
	}
	s.text = ""
	return false
}

// Text returns the current data line with surrounding white space removed.
func (s *Scanner) Text() string { return s.text }

// Line returns the one-based physical line number of the current line.
func (s *Scanner) Line() int { return s.line }

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error { return s.sc.Err() }

// scanLines is a bufio.SplitFunc that accepts all three common line
// terminators.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// Need one more byte to tell "\r" from "\r\n".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
