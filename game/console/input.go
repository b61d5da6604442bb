package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	ErrInputClosed = errors.New("could not read input")
)

// lineReader reads one line of input per turn
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// ReadChar returns the first character of the next line. An empty line yields
// the newline itself, which no direction maps to.
func (lr *lineReader) ReadChar() (rune, error) {
	line, err := lr.r.ReadString('\n')
	if len(line) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, ErrInputClosed
		}
		return 0, fmt.Errorf("%w: %v", ErrInputClosed, err)
	}

	c, _ := utf8.DecodeRuneInString(line)
	return c, nil
}
