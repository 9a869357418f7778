package intreader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 20

// Reader reads whitespace-separated base-10 integers.
type Reader struct {
	scanner  *bufio.Scanner
	consumed int
}

// ReadInt returns the next integer. Errors wrap ErrInputParse or
// ErrEndOfInput and carry the 1-based position of the token.
func (r *Reader) ReadInt() (int64, error) {
	position := r.consumed + 1

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read token %d: %w", position, err)
		}

		return 0, fmt.Errorf("%w: token %d", ErrEndOfInput, position)
	}

	r.consumed++
	token := r.scanner.Text()

	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q: %v", ErrInputParse, position, token, err)
	}

	return value, nil
}

// Consumed is the number of tokens read, including ones that failed to parse.
func (r *Reader) Consumed() int {
	return r.consumed
}

func New(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	return &Reader{scanner: scanner}
}
