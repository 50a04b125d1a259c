package repl

import (
	"bufio"
	"errors"
	"io"
)

// LineReader reads newline-terminated lines of bounded length.
//
// A line may hold at most maxBytes-1 bytes of content, leaving room for the
// terminator. Anything past that on the same line is read and thrown away up
// to and including the newline, so an overlong line never spills into the
// next read.
type LineReader struct {
	r     *bufio.Reader
	limit int
}

// NewLineReader creates a LineReader. maxBytes counts the terminator.
func NewLineReader(r io.Reader, maxBytes int) *LineReader {
	limit := maxBytes - 1
	if limit < 0 {
		limit = 0
	}
	return &LineReader{r: bufio.NewReader(r), limit: limit}
}

// ReadLine returns the next line without its trailing newline. A final line
// without a newline is returned normally; io.EOF is returned only when no
// bytes remain.
func (l *LineReader) ReadLine() (string, error) {
	var (
		line []byte
		read int
	)

	for {
		chunk, err := l.r.ReadSlice('\n')
		read += len(chunk)

		if room := l.limit - len(line); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			line = append(line, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && (read == 0 || !errors.Is(err, io.EOF)) {
			return "", err
		}
		break
	}

	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return string(line), nil
}
