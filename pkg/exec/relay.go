package exec

import (
	"bufio"
	"errors"
	"io"
)

// relayBufferSize bounds a single read. Longer lines are forwarded in several
// writes without altering the byte stream.
const relayBufferSize = 4096

// Relay copies src to dst line by line, writing each line as soon as it is
// read. It returns the number of bytes written and the first read or write
// error other than io.EOF.
func Relay(dst io.Writer, src io.Reader) (int64, error) {
	reader := bufio.NewReaderSize(src, relayBufferSize)
	var written int64
	for {
		chunk, readErr := reader.ReadSlice('\n')
		if len(chunk) > 0 {
			n, err := dst.Write(chunk)
			written += int64(n)
			if err != nil {
				return written, err
			}
			if n != len(chunk) {
				return written, io.ErrShortWrite
			}
		}
		switch {
		case readErr == nil, errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			return written, nil
		default:
			return written, readErr
		}
	}
}
