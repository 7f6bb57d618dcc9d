package readwrite

import (
	"errors"
	"io"
)

// ErrReadLimitExceeded is returned when a reader produces more
// bytes than the limit it was wrapped with
var ErrReadLimitExceeded = errors.New("read limit exceeded")

// ReadLimitProps defines how many bytes can be read from a reader
type ReadLimitProps struct {
	// Limit is the maximum number of bytes to read
	Limit int64

	// FailOnExceed when true makes reads fail with ErrReadLimitExceeded
	// once the reader has more bytes than Limit. When false the reader
	// is truncated at Limit bytes
	FailOnExceed bool
}

// LimitReader wraps an io.Reader so that at most Limit bytes are read
type LimitReader struct {
	r     io.Reader
	props ReadLimitProps
	read  int64
}

// NewLimitReader creates a new LimitReader
func NewLimitReader(r io.Reader, props ReadLimitProps) *LimitReader {
	return &LimitReader{r: r, props: props}
}

// Read is the implementation of io.Reader for LimitReader
func (l *LimitReader) Read(p []byte) (int, error) {
	remaining := l.props.Limit - l.read
	if remaining <= 0 {
		if !l.props.FailOnExceed {
			return 0, io.EOF
		}

		// probe for a single byte to tell apart a reader that ends
		// exactly at the limit from one that goes beyond it
		var probe [1]byte
		n, err := l.r.Read(probe[:])
		if n > 0 {
			return 0, ErrReadLimitExceeded
		}
		if err == nil {
			return 0, nil
		}
		return 0, err
	}

	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := l.r.Read(p)
	l.read += int64(n)
	return n, err
}
