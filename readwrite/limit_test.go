package readwrite

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitReaderWithinLimit(t *testing.T) {
	r := NewLimitReader(strings.NewReader("12345"), ReadLimitProps{Limit: 5, FailOnExceed: true})

	b, err := io.ReadAll(r)

	assert.NoError(t, err)
	assert.Equal(t, "12345", string(b))
}

func TestLimitReaderExceedsFails(t *testing.T) {
	r := NewLimitReader(strings.NewReader("123456"), ReadLimitProps{Limit: 5, FailOnExceed: true})

	_, err := io.ReadAll(r)

	assert.ErrorIs(t, err, ErrReadLimitExceeded)
}

func TestLimitReaderExceedsTruncates(t *testing.T) {
	r := NewLimitReader(strings.NewReader("123456"), ReadLimitProps{Limit: 5})

	b, err := io.ReadAll(r)

	assert.NoError(t, err)
	assert.Equal(t, "12345", string(b))
}
