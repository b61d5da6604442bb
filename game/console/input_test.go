package console

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChar(t *testing.T) {
	lr := newLineReader(strings.NewReader("w\nasdf\n\nx"))

	expected := []rune{'w', 'a', '\n', 'x'}
	for _, want := range expected {
		c, err := lr.ReadChar()
		require.NoError(t, err)
		assert.Equal(t, want, c)
	}

	_, err := lr.ReadChar()
	assert.True(t, errors.Is(err, ErrInputClosed))
}

func TestReadChar_ReadFailure(t *testing.T) {
	lr := newLineReader(iotest.ErrReader(errors.New("device gone")))

	_, err := lr.ReadChar()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
	assert.Contains(t, err.Error(), "device gone")
}
