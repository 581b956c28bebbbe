package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_takeUntil(t *testing.T) {
	cur := newCursor([]byte("abc:def"))

	got, err := cur.takeUntil(':')

	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 4, cur.pos)
}

func TestCursor_takeUntil_missingDelim(t *testing.T) {
	cur := newCursor([]byte("abc"))

	_, err := cur.takeUntil(':')

	assert.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestCursor_takeN_clampsAtEnd(t *testing.T) {
	cur := newCursor([]byte("abc"))

	data, clamped := cur.takeN(10)

	assert.True(t, clamped)
	assert.Equal(t, "abc", string(data))
	assert.True(t, cur.atEnd())
}

func TestCursor_takeNExact_failsWhenShort(t *testing.T) {
	cur := newCursor([]byte("ab"))

	_, err := cur.takeNExact(5)

	assert.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestCursor_peekByte(t *testing.T) {
	cur := newCursor([]byte("x"))

	b, ok := cur.peekByte()
	assert.True(t, ok)
	assert.Equal(t, byte('x'), b)

	cur.pos++
	_, ok = cur.peekByte()
	assert.False(t, ok)
}

func TestCursor_defaultsToCP1256(t *testing.T) {
	cur := newCursor([]byte("x"))

	assert.Equal(t, CharsetCP1256, cur.charset)
}
