package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_LengthBytes_text(t *testing.T) {
	f := NewTextField("hello", CharsetUTF8)

	n, err := f.LengthBytes()

	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestField_LengthBytes_image(t *testing.T) {
	f := NewImageField([]byte{1, 2, 3})

	n, err := f.LengthBytes()

	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestField_AsBytes_deepCopyOnGet(t *testing.T) {
	f := NewImageField([]byte{1, 2, 3})

	got := f.AsBytes()
	got[0] = 0xFF

	again := f.AsBytes()
	assert.Equal(t, byte(1), again[0])
}

func TestField_NewImageField_copiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	f := NewImageField(src)
	src[0] = 0xFF

	assert.Equal(t, byte(1), f.AsBytes()[0])
}

func TestField_Equal(t *testing.T) {
	a := NewTextField("x", CharsetUTF8)
	b := NewTextField("x", CharsetUTF8)
	c := NewTextField("y", CharsetUTF8)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewImageField([]byte("x"))))
}

func TestField_textFieldAs_mismatch(t *testing.T) {
	f := NewImageField([]byte{1})

	_, err := f.textFieldAs()

	assert.ErrorIs(t, err, ErrFieldTypeMismatch)
}

func TestField_imageFieldAs_mismatch(t *testing.T) {
	f := NewTextField("x", CharsetUTF8)

	_, err := f.imageFieldAs()

	assert.ErrorIs(t, err, ErrFieldTypeMismatch)
}
