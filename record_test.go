package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_FieldIDs_ascendingOrder(t *testing.T) {
	r := NewRecord(2, "User-defined descriptive text", map[int]Field{
		5: NewTextField("e", CharsetCP1256),
		1: NewTextField("a", CharsetCP1256),
		3: NewTextField("c", CharsetCP1256),
	})

	assert.Equal(t, []int{1, 3, 5}, r.FieldIDs())
}

func TestRecord_GetText_absentReturnsEmpty(t *testing.T) {
	r := NewRecord(2, "label", map[int]Field{})

	s, err := r.GetText(99)

	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestRecord_GetImage_typeMismatch(t *testing.T) {
	r := NewRecord(2, "label", map[int]Field{5: NewTextField("x", CharsetCP1256)})

	_, err := r.GetImage(5)

	assert.ErrorIs(t, err, ErrFieldTypeMismatch)
}

func TestRecord_GetInt(t *testing.T) {
	r := NewRecord(2, "label", map[int]Field{FieldIDC: NewTextField("7", CharsetCP1256)})

	v, err := r.GetInt(FieldIDC)

	require.NoError(t, err)
	assert.EqualValues(t, 7, v)
	assert.Equal(t, 7, r.IDC())
}

func TestRecord_NewRecord_copiesInputMap(t *testing.T) {
	src := []byte{1, 2, 3}
	fields := map[int]Field{5: NewImageField(src)}
	r := NewRecord(2, "label", fields)

	fields[5] = NewImageField([]byte{9, 9, 9}) // mutate caller's map after construction

	b, err := r.GetImage(5)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestRecord_DeepCopy_independentFromOriginal(t *testing.T) {
	r := NewRecord(2, "label", map[int]Field{5: NewImageField([]byte{1, 2, 3})})
	cp := r.DeepCopy()

	updated := r.withField(5, NewImageField([]byte{9, 9, 9}))

	cpImg, _ := cp.GetImage(5)
	assert.Equal(t, []byte{1, 2, 3}, cpImg)
	updatedImg, _ := updated.GetImage(5)
	assert.Equal(t, []byte{9, 9, 9}, updatedImg)
}

func TestRecord_Equal(t *testing.T) {
	a := NewRecord(2, "label", map[int]Field{1: NewTextField("x", CharsetCP1256)})
	b := NewRecord(2, "label", map[int]Field{1: NewTextField("x", CharsetCP1256)})
	c := NewRecord(2, "label", map[int]Field{1: NewTextField("y", CharsetCP1256)})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRecord_withField(t *testing.T) {
	r := NewRecord(2, "label", map[int]Field{1: NewTextField("x", CharsetCP1256)})

	updated := r.withField(1, NewTextField("y", CharsetCP1256))

	orig, _ := r.GetText(1)
	assert.Equal(t, "x", orig)
	got, _ := updated.GetText(1)
	assert.Equal(t, "y", got)
}
