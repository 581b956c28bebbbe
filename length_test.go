package nist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTextLEN_matchesSerializedLength(t *testing.T) {
	r := NewRecord(2, "", map[int]Field{
		FieldIDC: NewTextField("0", CharsetCP1256),
		3:        NewTextField("hello", CharsetCP1256),
	})

	l, err := computeTextLEN(r, CharsetCP1256)
	require.NoError(t, err)

	updated, err := withRecomputedLEN(r, CharsetCP1256)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, writeTextRecord(&buf, updated, CharsetCP1256))
	assert.EqualValues(t, buf.Len(), l)
}

func TestComputeBinaryLEN_fixedPlusData(t *testing.T) {
	r := NewRecord(4, "", map[int]Field{
		FieldData: NewImageField([]byte{1, 2, 3, 4, 5}),
	})

	l, err := computeBinaryLEN(r)

	require.NoError(t, err)
	assert.EqualValues(t, 18+5, l)
}

func TestComputeLEN_dispatchesByFraming(t *testing.T) {
	text := NewRecord(2, "", map[int]Field{3: NewTextField("x", CharsetCP1256)})
	bin := NewRecord(4, "", map[int]Field{FieldData: NewImageField([]byte{1})})

	textLen, err := computeLEN(text, CharsetCP1256)
	require.NoError(t, err)
	binLen, err := computeLEN(bin, CharsetCP1256)
	require.NoError(t, err)

	assert.Greater(t, textLen, uint32(0))
	assert.EqualValues(t, 18+1, binLen)
}

func TestWithRecomputedLEN_setsFieldOne(t *testing.T) {
	r := NewRecord(2, "", map[int]Field{3: NewTextField("x", CharsetCP1256)})

	updated, err := withRecomputedLEN(r, CharsetCP1256)

	require.NoError(t, err)
	s, err := updated.GetText(FieldLEN)
	require.NoError(t, err)
	assert.NotEqual(t, "", s)
}

func TestComputeCNT_ordersAndFormatsRows(t *testing.T) {
	nonType1 := []Record{
		NewRecord(2, "", map[int]Field{FieldIDC: NewTextField("1", CharsetCP1256)}),
		NewRecord(10, "", map[int]Field{FieldIDC: NewTextField("1", CharsetCP1256)}),
	}

	cnt := computeCNT(nonType1)

	want := "1" + string(US) + "2" + string(RS) + "2" + string(US) + "1" + string(RS) + "10" + string(US) + "1"
	assert.Equal(t, want, cnt)
}

func TestComputeCNT_empty(t *testing.T) {
	cnt := computeCNT(nil)

	assert.Equal(t, "1"+string(US)+"0", cnt)
}
