package nist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_requiresType1(t *testing.T) {
	file := NewFile(map[int][]Record{})

	err := Write(&bytes.Buffer{}, file)

	assert.ErrorIs(t, err, ErrBuildInvariantViolation)
}

func TestWrite_ordersRecordsByAscendingType(t *testing.T) {
	t1 := NewType1Builder().WithDomainOfUse("0030").WithIDC(0)
	t1Rec, err := t1.Build()
	require.NoError(t, err)

	t10 := NewRecordBuilder(10).WithIDC(1).WithCharset(CharsetUTF8).WithText(3, "x")
	t10Rec, err := t10.Build()
	require.NoError(t, err)

	t2 := NewRecordBuilder(2).WithIDC(1).WithCharset(CharsetUTF8).WithText(3, "y")
	t2Rec, err := t2.Build()
	require.NoError(t, err)

	fb := NewFileBuilder().AddRecord(t1Rec).AddRecord(t10Rec).AddRecord(t2Rec)
	file, err := fb.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, file))

	out := buf.Bytes()
	i1 := bytes.Index(out, []byte("1.003:"))
	i2 := bytes.Index(out, []byte("2.003:"))
	i10 := bytes.Index(out, []byte("10.003:"))
	require.True(t, i1 >= 0 && i2 >= 0 && i10 >= 0)
	assert.True(t, i1 < i2 && i2 < i10, "records not serialized in ascending type order")
}

func TestWrite_binaryRecordDispatch(t *testing.T) {
	t1 := NewType1Builder().WithDomainOfUse("").WithIDC(0)
	t1Rec, err := t1.Build()
	require.NoError(t, err)

	t4 := NewRecordBuilder(4).
		WithIDC(1).
		WithInt(FieldIMP, 0).
		WithInt(FieldISR, 1).
		WithImage(FieldFGP, []byte{1, 2, 3, 4, 5, 6}).
		WithInt(FieldHLL, 500).
		WithInt(FieldVLL, 500).
		WithInt(FieldGCA, 1).
		WithImage(FieldData, []byte{0x11, 0x22})
	t4Rec, err := t4.Build()
	require.NoError(t, err)

	fb := NewFileBuilder().AddRecord(t1Rec).AddRecord(t4Rec)
	file, err := fb.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, file))

	got, err := Decode(buf.Bytes())
	require.NoError(t, err)

	rec, err := got.RecordOf(4, 1)
	require.NoError(t, err)
	hll, err := rec.GetInt(FieldHLL)
	require.NoError(t, err)
	assert.EqualValues(t, 500, hll)
}
