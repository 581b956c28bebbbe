package nist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_TypeTags_ascending(t *testing.T) {
	f := NewFile(map[int][]Record{
		10: {NewRecord(10, "", map[int]Field{})},
		1:  {NewRecord(1, "", map[int]Field{})},
		2:  {NewRecord(2, "", map[int]Field{})},
	})

	assert.Equal(t, []int{1, 2, 10}, f.TypeTags())
}

func TestFile_RecordsOf_unknownType(t *testing.T) {
	f := NewFile(map[int][]Record{})

	_, err := f.RecordsOf(999)

	assert.ErrorIs(t, err, ErrUnknownRecordType)
}

func TestFile_RecordOf_byIDC(t *testing.T) {
	f := NewFile(map[int][]Record{
		2: {
			NewRecord(2, "", map[int]Field{FieldIDC: NewTextField("0", CharsetCP1256)}),
			NewRecord(2, "", map[int]Field{FieldIDC: NewTextField("1", CharsetCP1256)}),
		},
	})

	r, err := f.RecordOf(2, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, r.IDC())
}

func TestFile_TransactionInformation_requiresExactlyOne(t *testing.T) {
	f := NewFile(map[int][]Record{})

	_, err := f.TransactionInformation()

	assert.ErrorIs(t, err, ErrBuildInvariantViolation)
}

func TestFile_orderedNonType1_excludesType1(t *testing.T) {
	f := NewFile(map[int][]Record{
		1: {NewRecord(1, "", map[int]Field{})},
		2: {
			NewRecord(2, "", map[int]Field{FieldIDC: NewTextField("0", CharsetCP1256)}),
			NewRecord(2, "", map[int]Field{FieldIDC: NewTextField("1", CharsetCP1256)}),
		},
		10: {NewRecord(10, "", map[int]Field{FieldIDC: NewTextField("0", CharsetCP1256)})},
	})

	ordered := f.orderedNonType1()

	require.Len(t, ordered, 3)
	assert.Equal(t, 2, ordered[0].Type())
	assert.Equal(t, 2, ordered[1].Type())
	assert.Equal(t, 10, ordered[2].Type())
}

func TestFile_Equal(t *testing.T) {
	a := NewFile(map[int][]Record{1: {NewRecord(1, "", map[int]Field{FieldIDC: NewTextField("0", CharsetCP1256)})}})
	b := NewFile(map[int][]Record{1: {NewRecord(1, "", map[int]Field{FieldIDC: NewTextField("0", CharsetCP1256)})}})
	c := NewFile(map[int][]Record{1: {NewRecord(1, "", map[int]Field{FieldIDC: NewTextField("1", CharsetCP1256)})}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFile_Summary_onePerRecordInSerializationOrder(t *testing.T) {
	t1, err := NewType1Builder().WithDomainOfUse("0030").WithIDC(0).Build()
	require.NoError(t, err)
	t2, err := NewRecordBuilder(2).WithIDC(1).WithCharset(CharsetUTF8).WithText(3, "x").Build()
	require.NoError(t, err)

	file, err := NewFileBuilder().AddRecord(t1).AddRecord(t2).Build()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(file.Summary(), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "type=1  ")
	assert.Contains(t, lines[1], "type=2  ")
	assert.Contains(t, lines[1], "idc=1  ")
}
