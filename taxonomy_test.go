package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupType_unknown(t *testing.T) {
	_, err := LookupType(42)

	assert.ErrorIs(t, err, ErrUnknownRecordType)
}

func TestIsTextFraming_and_IsBinaryFraming(t *testing.T) {
	assert.True(t, IsTextFraming(1))
	assert.True(t, IsTextFraming(17))
	assert.False(t, IsTextFraming(4))

	assert.True(t, IsBinaryFraming(4))
	assert.True(t, IsBinaryFraming(8))
	assert.False(t, IsBinaryFraming(1))
}

func TestIsAllowedUnderRevision_deprecatedType(t *testing.T) {
	assert.True(t, IsAllowedUnderRevision(3, Revision2000))
	assert.False(t, IsAllowedUnderRevision(3, Revision2011))
	assert.False(t, IsAllowedUnderRevision(3, Revision2013))
}

func TestIsAllowedUnderRevision_introducedLater(t *testing.T) {
	assert.False(t, IsAllowedUnderRevision(17, Revision2007))
	assert.True(t, IsAllowedUnderRevision(17, Revision2011))
}

func TestIsFieldAllowed_universalFields(t *testing.T) {
	assert.True(t, isFieldAllowed(9999, FieldLEN))
	assert.True(t, isFieldAllowed(9999, FieldIDC))
	assert.False(t, isFieldAllowed(9999, 5))
}

func TestIsFieldAllowed_perType(t *testing.T) {
	assert.True(t, isFieldAllowed(8, FieldSRT))
	assert.False(t, isFieldAllowed(8, FieldFGP))
	assert.True(t, isFieldAllowed(4, FieldFGP))
	assert.False(t, isFieldAllowed(4, FieldSRT))
}

func TestDataFieldID(t *testing.T) {
	id, ok := dataFieldID(10)
	require.True(t, ok)
	assert.Equal(t, 20, id)

	id, ok = dataFieldID(14)
	require.True(t, ok)
	assert.Equal(t, 11, id)

	_, ok = dataFieldID(2)
	assert.False(t, ok)
}

func TestTaxonomy_covers1through17Only(t *testing.T) {
	for tpe := 1; tpe <= 17; tpe++ {
		_, err := LookupType(tpe)
		assert.NoError(t, err, "type %d should be present", tpe)
	}
	for _, tpe := range []int{0, 18, 19, 20, 21, 22, 98, 99} {
		_, err := LookupType(tpe)
		assert.Error(t, err, "type %d should not be present", tpe)
	}
}
