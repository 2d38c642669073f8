package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectDependentsSpouse(t *testing.T) {
	f := Fields{
		"spouse_last_name":  "Dela Cruz",
		"spouse_first_name": "Maria",
		"spouse_birth":      "1992-01-02",
	}
	rows := CollectDependents(f)
	require.Len(t, rows, 1)
	assert.Equal(t, KindSpouse, rows[0].Kind)
	assert.Equal(t, "Maria", rows[0].FirstName)
	assert.Equal(t, "1992-01-02", rows[0].DateOfBirth)
}

func TestCollectDependentsSkipsBlankRows(t *testing.T) {
	f := Fields{
		"spouse_last_name":   "",
		"spouse_first_name":  "",
		"child_1_last_name":  "",
		"child_1_first_name": "",
		"child_1_birth":      "",
	}
	assert.Empty(t, CollectDependents(f))
}

func TestCollectDependentsGapInIndices(t *testing.T) {
	// Row 1 was cleared client-side, row 2 survives.
	f := Fields{
		"child_1_last_name":  "",
		"child_1_first_name": "",
		"child_2_last_name":  "Dela Cruz",
		"child_2_first_name": "Ana",
		"child_2_birth":      "2015-03-03",
	}
	rows := CollectDependents(f)
	require.Len(t, rows, 1)
	assert.Equal(t, KindChild, rows[0].Kind)
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "Ana", rows[0].FirstName)
}

func TestCollectDependentsOrderAndKinds(t *testing.T) {
	f := Fields{
		"spouse_last_name":       "Dela Cruz",
		"child_10_last_name":     "Dela Cruz",
		"child_10_first_name":    "Ben",
		"child_2_last_name":      "Dela Cruz",
		"child_2_first_name":     "Ana",
		"other_1_last_name":      "Santos",
		"other_1_first_name":     "Lola",
		"other_1_relationship":   "grandmother",
		"other_1_birth":          "1950-07-07",
	}
	rows := CollectDependents(f)
	require.Len(t, rows, 4)
	assert.Equal(t, KindSpouse, rows[0].Kind)
	// numeric index order, not string order
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, 10, rows[2].Index)
	assert.Equal(t, KindOther, rows[3].Kind)
	assert.Equal(t, "grandmother", rows[3].Relationship)
}

func TestCollectDependentsRelationshipOnlyForOthers(t *testing.T) {
	f := Fields{
		"child_1_last_name":    "Dela Cruz",
		"child_1_relationship": "should be ignored",
	}
	rows := CollectDependents(f)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Relationship)
}

func TestCollectDependentsPartialRowKept(t *testing.T) {
	// A row with only a birth date still counts as present.
	f := Fields{
		"other_3_last_name": "",
		"other_3_birth":     "2001-01-01",
	}
	rows := CollectDependents(f)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].LastName)
	assert.Equal(t, "2001-01-01", rows[0].DateOfBirth)
}
