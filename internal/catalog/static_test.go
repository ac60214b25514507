package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_PreservesOrder(t *testing.T) {
	tutors := All()

	require.Len(t, tutors, 3)
	assert.Equal(t, "Sarah Johnson", tutors[0].Name)
	assert.Equal(t, "Mike Chen", tutors[1].Name)
	assert.Equal(t, "Emma Wilson", tutors[2].Name)
}

func TestGetByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		found    bool
		wantName string
	}{
		{name: "existing id", id: "1", found: true, wantName: "Sarah Johnson"},
		{name: "another existing id", id: "3", found: true, wantName: "Emma Wilson"},
		{name: "absent id", id: "999", found: false},
		{name: "empty id", id: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tutor, ok := GetByID(tt.id)

			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantName, tutor.Name)
				assert.Equal(t, tt.id, tutor.ID)
			}
		})
	}
}

func TestBySubject(t *testing.T) {
	t.Run("sentinel returns everything", func(t *testing.T) {
		assert.Len(t, BySubject(SubjectAll), 3)
	})

	t.Run("exact subject match", func(t *testing.T) {
		tutors := BySubject("Mathematics")
		require.Len(t, tutors, 1)
		assert.Equal(t, "Sarah Johnson", tutors[0].Name)
	})

	t.Run("unknown subject is empty", func(t *testing.T) {
		assert.Empty(t, BySubject("Alchemy"))
	})

	t.Run("subject match is case sensitive", func(t *testing.T) {
		assert.Empty(t, BySubject("mathematics"))
	})
}
