package wizard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/models"
	"admission-client/internal/store"
)

func newPreferenceList(t *testing.T) (*PreferenceList, *store.ApplicationCell) {
	t.Helper()
	cell := store.NewApplicationCell()
	cell.Set(&models.Application{ID: "app-1"})
	return NewPreferenceList(cell), cell
}

func numbers(prefs []models.Preference) []int {
	out := make([]int, len(prefs))
	for i, p := range prefs {
		out[i] = p.PreferenceNumber
	}
	return out
}

func TestPreferenceAddNumbersSequentially(t *testing.T) {
	list, _ := newPreferenceList(t)

	require.NoError(t, list.Add("S001", "C01"))
	require.NoError(t, list.Add("S002", "C01"))
	require.NoError(t, list.Add("S001", "C02"))

	prefs := list.All()
	assert.Equal(t, []int{1, 2, 3}, numbers(prefs))
	assert.Equal(t, "S002", prefs[1].SchoolCode)
}

func TestPreferenceAddRejectsDuplicate(t *testing.T) {
	list, _ := newPreferenceList(t)
	require.NoError(t, list.Add("S001", "C01"))

	err := list.Add("S001", "C01")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePreferenceLimit, apperrors.AsAppError(err).Code)
	assert.Len(t, list.All(), 1)
}

func TestPreferenceAddEnforcesCap(t *testing.T) {
	list, _ := newPreferenceList(t)
	for i := 0; i < MaxPreferences; i++ {
		require.NoError(t, list.Add(fmt.Sprintf("S%03d", i), "C01"))
	}

	err := list.Add("S999", "C01")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePreferenceLimit, apperrors.AsAppError(err).Code)
	assert.Len(t, list.All(), MaxPreferences)
}

func TestPreferenceRemoveRenumbersContiguously(t *testing.T) {
	list, _ := newPreferenceList(t)
	require.NoError(t, list.Add("S001", "C01"))
	require.NoError(t, list.Add("S002", "C01"))
	require.NoError(t, list.Add("S003", "C01"))

	require.NoError(t, list.Remove(2))

	prefs := list.All()
	require.Len(t, prefs, 2)
	assert.Equal(t, []int{1, 2}, numbers(prefs), "no gap survives a removal")
	assert.Equal(t, "S001", prefs[0].SchoolCode)
	assert.Equal(t, "S003", prefs[1].SchoolCode)
}

func TestPreferenceRemoveUnknownPosition(t *testing.T) {
	list, _ := newPreferenceList(t)
	require.NoError(t, list.Add("S001", "C01"))

	err := list.Remove(7)
	require.Error(t, err)
	assert.Len(t, list.All(), 1)
}

func TestPreferenceMove(t *testing.T) {
	list, _ := newPreferenceList(t)
	require.NoError(t, list.Add("S001", "C01"))
	require.NoError(t, list.Add("S002", "C01"))
	require.NoError(t, list.Add("S003", "C01"))

	require.NoError(t, list.Move(3, 1))

	prefs := list.All()
	assert.Equal(t, []int{1, 2, 3}, numbers(prefs))
	assert.Equal(t, "S003", prefs[0].SchoolCode)
	assert.Equal(t, "S001", prefs[1].SchoolCode)
	assert.Equal(t, "S002", prefs[2].SchoolCode)
}

func TestPreferenceListWithoutApplication(t *testing.T) {
	cell := store.NewApplicationCell()
	list := NewPreferenceList(cell)

	assert.Empty(t, list.All())
	err := list.Remove(1)
	require.Error(t, err)

	// First-run add seeds a draft in the cell instead of vanishing.
	require.NoError(t, list.Add("S001", "C01"))
	require.Len(t, list.All(), 1)
	assert.Equal(t, "S001", list.All()[0].SchoolCode)
}
