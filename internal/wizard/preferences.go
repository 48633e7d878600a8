package wizard

import (
	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/models"
	"admission-client/internal/store"
)

// MaxPreferences caps the ordered school/combination choice list.
const MaxPreferences = 50

// PreferenceList mutates the cached preference list. Preference numbers are
// 1-based and contiguous; every mutation renumbers so no gaps survive.
type PreferenceList struct {
	cell *store.ApplicationCell
}

func NewPreferenceList(cell *store.ApplicationCell) *PreferenceList {
	return &PreferenceList{cell: cell}
}

// All returns the current ordered list.
func (p *PreferenceList) All() []models.Preference {
	app := p.cell.Get()
	if app == nil {
		return nil
	}
	out := make([]models.Preference, len(app.Preferences))
	copy(out, app.Preferences)
	return out
}

// Add appends a choice at the end of the list.
func (p *PreferenceList) Add(schoolCode, combinationCode string) error {
	prefs := p.All()
	if len(prefs) >= MaxPreferences {
		return apperrors.NewPreferenceLimitError("You can add at most 50 preferences")
	}
	for _, pref := range prefs {
		if pref.SchoolCode == schoolCode && pref.CombinationCode == combinationCode {
			return apperrors.NewPreferenceLimitError("This school and combination is already in your list")
		}
	}
	prefs = append(prefs, models.Preference{
		SchoolCode:      schoolCode,
		CombinationCode: combinationCode,
	})
	p.store(prefs)
	return nil
}

// Remove drops the choice at the given preference number and closes the gap.
func (p *PreferenceList) Remove(preferenceNumber int) error {
	prefs := p.All()
	kept := prefs[:0]
	found := false
	for _, pref := range prefs {
		if pref.PreferenceNumber == preferenceNumber {
			found = true
			continue
		}
		kept = append(kept, pref)
	}
	if !found {
		return apperrors.NewPreferenceLimitError("No preference at that position")
	}
	p.store(kept)
	return nil
}

// Move shifts a choice to a new 1-based position, renumbering the rest.
func (p *PreferenceList) Move(preferenceNumber, newPosition int) error {
	prefs := p.All()
	if newPosition < 1 || newPosition > len(prefs) {
		return apperrors.NewPreferenceLimitError("No preference at that position")
	}
	from := -1
	for i, pref := range prefs {
		if pref.PreferenceNumber == preferenceNumber {
			from = i
			break
		}
	}
	if from == -1 {
		return apperrors.NewPreferenceLimitError("No preference at that position")
	}
	moved := prefs[from]
	prefs = append(prefs[:from], prefs[from+1:]...)
	to := newPosition - 1
	prefs = append(prefs[:to], append([]models.Preference{moved}, prefs[to:]...)...)
	p.store(prefs)
	return nil
}

// store renumbers contiguously from 1 and writes back to the cell.
func (p *PreferenceList) store(prefs []models.Preference) {
	for i := range prefs {
		prefs[i].PreferenceNumber = i + 1
	}
	p.cell.SetPreferences(prefs)
}
