package checkin

import (
	"testing"

	"Backend-PlanujSmeny/src/models"
	"Backend-PlanujSmeny/src/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = models.User{Username: "admin", Role: models.UserRoleAdmin}

func TestPopupMessages(t *testing.T) {
	locations := catalog.DefaultLocations()

	t.Run("closed", func(t *testing.T) {
		m := NewMachine(nil)
		assert.Nil(t, Popup(locations, m.State()))
	})

	t.Run("confirm first selection", func(t *testing.T) {
		m := NewMachine(nil)
		m.SelectLocation(karlin)

		p := Popup(locations, m.State())
		require.NotNil(t, p)
		assert.Equal(t, models.PopupConfirm, p.Kind)
		assert.Equal(t, "Confirm Location Shift as", p.Title)
		assert.Equal(t, "San Carlo - Karlín", p.Location.Name)
	})

	t.Run("change location", func(t *testing.T) {
		m := NewMachine(nil)
		selectAndConfirm(t, m, karlin)
		m.SelectLocation(letna)

		p := Popup(locations, m.State())
		require.NotNil(t, p)
		assert.Equal(t, models.PopupChange, p.Kind)
		assert.Equal(t, "Change Your Location Shift to", p.Title)
		assert.Equal(t, letna, p.Location.ID)
	})

	t.Run("already here while running", func(t *testing.T) {
		m := NewMachine(newFakeClock(startAt).Now)
		selectAndConfirm(t, m, karlin)
		require.NoError(t, m.StartShift())
		m.SelectLocation(karlin)

		p := Popup(locations, m.State())
		require.NotNil(t, p)
		assert.Equal(t, models.PopupAlreadyHere, p.Kind)
	})

	t.Run("unknown pending id", func(t *testing.T) {
		m := NewMachine(nil)
		m.SelectLocation("somewhere-else")

		p := Popup(locations, m.State())
		require.NotNil(t, p)
		assert.Equal(t, "unknown location", p.Location.Name)
	})
}

func TestStatusMessage(t *testing.T) {
	locations := catalog.DefaultLocations()
	m := NewMachine(newFakeClock(startAt, endAt).Now)

	assert.Equal(t, "You have not started your shift yet.", StatusMessage(locations, m.State(), prague))

	selectAndConfirm(t, m, karlin)
	require.NoError(t, m.StartShift())
	assert.Equal(t, "Shift running at San Carlo - Karlín. Started at 11:01.", StatusMessage(locations, m.State(), prague))

	require.NoError(t, m.EndShift())
	assert.Equal(t, "Shift finished at San Carlo - Karlín. Started at 11:01, ended at 22:45.", StatusMessage(locations, m.State(), prague))

	status := Status(locations, m.State(), prague)
	assert.True(t, status.IsShiftFinished)
	assert.False(t, status.CanStart)
	assert.False(t, status.CanEnd)
}

func TestPickerMarksSelection(t *testing.T) {
	locations := catalog.DefaultLocations()
	m := NewMachine(nil)
	selectAndConfirm(t, m, letna)

	buttons := Picker(locations, m.State())
	require.Len(t, buttons, len(locations))
	for _, b := range buttons {
		assert.Equal(t, b.ID == letna, b.Selected, b.ID)
	}
}

func TestRosterHighlightsUserRow(t *testing.T) {
	locations := catalog.DefaultLocations()

	t.Run("no selection shows no user row", func(t *testing.T) {
		rosters := Roster(locations, NewMachine(nil).State(), &admin, prague)
		for _, r := range rosters {
			assert.Len(t, r.Rows, 7)
			assert.False(t, r.Rows[0].IsUser)
		}
	})

	t.Run("selected location carries the user row", func(t *testing.T) {
		m := NewMachine(nil)
		selectAndConfirm(t, m, karlin)

		rosters := Roster(locations, m.State(), &admin, prague)
		for _, r := range rosters {
			if r.ID != karlin {
				assert.False(t, r.Rows[0].IsUser, r.ID)
				continue
			}
			require.Len(t, r.Rows, 8)
			row := r.Rows[0]
			assert.True(t, row.IsUser)
			assert.Equal(t, "admin", row.Name)
			assert.Equal(t, "--:--", row.In)
			assert.Equal(t, "--:--", row.Out)
			assert.Equal(t, models.RoleAdmin.BadgeClass(), row.BadgeClass)
		}
	})

	t.Run("running shift shows Ongoing", func(t *testing.T) {
		m := NewMachine(newFakeClock(startAt, endAt).Now)
		selectAndConfirm(t, m, karlin)
		require.NoError(t, m.StartShift())

		row := findRoster(t, Roster(locations, m.State(), &admin, prague), karlin).Rows[0]
		assert.Equal(t, "11:01", row.In)
		assert.Equal(t, "Ongoing", row.Out)

		require.NoError(t, m.EndShift())
		row = findRoster(t, Roster(locations, m.State(), &admin, prague), karlin).Rows[0]
		assert.True(t, row.IsUser)
		assert.Equal(t, "22:45", row.Out)
	})

	t.Run("roster rows", func(t *testing.T) {
		rows := findRoster(t, Roster(locations, NewMachine(nil).State(), nil, prague), karlin).Rows
		assert.Equal(t, "Ongoing", rows[0].Out)
		assert.Equal(t, "18:00", rows[1].Out)
		assert.True(t, rows[3].Unassigned)
		assert.Empty(t, rows[3].In)
	})
}

func TestDashboardView(t *testing.T) {
	locations := catalog.DefaultLocations()
	m := NewMachine(nil)
	m.SelectLocation(karlin)

	view := Dashboard(locations, m.State(), models.User{Username: "Ahmed Taha", Role: models.UserRoleSupervisor}, prague)
	assert.Equal(t, "AT", view.Initials)
	assert.NotNil(t, view.Popup)
	assert.Len(t, view.Picker, 6)
	assert.Len(t, view.Rosters, 6)
	assert.False(t, view.Status.CanStart)
}

func findRoster(t *testing.T, rosters []models.RosterView, id string) models.RosterView {
	t.Helper()
	for _, r := range rosters {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("roster %s not found", id)
	return models.RosterView{}
}
