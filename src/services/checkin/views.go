package checkin

import (
	"Backend-PlanujSmeny/src/models"
	"Backend-PlanujSmeny/src/services/catalog"
	"fmt"
	"time"
)

const (
	clockLayout     = "15:04"
	unknownLocation = "unknown location"
	noTime          = "--:--"
	ongoing         = "Ongoing"
)

// Picker renders the location buttons.
func Picker(locations []models.Location, s models.CheckInState) []models.PickerButton {
	buttons := make([]models.PickerButton, 0, len(locations))
	for _, l := range locations {
		buttons = append(buttons, models.PickerButton{
			LocationSummary: l.Summary(),
			Selected:        equalID(s.SelectedLocationID, l.ID),
		})
	}
	return buttons
}

// Popup renders the confirmation dialog, or nil when it is closed.
func Popup(locations []models.Location, s models.CheckInState) *models.PopupView {
	if !s.IsPopupOpen || s.PendingLocationID == nil {
		return nil
	}

	pending := *s.PendingLocationID
	name, ok := catalog.NameOf(locations, s.PendingLocationID)
	if !ok {
		name = unknownLocation
	}

	view := &models.PopupView{
		Location: models.LocationSummary{ID: pending, Name: name},
	}
	switch {
	case equalID(s.SelectedLocationID, pending):
		view.Kind = models.PopupAlreadyHere
		view.Title = "You are already at"
	case s.SelectedLocationID != nil:
		view.Kind = models.PopupChange
		view.Title = "Change Your Location Shift to"
	default:
		view.Kind = models.PopupConfirm
		view.Title = "Confirm Location Shift as"
	}
	return view
}

// StatusMessage describes the user's shift in one sentence.
func StatusMessage(locations []models.Location, s models.CheckInState, loc *time.Location) string {
	if s.StartedAt == nil {
		return "You have not started your shift yet."
	}

	name, ok := catalog.NameOf(locations, s.ShiftLocationID)
	if !ok {
		name = unknownLocation
	}
	started := formatClock(s.StartedAt, loc)
	if s.EndedAt != nil {
		return fmt.Sprintf("Shift finished at %s. Started at %s, ended at %s.", name, started, formatClock(s.EndedAt, loc))
	}
	return fmt.Sprintf("Shift running at %s. Started at %s.", name, started)
}

// Status bundles the state with its derived flags for API responses.
func Status(locations []models.Location, s models.CheckInState, loc *time.Location) models.CheckInStatus {
	return models.CheckInStatus{
		CheckInState:    s,
		IsShiftRunning:  s.IsShiftRunning(),
		IsShiftFinished: s.IsShiftFinished(),
		CanStart:        canStart(s),
		CanEnd:          s.IsShiftRunning(),
		Message:         StatusMessage(locations, s, loc),
	}
}

// TiedLocationID is the location whose roster shows the user's own row.
func TiedLocationID(s models.CheckInState) *string {
	if s.SelectedLocationID != nil {
		return s.SelectedLocationID
	}
	if s.StartedAt != nil {
		return s.ShiftLocationID
	}
	return nil
}

// Roster renders every location's shift list; the user's own row comes first
// on the location their shift is tied to.
func Roster(locations []models.Location, s models.CheckInState, user *models.User, loc *time.Location) []models.RosterView {
	tied := TiedLocationID(s)

	rosters := make([]models.RosterView, 0, len(locations))
	for _, l := range locations {
		rows := make([]models.ShiftRow, 0, len(l.Shifts)+1)
		if user != nil && equalID(tied, l.ID) {
			rows = append(rows, userRow(*user, s, loc))
		}
		for _, sh := range l.Shifts {
			rows = append(rows, shiftRow(sh))
		}
		rosters = append(rosters, models.RosterView{LocationSummary: l.Summary(), Rows: rows})
	}
	return rosters
}

// Dashboard assembles everything the dashboard page needs.
func Dashboard(locations []models.Location, s models.CheckInState, user models.User, loc *time.Location) models.DashboardView {
	return models.DashboardView{
		User:     user,
		Initials: models.Initials(user.Username),
		Status:   Status(locations, s, loc),
		Picker:   Picker(locations, s),
		Popup:    Popup(locations, s),
		Rosters:  Roster(locations, s, &user, loc),
	}
}

func userRow(user models.User, s models.CheckInState, loc *time.Location) models.ShiftRow {
	role := models.Role(user.Role)
	row := models.ShiftRow{
		Name:       user.Username,
		Role:       role,
		BadgeClass: role.BadgeClass(),
		In:         noTime,
		Out:        noTime,
		IsUser:     true,
	}
	if s.StartedAt != nil {
		row.In = formatClock(s.StartedAt, loc)
		row.Out = ongoing
	}
	if s.EndedAt != nil {
		row.Out = formatClock(s.EndedAt, loc)
	}
	return row
}

func shiftRow(sh models.Shift) models.ShiftRow {
	row := models.ShiftRow{
		ID:         sh.ID,
		Name:       sh.Name,
		Role:       sh.Role,
		BadgeClass: sh.Role.BadgeClass(),
		Unassigned: sh.IsUnassigned(),
	}
	if sh.Start != nil {
		row.In = *sh.Start
		row.Out = ongoing
	}
	if sh.End != nil && *sh.End != "" {
		row.Out = *sh.End
	}
	return row
}

func formatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return noTime
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(clockLayout)
}
