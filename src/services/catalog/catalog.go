package catalog

import (
	"Backend-PlanujSmeny/src/models"
	"context"
	"errors"
)

var ErrLocationNotFound = errors.New("location not found")

// Source ให้ข้อมูลสาขาและรายชื่อกะ
type Source interface {
	Locations(ctx context.Context) ([]models.Location, error)
	Location(ctx context.Context, id string) (models.Location, error)
}

// StaticSource serves the built-in catalog from memory.
type StaticSource struct {
	locations []models.Location
}

func NewStaticSource(locations []models.Location) *StaticSource {
	return &StaticSource{locations: locations}
}

// Default returns the built-in San Carlo catalog.
func Default() *StaticSource {
	return NewStaticSource(DefaultLocations())
}

func (s *StaticSource) Locations(_ context.Context) ([]models.Location, error) {
	out := make([]models.Location, len(s.locations))
	copy(out, s.locations)
	return out, nil
}

func (s *StaticSource) Location(_ context.Context, id string) (models.Location, error) {
	for _, l := range s.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Location{}, ErrLocationNotFound
}

// NameOf looks a location name up in an already loaded list.
func NameOf(locations []models.Location, id *string) (string, bool) {
	if id == nil {
		return "", false
	}
	for _, l := range locations {
		if l.ID == *id {
			return l.Name, true
		}
	}
	return "", false
}

// DefaultLocations - สาขาทั้งหมด แต่ละสาขาใช้ตารางกะชุดเดียวกัน
func DefaultLocations() []models.Location {
	branches := []struct{ id, name string }{
		{"san-carlo-dittrichova", "San Carlo - Dittrichova"},
		{"san-carlo-mala-strana", "San Carlo - Malá Strana"},
		{"san-carlo-vinohrady", "San Carlo - Vinohrady"},
		{"san-carlo-karlin", "San Carlo - Karlín"},
		{"san-carlo-letna", "San Carlo - Letna"},
		{"san-carlo-holesovice", "San Carlo - Holešovice"},
	}

	locations := make([]models.Location, 0, len(branches))
	for _, b := range branches {
		locations = append(locations, models.Location{
			ID:     b.id,
			Name:   b.name,
			Shifts: defaultShifts(),
		})
	}
	return locations
}

func defaultShifts() []models.Shift {
	return []models.Shift{
		{ID: 1, Name: "Ahmed Taha", Role: models.RoleManager, Start: hhmm("08:00")},
		{ID: 2, Name: "Elizabeth Dron", Role: models.RoleSupervisor, Start: hhmm("09:00"), End: hhmm("18:00")},
		{ID: 3, Name: "Petr Hamhalter", Role: models.RoleSupervisor, Start: hhmm("10:30"), End: hhmm("22:00")},
		{ID: 4, Name: "Luca Lucio", Role: models.RoleManager},
		{ID: 5, Name: "Anna Arestova", Role: models.RoleSupervisor, Start: hhmm("07:00"), End: hhmm("15:00")},
		{ID: 6, Name: "Alina Melnikova", Role: models.RoleWaitress, Start: hhmm("14:00"), End: hhmm("23:30")},
		{ID: 7, Name: "Mehded Taha", Role: models.RoleWaiter, Start: hhmm("08:00")},
	}
}

func hhmm(s string) *string {
	return &s
}
