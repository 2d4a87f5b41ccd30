package models

// PickerButton ปุ่มเลือกสาขา
type PickerButton struct {
	LocationSummary
	Selected bool `json:"selected"`
}

// PopupKind distinguishes the three confirmation messages.
type PopupKind string

const (
	PopupConfirm     PopupKind = "confirm"
	PopupChange      PopupKind = "change"
	PopupAlreadyHere PopupKind = "already-here"
)

// PopupView หน้าต่างยืนยันการเลือกสาขา
type PopupView struct {
	Kind     PopupKind       `json:"kind"`
	Title    string          `json:"title"`
	Location LocationSummary `json:"location"`
}

// ShiftRow is one rendered line of a roster.
type ShiftRow struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	BadgeClass string `json:"badgeClass"`
	In         string `json:"in"`
	Out        string `json:"out"`
	Unassigned bool   `json:"unassigned"`
	IsUser     bool   `json:"isUser"`
}

// RosterView รายชื่อกะของสาขาหนึ่ง
type RosterView struct {
	LocationSummary
	Rows []ShiftRow `json:"rows"`
}

// DashboardView รวมข้อมูลทั้งหมดที่หน้า dashboard ต้องใช้
type DashboardView struct {
	User     User           `json:"user"`
	Initials string         `json:"initials"`
	Status   CheckInStatus  `json:"status"`
	Picker   []PickerButton `json:"picker"`
	Popup    *PopupView     `json:"popup"`
	Rosters  []RosterView   `json:"rosters"`
}
