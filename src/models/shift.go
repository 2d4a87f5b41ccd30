package models

// Role ตำแหน่งของพนักงานในกะ
type Role string

const (
	RoleManager    Role = "Manager"
	RoleSupervisor Role = "Supervisor"
	RoleWaiter     Role = "Waiter"
	RoleWaitress   Role = "Waitress"
	RoleAdmin      Role = "Admin"
)

// BadgeClass returns the badge colour classes shown next to an employee's name.
func (r Role) BadgeClass() string {
	switch r {
	case RoleManager:
		return "bg-purple-600 text-white"
	case RoleSupervisor:
		return "bg-emerald-500 text-white"
	case RoleWaiter, RoleWaitress:
		return "bg-lime-400 text-black"
	default:
		return "bg-red-100 text-red-700"
	}
}

// Shift กะการทำงานของพนักงานหนึ่งคนในสาขาหนึ่ง
type Shift struct {
	ID    int     `json:"id" bson:"id" example:"1"`
	Name  string  `json:"name" bson:"name" example:"Ahmed Taha"`
	Role  Role    `json:"role" bson:"role" example:"Manager" enums:"Manager,Supervisor,Waiter,Waitress"`
	Start *string `json:"start" bson:"start" example:"08:00"` // nil = ยังไม่ได้กำหนด
	End   *string `json:"end" bson:"end" example:"16:00"`
}

// IsUnassigned reports whether the shift has no start time yet.
func (s Shift) IsUnassigned() bool {
	return s.Start == nil
}
