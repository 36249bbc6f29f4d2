package domain

// Admin is a moderator account. Passwords are stored and compared as-is,
// matching the seeded tbl_admin rows.
type Admin struct {
	ID       string `json:"admin_id"`
	Password string `json:"-"`
}

// RoleAdmin is the role claim carried by moderator tokens.
const RoleAdmin = "ADMIN"

// AdminSubjectID is the fixed uid claim for moderator tokens.
const AdminSubjectID int64 = 0
