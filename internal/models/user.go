package models

// Role identifies what a signed-in account is allowed to do
type Role string

const (
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
)

// IsValid reports whether the role is one of the three known values
func (r Role) IsValid() bool {
	return r == RoleTeacher || r == RoleStudent || r == RoleParent
}

// DefaultPassword is the shared fallback password assigned to accounts
// created without an explicit one. Stored empty means this value.
const DefaultPassword = "P"

// User represents an account in the system.
// ClassDay is only meaningful for students; ChildrenIDs only for parents.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Password    string   `json:"password,omitempty"`
	Name        string   `json:"name"`
	Role        Role     `json:"role"`
	ClassDay    ClassDay `json:"classDay,omitempty"`
	ChildrenIDs []string `json:"childrenIds,omitempty"`
}

// IsStudent reports whether the account is a student profile
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsTeacher reports whether the account is the teacher
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// StoredPassword returns the password to compare login attempts against,
// substituting the shared default when none is stored.
func (u *User) StoredPassword() string {
	if u.Password == "" {
		return DefaultPassword
	}
	return u.Password
}
