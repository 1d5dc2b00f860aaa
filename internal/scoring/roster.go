package scoring

import "classpoints/internal/models"

// RosterFor selects the students enrolled in the given class day.
// The result preserves the enumeration order of the input list; no implicit
// sorting is applied.
func RosterFor(day models.ClassDay, users []models.User) []models.User {
	var roster []models.User
	for _, u := range users {
		if u.Role == models.RoleStudent && u.ClassDay == day {
			roster = append(roster, u)
		}
	}
	return roster
}
