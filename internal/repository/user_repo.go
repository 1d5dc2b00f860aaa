package repository

import (
	"database/sql"
	"fmt"

	"classpoints/internal/database"
	"classpoints/internal/models"
)

// UserRepository handles database operations for accounts and their
// parent/child links
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAll retrieves every account with its linked children ids
func (r *UserRepository) GetAll() ([]models.User, error) {
	rows, err := r.db.Query(`
		SELECT id, username, password, name, role, class_day
		FROM users
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	index := make(map[string]int)
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		index[u.ID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	links, err := r.db.Query(`SELECT parent_id, student_id FROM user_children`)
	if err != nil {
		return nil, fmt.Errorf("failed to query children links: %w", err)
	}
	defer links.Close()

	for links.Next() {
		var parentID, studentID string
		if err := links.Scan(&parentID, &studentID); err != nil {
			return nil, fmt.Errorf("failed to scan children link: %w", err)
		}
		if i, ok := index[parentID]; ok {
			users[i].ChildrenIDs = append(users[i].ChildrenIDs, studentID)
		}
	}
	if err := links.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate children links: %w", err)
	}

	return users, nil
}

// GetByUsername retrieves an account by its login name, case-insensitively.
// Returns nil with no error when no account matches.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	row := r.db.QueryRow(`
		SELECT id, username, password, name, role, class_day
		FROM users
		WHERE LOWER(username) = LOWER(?)
	`, username)
	if err := scanUserRow(row, &u); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	links, err := r.db.Query(`SELECT student_id FROM user_children WHERE parent_id = ?`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query children links: %w", err)
	}
	defer links.Close()
	for links.Next() {
		var studentID string
		if err := links.Scan(&studentID); err != nil {
			return nil, fmt.Errorf("failed to scan children link: %w", err)
		}
		u.ChildrenIDs = append(u.ChildrenIDs, studentID)
	}
	if err := links.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate children links: %w", err)
	}

	return &u, nil
}

// Save upserts an account keyed by id and replaces its children links in the
// same transaction. Links are only written for parents; a role change away
// from parent clears any stale links.
func (r *UserRepository) Save(user *models.User) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(tx.GetDialect().UpsertUser(),
		user.ID, user.Username, user.Password, user.Name, string(user.Role), string(user.ClassDay))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM user_children WHERE parent_id = ?`, user.ID); err != nil {
		return fmt.Errorf("failed to clear children links: %w", err)
	}
	if user.Role == models.RoleParent {
		for _, childID := range user.ChildrenIDs {
			_, err := tx.Exec(`INSERT INTO user_children (parent_id, student_id) VALUES (?, ?)`,
				user.ID, childID)
			if err != nil {
				return fmt.Errorf("failed to link child %s: %w", childID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user save: %w", err)
	}
	return nil
}

// Delete removes an account and its children links
func (r *UserRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM user_children WHERE parent_id = ? OR student_id = ?`, id, id); err != nil {
		return fmt.Errorf("failed to delete children links: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user delete: %w", err)
	}
	return nil
}

// Count returns the number of accounts; used as a lightweight connectivity check
func (r *UserRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(rows *sql.Rows, u *models.User) error {
	return scanUserRow(rows, u)
}

func scanUserRow(row rowScanner, u *models.User) error {
	var role, classDay string
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &role, &classDay); err != nil {
		return err
	}
	u.Role = models.Role(role)
	u.ClassDay = models.ClassDay(classDay)
	return nil
}
