package repository

import (
	"encoding/json"
	"fmt"

	"classpoints/internal/database"
	"classpoints/internal/models"
)

// SessionRepository handles database operations for class sessions and their
// record lists
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetAll retrieves every historical session with its full record list, records
// ordered by their stored roster position
func (r *SessionRepository) GetAll() ([]models.ClassSession, error) {
	rows, err := r.db.Query(`SELECT id, date, class_day, point_config FROM sessions ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.ClassSession
	index := make(map[string]int)
	for rows.Next() {
		var s models.ClassSession
		var classDay, configJSON string
		if err := rows.Scan(&s.ID, &s.Date, &classDay, &configJSON); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.ClassDay = models.ClassDay(classDay)
		if err := json.Unmarshal([]byte(configJSON), &s.PointConfig); err != nil {
			return nil, fmt.Errorf("failed to decode point snapshot for session %s: %w", s.ID, err)
		}
		index[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	records, err := r.db.Query(`
		SELECT session_id, student_id, student_name, arrival, homework, classwork,
		       listening_calc, number_activity, number_activity_desc, behaviour, total_score
		FROM session_records
		ORDER BY session_id, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query session records: %w", err)
	}
	defer records.Close()

	for records.Next() {
		var sessionID string
		var rec models.DailyRecord
		if err := records.Scan(
			&sessionID,
			&rec.StudentID,
			&rec.StudentName,
			&rec.Arrival,
			&rec.Homework,
			&rec.Classwork,
			&rec.ListeningCalc,
			&rec.NumberActivity,
			&rec.NumberActivityDesc,
			&rec.Behaviour,
			&rec.TotalScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session record: %w", err)
		}
		if i, ok := index[sessionID]; ok {
			sessions[i].Records = append(sessions[i].Records, rec)
		}
	}
	if err := records.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session records: %w", err)
	}

	return sessions, nil
}

// Save upserts a session keyed by id and replaces its record list wholesale.
// The whole write runs in one transaction, so a failed save can never leave
// the session with a partially cleared record set.
func (r *SessionRepository) Save(session *models.ClassSession) error {
	configJSON, err := json.Marshal(session.PointConfig)
	if err != nil {
		return fmt.Errorf("failed to encode point snapshot: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(tx.GetDialect().UpsertSession(),
		session.ID, session.Date, string(session.ClassDay), string(configJSON))
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM session_records WHERE session_id = ?`, session.ID); err != nil {
		return fmt.Errorf("failed to clear session records: %w", err)
	}

	for i, rec := range session.Records {
		_, err := tx.Exec(`
			INSERT INTO session_records (
				session_id, position, student_id, student_name, arrival, homework,
				classwork, listening_calc, number_activity, number_activity_desc,
				behaviour, total_score
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			session.ID, i, rec.StudentID, rec.StudentName, rec.Arrival, rec.Homework,
			rec.Classwork, rec.ListeningCalc, rec.NumberActivity, rec.NumberActivityDesc,
			rec.Behaviour, rec.TotalScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record for student %s: %w", rec.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session save: %w", err)
	}
	return nil
}
