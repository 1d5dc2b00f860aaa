package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// Ensure foreign key checks are enabled
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1;"); err != nil {
		return err
	}

	return nil
}

func (d *MySQLDialect) MigrationsSubdir() string {
	return "mysql"
}

func (d *MySQLDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		);
	`
}

func (d *MySQLDialect) UpsertUser() string {
	return `INSERT INTO users (id, username, password, name, role, class_day) VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			username = VALUES(username),
			password = VALUES(password),
			name = VALUES(name),
			role = VALUES(role),
			class_day = VALUES(class_day)`
}

func (d *MySQLDialect) UpsertSession() string {
	return `INSERT INTO sessions (id, date, class_day, point_config) VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			date = VALUES(date),
			class_day = VALUES(class_day),
			point_config = VALUES(point_config)`
}

func (d *MySQLDialect) UpsertPointConfig() string {
	return `INSERT INTO settings (id, point_config) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE point_config = VALUES(point_config)`
}
