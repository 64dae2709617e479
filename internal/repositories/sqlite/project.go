package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

// ProjectRepository is a file-backed project store for local development.
// Items are kept as JSON documents keyed by (user, projectId).
type ProjectRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// Open opens (or creates) the database at path and applies migrations.
func Open(path string, logger *logrus.Logger) (*ProjectRepository, error) {
	if logger == nil {
		logger = logrus.New()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("db_path", path).Info("SQLite project store ready")

	return &ProjectRepository{db: db, logger: logger}, nil
}

// QueryByUser returns up to limit items for user ordered by project id.
func (r *ProjectRepository) QueryByUser(ctx context.Context, user string, limit int) ([]models.Project, error) {
	query := `SELECT attributes FROM project_items WHERE user = ? ORDER BY project_id`
	args := []interface{}{user}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError("Query", user, err)
	}
	defer rows.Close()

	items := []models.Project{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, classifyError("Query", user, err)
		}

		var item models.Project
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, repositories.NewRepositoryError("Query", "project", user, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyError("Query", user, err)
	}

	return items, nil
}

// Put inserts or replaces an item keyed by its projectId. Items without one
// are stored under a generated id; the caller's item is never modified.
func (r *ProjectRepository) Put(ctx context.Context, item models.Project) error {
	user := item.User()
	if user == "" {
		return repositories.NewRepositoryError("Put", "project", "", repositories.ErrInvalidUser)
	}

	stored := item
	projectID, ok := item.ProjectKey()
	if !ok {
		stored = make(models.Project, len(item)+1)
		for k, v := range item {
			stored[k] = v
		}
		projectID = uuid.New().String()
		stored[models.SortKey] = projectID
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return repositories.NewRepositoryError("Put", "project", user, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO project_items (user, project_id, attributes) VALUES (?, ?, ?)`,
		user, projectID, string(raw))
	if err != nil {
		return classifyError("Put", user, err)
	}

	return nil
}

// Close closes the underlying database
func (r *ProjectRepository) Close() error {
	if r.db == nil {
		return nil
	}
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// classifyError treats errors raised by the SQLite engine (busy, locked, no
// such table, ...) as store-classified failures.
func classifyError(op, user string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return repositories.NewServiceError(op, sqliteErr.Code.Error(), err)
	}
	return repositories.NewRepositoryError(op, "project", user, err)
}
