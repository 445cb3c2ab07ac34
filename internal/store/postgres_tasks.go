package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ArinDixit06/prod-app/internal/domain"
)

type pgTasks struct {
	pool *pgxpool.Pool
}

const taskColumns = `id, user_id, title, description, due_date, completed, created_at, updated_at`

func (s *pgTasks) Get(ctx context.Context, id string) (*domain.Task, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (s *pgTasks) ListByOwner(ctx context.Context, userID string) ([]*domain.Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *pgTasks) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	c := *t
	prepareCreate(&c, time.Now().UTC())
	_, err := s.pool.Exec(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.UserID, c.Title, c.Description, c.DueDate, c.Completed, c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &c, nil
}

func (s *pgTasks) Replace(ctx context.Context, t *domain.Task, expectedUpdatedAt time.Time) (*domain.Task, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE tasks
		    SET title = $1, description = $2, due_date = $3, completed = $4, updated_at = $5
		  WHERE id = $6 AND updated_at = $7
		RETURNING `+taskColumns,
		t.Title, t.Description, t.DueDate, t.Completed, t.UpdatedAt, t.ID, expectedUpdatedAt)
	updated, err := scanTask(row)
	if errors.Is(err, ErrNotFound) {
		return nil, s.replaceMiss(ctx, t.ID)
	}
	return updated, err
}

// replaceMiss distinguishes a vanished row from a concurrently modified one.
func (s *pgTasks) replaceMiss(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); errors.Is(err, ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return ErrConflict
}

func (s *pgTasks) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
