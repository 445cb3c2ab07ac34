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

type pgNotes struct {
	pool *pgxpool.Pool
}

const noteColumns = `id, user_id, title, content, created_at, updated_at`

func (s *pgNotes) Get(ctx context.Context, id string) (*domain.Note, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`, id)
	return scanNote(row)
}

func (s *pgNotes) ListByOwner(ctx context.Context, userID string) ([]*domain.Note, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	notes := make([]*domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *pgNotes) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	c := *n
	prepareCreate(&c, time.Now().UTC())
	_, err := s.pool.Exec(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.UserID, c.Title, c.Content, c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return &c, nil
}

func (s *pgNotes) Replace(ctx context.Context, n *domain.Note, expectedUpdatedAt time.Time) (*domain.Note, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE notes
		    SET title = $1, content = $2, updated_at = $3
		  WHERE id = $4 AND updated_at = $5
		RETURNING `+noteColumns,
		n.Title, n.Content, n.UpdatedAt, n.ID, expectedUpdatedAt)
	updated, err := scanNote(row)
	if errors.Is(err, ErrNotFound) {
		return nil, s.replaceMiss(ctx, n.ID)
	}
	return updated, err
}

func (s *pgNotes) replaceMiss(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); errors.Is(err, ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return ErrConflict
}

func (s *pgNotes) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &n, nil
}
