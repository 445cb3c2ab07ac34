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

type pgCalendar struct {
	pool *pgxpool.Pool
}

const calendarColumns = `id, user_id, title, description, start_time, end_time, all_day, location, created_at, updated_at`

func (s *pgCalendar) Get(ctx context.Context, id string) (*domain.CalendarEntry, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+calendarColumns+` FROM calendar_entries WHERE id = $1`, id)
	return scanCalendarEntry(row)
}

func (s *pgCalendar) ListByOwner(ctx context.Context, userID string) ([]*domain.CalendarEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+calendarColumns+` FROM calendar_entries WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar entries: %w", err)
	}
	defer rows.Close()
	entries := make([]*domain.CalendarEntry, 0)
	for rows.Next() {
		e, err := scanCalendarEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calendar entries: %w", err)
	}
	return entries, nil
}

func (s *pgCalendar) Create(ctx context.Context, e *domain.CalendarEntry) (*domain.CalendarEntry, error) {
	c := *e
	prepareCreate(&c, time.Now().UTC())
	_, err := s.pool.Exec(ctx,
		`INSERT INTO calendar_entries (`+calendarColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.UserID, c.Title, c.Description, c.StartTime, c.EndTime,
		c.AllDay, c.Location, c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("insert calendar entry: %w", err)
	}
	return &c, nil
}

func (s *pgCalendar) Replace(ctx context.Context, e *domain.CalendarEntry, expectedUpdatedAt time.Time) (*domain.CalendarEntry, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE calendar_entries
		    SET title = $1, description = $2, start_time = $3, end_time = $4,
		        all_day = $5, location = $6, updated_at = $7
		  WHERE id = $8 AND updated_at = $9
		RETURNING `+calendarColumns,
		e.Title, e.Description, e.StartTime, e.EndTime, e.AllDay, e.Location,
		e.UpdatedAt, e.ID, expectedUpdatedAt)
	updated, err := scanCalendarEntry(row)
	if errors.Is(err, ErrNotFound) {
		return nil, s.replaceMiss(ctx, e.ID)
	}
	return updated, err
}

func (s *pgCalendar) replaceMiss(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); errors.Is(err, ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return ErrConflict
}

func (s *pgCalendar) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM calendar_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCalendarEntry(row pgx.Row) (*domain.CalendarEntry, error) {
	var e domain.CalendarEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartTime,
		&e.EndTime, &e.AllDay, &e.Location, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan calendar entry: %w", err)
	}
	return &e, nil
}
