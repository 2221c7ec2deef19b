// Package mysql stores light readings in a MySQL database.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/quentinrf/bh1750/internal/domain"
)

const requestTimeout = 10 * time.Second

const schema = "CREATE TABLE IF NOT EXISTS light_readings (" +
	"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
	"lux DOUBLE NOT NULL, " +
	"raw INT UNSIGNED NOT NULL DEFAULT 0, " +
	"`timestamp` BIGINT NOT NULL, " +
	"INDEX idx_timestamp (`timestamp`))"

// ReadingRepository implements domain.ReadingRepository with MySQL
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository connects with dsn (go-sql-driver format, database
// included) and creates the table if needed.
func NewReadingRepository(dsn string) (*ReadingRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening MySQL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging MySQL: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating table light_readings: %w", err)
	}

	return &ReadingRepository{db: db}, nil
}

// SaveReading stores a reading and sets its ID
func (r *ReadingRepository) SaveReading(ctx context.Context, reading *domain.LightReading) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO light_readings (lux, raw, `timestamp`) VALUES (?, ?, ?)",
		reading.Lux, reading.Raw, reading.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("error inserting reading: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error getting insert id: %w", err)
	}

	reading.ID = id
	return nil
}

func (r *ReadingRepository) GetReading(ctx context.Context, id int64) (*domain.LightReading, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		"SELECT id, lux, raw, `timestamp` FROM light_readings WHERE id = ?", id)
	return scanOne(row)
}

func (r *ReadingRepository) GetReadingsInRange(ctx context.Context, start, end time.Time) ([]*domain.LightReading, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidRange
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, lux, raw, `timestamp` FROM light_readings "+
			"WHERE `timestamp` >= ? AND `timestamp` < ? ORDER BY `timestamp` ASC",
		start.UnixNano(), end.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("error querying readings: %w", err)
	}
	defer rows.Close()

	var readings []*domain.LightReading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reading: %w", err)
		}
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

func (r *ReadingRepository) GetLatestReading(ctx context.Context) (*domain.LightReading, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		"SELECT id, lux, raw, `timestamp` FROM light_readings ORDER BY `timestamp` DESC LIMIT 1")
	return scanOne(row)
}

func (r *ReadingRepository) DeleteOldReadings(ctx context.Context, olderThan time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	cutoff := time.Now().Add(-olderThan)
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM light_readings WHERE `timestamp` < ?", cutoff.UnixNano()); err != nil {
		return fmt.Errorf("error deleting old readings: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (r *ReadingRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("error closing MySQL: %w", err)
	}
	return nil
}

func scanOne(row *sql.Row) (*domain.LightReading, error) {
	reading, err := scanReading(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying reading: %w", err)
	}
	return reading, nil
}

func scanReading(s interface{ Scan(...any) error }) (*domain.LightReading, error) {
	var (
		reading domain.LightReading
		raw     uint32
		nanos   int64
	)
	if err := s.Scan(&reading.ID, &reading.Lux, &raw, &nanos); err != nil {
		return nil, err
	}
	reading.Raw = uint16(raw)
	reading.Timestamp = time.Unix(0, nanos)
	return &reading, nil
}
