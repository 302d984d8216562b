package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/models"
)

// Postgres implements core.Store on top of a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// New creates a Postgres store.
func New(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolation = "23505"

// mapError translates storage failures into tagged core errors at the
// boundary, so the core never sees driver types.
func mapError(err error, notFoundMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Errorf(core.KindNotFound, "%s", notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return core.Errorf(core.KindConflict, "duplicate record: %s", pgErr.ConstraintName)
	}
	return err
}

const tripColumns = `id, organizer_id, slug, title, COALESCE(description, ''), destination, price,
       start_date, end_date, total_seats, status, COALESCE(tags, '{}'),
       COALESCE(cover_image_url, ''), itinerary, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*models.Trip, error) {
	var t models.Trip
	var status string
	var itinerary []byte
	err := row.Scan(
		&t.ID, &t.OrganizerID, &t.Slug, &t.Title, &t.Description, &t.Destination, &t.Price,
		&t.StartDate, &t.EndDate, &t.TotalSeats, &status, &t.Tags,
		&t.CoverImageURL, &itinerary, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Status = models.TripStatus(status)
	t.Itinerary = itinerary
	return &t, nil
}

func getTripByID(ctx context.Context, q querier, id uuid.UUID) (*models.Trip, error) {
	trip, err := scanTrip(q.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "trip not found")
	}
	return trip, nil
}

// GetTripByID loads a trip regardless of its lifecycle state.
func (p *Postgres) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return getTripByID(ctx, p.pool, id)
}

// GetActiveTripBySlug loads an active trip by slug. Soft-deleted trips
// are invisible here.
func (p *Postgres) GetActiveTripBySlug(ctx context.Context, slug string) (*models.Trip, error) {
	trip, err := scanTrip(p.pool.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE slug = $1 AND is_active = TRUE`, slug))
	if err != nil {
		return nil, mapError(err, "trip not found")
	}
	return trip, nil
}

// CreateTrip inserts a trip. A slug collision surfaces as KindConflict
// so the caller can regenerate and retry.
func (p *Postgres) CreateTrip(ctx context.Context, trip *models.Trip) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO trips (id, organizer_id, slug, title, description, destination, price,
                            start_date, end_date, total_seats, status, tags, cover_image_url,
                            itinerary, is_active, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		trip.ID, trip.OrganizerID, trip.Slug, trip.Title, trip.Description, trip.Destination,
		trip.Price, trip.StartDate, trip.EndDate, trip.TotalSeats, string(trip.Status),
		trip.Tags, trip.CoverImageURL, []byte(trip.Itinerary), trip.IsActive,
		trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "trip not found")
	}
	return nil
}

// UpdateTrip persists the full trip row.
func (p *Postgres) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE trips
            SET slug = $1, title = $2, description = $3, destination = $4, price = $5,
                start_date = $6, end_date = $7, total_seats = $8, status = $9, tags = $10,
                cover_image_url = $11, itinerary = $12, is_active = $13, updated_at = $14
          WHERE id = $15`,
		trip.Slug, trip.Title, trip.Description, trip.Destination, trip.Price,
		trip.StartDate, trip.EndDate, trip.TotalSeats, string(trip.Status), trip.Tags,
		trip.CoverImageURL, []byte(trip.Itinerary), trip.IsActive, trip.UpdatedAt, trip.ID,
	)
	if err != nil {
		return mapError(err, "trip not found")
	}
	if tag.RowsAffected() == 0 {
		return core.Errorf(core.KindNotFound, "trip not found")
	}
	return nil
}

// ListPublicTrips lists active PUBLISHED trips with optional filters,
// ordered by start date.
func (p *Postgres) ListPublicTrips(ctx context.Context, filter core.TripFilter) ([]models.Trip, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+tripColumns+`
           FROM trips
          WHERE is_active = TRUE
            AND status = 'PUBLISHED'
            AND ($1 = '' OR destination ILIKE '%' || $1 || '%')
            AND ($2::int IS NULL OR price >= $2)
            AND ($3::int IS NULL OR price <= $3)
            AND ($4::date IS NULL OR start_date >= $4)
          ORDER BY start_date ASC
          LIMIT $5 OFFSET $6`,
		filter.Destination, filter.MinPrice, filter.MaxPrice, filter.StartDateFrom,
		filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrips(rows)
}

// ListOrganizerTrips lists all of an organizer's active trips,
// including drafts, newest first.
func (p *Postgres) ListOrganizerTrips(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]models.Trip, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+tripColumns+`
           FROM trips
          WHERE organizer_id = $1 AND is_active = TRUE
          ORDER BY created_at DESC
          LIMIT $2 OFFSET $3`,
		organizerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrips(rows)
}

func collectTrips(rows pgx.Rows) ([]models.Trip, error) {
	trips := make([]models.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetOrganizerByID loads an organizer.
func (p *Postgres) GetOrganizerByID(ctx context.Context, id uuid.UUID) (*models.Organizer, error) {
	var o models.Organizer
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(website, ''), created_at FROM organizers WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.Email, &o.Website, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err, "organizer not found")
	}
	return &o, nil
}

// AddTripImage inserts an image metadata record.
func (p *Postgres) AddTripImage(ctx context.Context, image *models.TripImage) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO trip_images (id, trip_id, image_url, position, created_at)
         VALUES ($1, $2, $3, $4, $5)`,
		image.ID, image.TripID, image.ImageURL, image.Position, image.CreatedAt)
	if err != nil {
		return mapError(err, "trip not found")
	}
	return nil
}

// ListTripImages returns a trip's image records ordered by position.
func (p *Postgres) ListTripImages(ctx context.Context, tripID uuid.UUID) ([]models.TripImage, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, trip_id, image_url, position, created_at
           FROM trip_images
          WHERE trip_id = $1
          ORDER BY position ASC, created_at ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]models.TripImage, 0)
	for rows.Next() {
		var img models.TripImage
		if err := rows.Scan(&img.ID, &img.TripID, &img.ImageURL, &img.Position, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteTripImage removes one image record.
func (p *Postgres) DeleteTripImage(ctx context.Context, tripID, imageID uuid.UUID) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM trip_images WHERE id = $1 AND trip_id = $2`, imageID, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.Errorf(core.KindNotFound, "image not found")
	}
	return nil
}

// CountTripImages counts a trip's image records.
func (p *Postgres) CountTripImages(ctx context.Context, tripID uuid.UUID) (int, error) {
	var count int
	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(1) FROM trip_images WHERE trip_id = $1`, tripID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// InTx runs fn inside a database transaction. Any error rolls the
// whole transaction back.
func (p *Postgres) InTx(ctx context.Context, fn func(tx core.Tx) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
