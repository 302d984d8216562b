package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/models"
)

const bookingColumns = `id, trip_id, user_id, seats_booked, source, status,
       COALESCE(num_travelers, 0), traveler_details,
       COALESCE(contact_name, ''), COALESCE(contact_phone, ''), COALESCE(contact_email, ''),
       COALESCE(price_per_person, 0), COALESCE(total_price, 0), COALESCE(currency, 'INR'),
       created_at`

// scanBooking reads a booking row. Raw status values are normalized to
// the canonical enum here, so legacy "confirmed" rows never escape the
// storage boundary.
func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	var userID uuid.NullUUID
	var rawStatus string
	var travelers []byte
	err := row.Scan(
		&b.ID, &b.TripID, &userID, &b.SeatsBooked, &b.Source, &rawStatus,
		&b.NumTravelers, &travelers,
		&b.ContactName, &b.ContactPhone, &b.ContactEmail,
		&b.PricePerPerson, &b.TotalPrice, &b.Currency,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		id := userID.UUID
		b.UserID = &id
	}
	b.Status = models.NormalizeBookingStatus(rawStatus)
	if len(travelers) > 0 {
		if err := json.Unmarshal(travelers, &b.TravelerDetails); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

// seatConsumingStatuses is the SQL predicate for bookings that hold a
// seat: canonical APPROVED plus the legacy "confirmed" alias.
const seatConsumingStatuses = `status IN ('APPROVED', 'confirmed')`

func sumBookedSeats(ctx context.Context, q querier, tripID uuid.UUID) (int, error) {
	var booked int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(seats_booked), 0) FROM bookings WHERE trip_id = $1 AND `+seatConsumingStatuses,
		tripID).Scan(&booked)
	if err != nil {
		return 0, err
	}
	return booked, nil
}

// SumBookedSeats aggregates seats held by APPROVED (or legacy
// confirmed) bookings for the trip.
func (p *Postgres) SumBookedSeats(ctx context.Context, tripID uuid.UUID) (int, error) {
	return sumBookedSeats(ctx, p.pool, tripID)
}

// CreateBooking inserts a booking row.
func (p *Postgres) CreateBooking(ctx context.Context, booking *models.Booking) error {
	var travelers []byte
	if booking.TravelerDetails != nil {
		data, err := json.Marshal(booking.TravelerDetails)
		if err != nil {
			return err
		}
		travelers = data
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO bookings (id, trip_id, user_id, seats_booked, source, status,
                               num_travelers, traveler_details, contact_name, contact_phone,
                               contact_email, price_per_person, total_price, currency, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		booking.ID, booking.TripID, booking.UserID, booking.SeatsBooked, booking.Source,
		string(booking.Status), booking.NumTravelers, travelers, booking.ContactName,
		booking.ContactPhone, booking.ContactEmail, booking.PricePerPerson,
		booking.TotalPrice, booking.Currency, booking.CreatedAt,
	)
	if err != nil {
		return mapError(err, "booking not found")
	}
	return nil
}

// GetBookingByID loads one booking.
func (p *Postgres) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := scanBooking(p.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "booking not found")
	}
	return booking, nil
}

// HasPendingBooking reports whether the user already has an
// outstanding PENDING request on the trip.
func (p *Postgres) HasPendingBooking(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE trip_id = $1 AND user_id = $2 AND status = 'PENDING')`,
		tripID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListOrganizerBookings lists bookings across all trips owned by the
// organizer, optionally filtered by status, newest first.
func (p *Postgres) ListOrganizerBookings(ctx context.Context, organizerID uuid.UUID, filter core.BookingFilter) ([]models.Booking, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT b.`+bookingColumnsQualified()+`
           FROM bookings b
           JOIN trips t ON t.id = b.trip_id
          WHERE t.organizer_id = $1
            AND ($2 = '' OR b.status = $2 OR ($2 = 'APPROVED' AND b.status = 'confirmed'))
          ORDER BY b.created_at DESC
          LIMIT $3 OFFSET $4`,
		organizerID, string(filter.Status), filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListUserBookings lists the user's bookings, newest first.
func (p *Postgres) ListUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Booking, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+bookingColumns+`
           FROM bookings
          WHERE user_id = $1
          ORDER BY created_at DESC
          LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// LatestUserBookingForTrip returns the user's most recent booking on a
// trip.
func (p *Postgres) LatestUserBookingForTrip(ctx context.Context, userID, tripID uuid.UUID) (*models.Booking, error) {
	booking, err := scanBooking(p.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+`
           FROM bookings
          WHERE user_id = $1 AND trip_id = $2
          ORDER BY created_at DESC
          LIMIT 1`,
		userID, tripID))
	if err != nil {
		return nil, mapError(err, "booking not found")
	}
	return booking, nil
}

func collectBookings(rows pgx.Rows) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// bookingColumnsQualified prefixes each booking column with "b." for
// joined queries.
func bookingColumnsQualified() string {
	return `id, b.trip_id, b.user_id, b.seats_booked, b.source, b.status,
       COALESCE(b.num_travelers, 0), b.traveler_details,
       COALESCE(b.contact_name, ''), COALESCE(b.contact_phone, ''), COALESCE(b.contact_email, ''),
       COALESCE(b.price_per_person, 0), COALESCE(b.total_price, 0), COALESCE(b.currency, 'INR'),
       b.created_at`
}

// pgTx adapts a pgx transaction to the core.Tx contract.
type pgTx struct {
	tx pgx.Tx
}

// GetBookingForUpdate loads the booking under FOR UPDATE, blocking any
// concurrent approval attempt on the same row until this transaction
// finishes.
func (t *pgTx) GetBookingForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := scanBooking(t.tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, mapError(err, "booking not found")
	}
	return booking, nil
}

func (t *pgTx) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return getTripByID(ctx, t.tx, id)
}

func (t *pgTx) SumBookedSeats(ctx context.Context, tripID uuid.UUID) (int, error) {
	return sumBookedSeats(ctx, t.tx, tripID)
}

func (t *pgTx) SetBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.Errorf(core.KindNotFound, "booking not found")
	}
	return nil
}
