package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventhub/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

func (r *attendanceRepository) Register(ctx context.Context, userID, eventID int64) error {
	query := `
		INSERT INTO event_attendance (user_id, event_id, registered_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *attendanceRepository) ListAttendeesByEvent(ctx context.Context, eventID int64) ([]*domain.Attendee, error) {
	query := `
		SELECT u.id, u.username, u.email, u.full_name, a.registered_at
		FROM event_attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.registered_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a := &domain.Attendee{}
		if err := rows.Scan(&a.UserID, &a.Username, &a.Email, &a.FullName, &a.RegisteredAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (r *attendanceRepository) ListActiveFutureByUser(ctx context.Context, userID int64, now time.Time) ([]*domain.AttendedEvent, error) {
	query := `
		SELECT e.id, e.title, e.description, e.date, e.location, e.max_participants, e.organizer_id, e.is_active, e.created_at, a.registered_at
		FROM event_attendance a
		JOIN events e ON e.id = a.event_id
		WHERE a.user_id = $1 AND e.is_active = TRUE AND e.date >= $2
		ORDER BY e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attended := make([]*domain.AttendedEvent, 0)
	for rows.Next() {
		e := &domain.Event{}
		var maxNull sql.NullInt64
		var registeredAt time.Time
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &maxNull, &e.OrganizerID, &e.IsActive, &e.CreatedAt, &registeredAt); err != nil {
			return nil, err
		}
		if maxNull.Valid {
			v := int(maxNull.Int64)
			e.MaxParticipants = &v
		}
		attended = append(attended, &domain.AttendedEvent{Event: e, RegisteredAt: registeredAt})
	}
	return attended, rows.Err()
}

func (r *attendanceRepository) ListActiveInWindow(ctx context.Context, start, end time.Time) ([]*domain.ReminderRow, error) {
	query := `
		SELECT e.id, e.title, e.date, e.location, u.id, u.username, u.email, u.full_name
		FROM event_attendance a
		JOIN events e ON e.id = a.event_id
		JOIN users u ON u.id = a.user_id
		WHERE e.is_active = TRUE AND e.date >= $1 AND e.date <= $2
		ORDER BY e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.ReminderRow, 0)
	for rows.Next() {
		row := &domain.ReminderRow{}
		if err := rows.Scan(&row.EventID, &row.EventTitle, &row.EventDate, &row.EventLocation, &row.UserID, &row.Username, &row.Email, &row.FullName); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
