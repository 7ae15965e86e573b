package repository

import (
	"context"
	"database/sql"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
)

type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

// Insert writes one ticket row. A colliding booking reference is
// reported as ErrDuplicateKey. There is no batch variant: the service
// layer inserts row by row on purpose, so that a mid-batch failure
// leaves the earlier rows persisted and reportable.
func (r *TicketRepo) Insert(ctx context.Context, t model.Ticket) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO tickets
		 (booking_reference, owner_username, passenger_name, passenger_id,
		  train_name, origin_station, destination_station, fare)
		 VALUES (?,?,?,?,?,?,?,?)`,
		t.BookingReference, t.OwnerUsername, t.PassengerName, t.PassengerID,
		t.TrainName, t.OriginStation, t.DestinationStation, t.Fare)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// All returns every ticket ordered by booking reference.
func (r *TicketRepo) All(ctx context.Context) ([]model.Ticket, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT booking_reference, owner_username, passenger_name, passenger_id,
		        train_name, origin_station, destination_station, fare
		 FROM tickets ORDER BY booking_reference`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []model.Ticket
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.BookingReference, &t.OwnerUsername, &t.PassengerName,
			&t.PassengerID, &t.TrainName, &t.OriginStation, &t.DestinationStation,
			&t.Fare); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
