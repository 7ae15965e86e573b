// Package queue defines message payloads exchanged over the message broker
// and the publisher that delivers them. Events are a fire-and-forget side
// channel: nothing in the application reads them back, and a publish
// failure never fails the operation that produced the event.
package queue

// AccountCreatedEvent is published when a new account has been
// persisted.
type AccountCreatedEvent struct {
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// BookingCreatedEvent is published after a fully successful purchase.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.
type BookingCreatedEvent struct {
	OwnerUsername      string   `json:"owner_username"`
	TrainName          string   `json:"train_name"`
	OriginStation      string   `json:"origin_station"`
	DestinationStation string   `json:"destination_station"`
	BookingReferences  []string `json:"booking_references"`
	PassengerCount     int      `json:"passenger_count"`
	TotalFare          int      `json:"total_fare"`
	BookedAt           string   `json:"booked_at"`
}
