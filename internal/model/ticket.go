package model

// Ticket records one passenger's seat on one journey. Tickets are
// created in batches (one row per passenger of a purchase), are
// immutable after creation and are never deleted in normal
// operation.
//
// Fields:
//  BookingReference   – random alphanumeric code, primary key of the
//                       tickets table.
//  OwnerUsername      – account that paid for the ticket (references
//                       accounts.username).
//  PassengerName      – name of the traveller; may differ from the owner.
//  PassengerID        – identity-document number of the traveller.
//  TrainName          – train the ticket is valid on.
//  OriginStation      – departure station.
//  DestinationStation – arrival station.
//  Fare               – price paid for this single ticket.
type Ticket struct {
	BookingReference   string // tickets.booking_reference
	OwnerUsername      string // tickets.owner_username
	PassengerName      string // tickets.passenger_name
	PassengerID        string // tickets.passenger_id
	TrainName          string // tickets.train_name
	OriginStation      string // tickets.origin_station
	DestinationStation string // tickets.destination_station
	Fare               int    // tickets.fare
}

// Passenger is the per-traveller input to a purchase. It carries only
// what the ticket row needs; everything else (route, train, fare,
// owner) is shared across the batch.
type Passenger struct {
	Name string
	ID   string
}

// Receipt summarizes a fully successful purchase: every ticket that
// was written plus the total charged. The total always equals the
// per-ticket fare multiplied by the number of tickets, because a
// batch is priced once.
type Receipt struct {
	Tickets   []Ticket
	TotalFare int
}
