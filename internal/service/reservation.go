package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/pricing"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/queue"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/utils"
)

// DefaultReferenceLength is the booking reference length used for all
// issued tickets.
const DefaultReferenceLength = 8

// maxReferenceAttempts bounds regeneration when a fresh reference
// collides with an existing one. With 62^8 possible codes more than
// one retry is already extraordinary.
const maxReferenceAttempts = 5

// ReservationService orchestrates a purchase: authorization, fare
// lookup, reference generation, the batch write and the
// write-then-refresh cycle for the ticket mirror. It holds the
// AccountDirectory by composition; authorization is delegated, never
// inherited.
type ReservationService struct {
	directory *AccountDirectory
	prices    *pricing.Table
	store     TicketStore
	exporter  *Exporter
	events    *queue.Publisher

	refLen int
	mirror []model.Ticket
}

func NewReservationService(directory *AccountDirectory, prices *pricing.Table,
	store TicketStore, exporter *Exporter, events *queue.Publisher) *ReservationService {
	return &ReservationService{
		directory: directory,
		prices:    prices,
		store:     store,
		exporter:  exporter,
		events:    events,
		refLen:    DefaultReferenceLength,
	}
}

// Refresh reloads the ticket mirror wholesale from the store.
func (s *ReservationService) Refresh(ctx context.Context) error {
	tickets, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("refresh tickets: %w", err)
	}
	s.mirror = tickets
	return nil
}

// RefreshAll reloads both mirrors (accounts and tickets). The CLI
// calls it once at startup and the purchase path calls it after a
// fully written batch.
func (s *ReservationService) RefreshAll(ctx context.Context) error {
	if err := s.directory.Refresh(ctx); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Tickets returns the current ticket mirror. Display only.
func (s *ReservationService) Tickets() []model.Ticket { return s.mirror }

// Prices exposes the fare table for menu rendering.
func (s *ReservationService) Prices() *pricing.Table { return s.prices }

// Purchase books one ticket per passenger on the given route and
// train for the session's user. The fare is computed once and applied
// to every ticket in the batch. The batch write is not atomic: on a
// mid-batch store failure the rows already written stay persisted and
// are reported in a *PartialBookingError; the ticket mirror is then
// refreshed so it reflects exactly what was persisted.
func (s *ReservationService) Purchase(ctx context.Context, session model.Session,
	origin, destination, train string, passengers []model.Passenger) (model.Receipt, error) {
	owner, err := s.directory.Authorize(session)
	if err != nil {
		return model.Receipt{}, err
	}
	if origin == destination {
		return model.Receipt{}, ErrInvalidRoute
	}
	if len(passengers) == 0 {
		return model.Receipt{}, ErrInvalidPassengerCount
	}

	fare := s.prices.Fare(origin, destination, train)

	// Refresh first so the reference uniqueness check runs against the
	// current persisted set, not a stale mirror.
	if err := s.Refresh(ctx); err != nil {
		return model.Receipt{}, err
	}
	taken := make(map[string]struct{}, len(s.mirror)+len(passengers))
	for _, t := range s.mirror {
		taken[t.BookingReference] = struct{}{}
	}

	batch := make([]model.Ticket, 0, len(passengers))
	for _, p := range passengers {
		ref, err := s.newUniqueReference(taken)
		if err != nil {
			return model.Receipt{}, err
		}
		taken[ref] = struct{}{}
		batch = append(batch, model.Ticket{
			BookingReference:   ref,
			OwnerUsername:      owner,
			PassengerName:      p.Name,
			PassengerID:        p.ID,
			TrainName:          train,
			OriginStation:      origin,
			DestinationStation: destination,
			Fare:               fare,
		})
	}

	var written []model.Ticket
	for _, t := range batch {
		if err := s.store.Insert(ctx, t); err != nil {
			if rerr := s.Refresh(ctx); rerr != nil {
				log.Printf("refresh tickets after failed batch: %v", rerr)
			}
			return model.Receipt{}, &PartialBookingError{Succeeded: written, Cause: err}
		}
		written = append(written, t)
	}

	s.mirror = append(s.mirror, batch...)
	if s.exporter != nil {
		if err := s.exporter.SnapshotTickets(s.mirror); err != nil {
			log.Printf("export tickets snapshot: %v", err)
		}
	}
	if s.events != nil {
		refs := make([]string, len(batch))
		for i, t := range batch {
			refs[i] = t.BookingReference
		}
		_ = s.events.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			OwnerUsername:      owner,
			TrainName:          train,
			OriginStation:      origin,
			DestinationStation: destination,
			BookingReferences:  refs,
			PassengerCount:     len(batch),
			TotalFare:          fare * len(batch),
			BookedAt:           time.Now().UTC().Format(time.RFC3339),
		})
	}

	// Every ticket is persisted at this point; a failed refresh leaves
	// the mirror stale but must not turn the purchase into an error.
	if err := s.RefreshAll(ctx); err != nil {
		log.Printf("refresh after purchase: %v", err)
	}

	return model.Receipt{Tickets: batch, TotalFare: fare * len(batch)}, nil
}

// ListTickets returns the session user's tickets from a freshly
// refreshed mirror, ordered as persisted. A user with no tickets gets
// an empty slice, not an error.
func (s *ReservationService) ListTickets(ctx context.Context, session model.Session) ([]model.Ticket, error) {
	owner, err := s.directory.Authorize(session)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	owned := []model.Ticket{}
	for _, t := range s.mirror {
		if t.OwnerUsername == owner {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

// newUniqueReference draws booking references until one misses the
// taken set, giving up after maxReferenceAttempts.
func (s *ReservationService) newUniqueReference(taken map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, err := utils.NewBookingReference(s.refLen)
		if err != nil {
			return "", fmt.Errorf("generate booking reference: %w", err)
		}
		if _, exists := taken[ref]; !exists {
			return ref, nil
		}
	}
	return "", fmt.Errorf("no unique booking reference after %d attempts", maxReferenceAttempts)
}
