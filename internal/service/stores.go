package service

import (
	"context"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
)

// AccountStore is the slice of the persistence gateway the account
// directory needs. *repository.AccountRepo satisfies it; tests supply
// in-memory fakes.
type AccountStore interface {
	Insert(ctx context.Context, a model.Account) error
	All(ctx context.Context) ([]model.Account, error)
}

// TicketStore is the slice of the persistence gateway the reservation
// service needs. *repository.TicketRepo satisfies it.
type TicketStore interface {
	Insert(ctx context.Context, t model.Ticket) error
	All(ctx context.Context) ([]model.Ticket, error)
}
