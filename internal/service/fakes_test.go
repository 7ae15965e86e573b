package service_test

import (
	"context"
	"errors"
	"slices"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/repository"
)

var errGatewayDown = errors.New("gateway down")

// fakeAccountStore is an in-memory stand-in for the accounts table.
// It enforces the primary key the way the real gateway does, so the
// duplicate-translation path is exercised without a database.
type fakeAccountStore struct {
	accounts  []model.Account
	insertErr error // forced failure for every Insert when set
}

func (f *fakeAccountStore) Insert(_ context.Context, a model.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.accounts {
		if existing.Username == a.Username {
			return repository.ErrDuplicateKey
		}
	}
	f.accounts = append(f.accounts, a)
	return nil
}

func (f *fakeAccountStore) All(_ context.Context) ([]model.Account, error) {
	return slices.Clone(f.accounts), nil
}

// fakeTicketStore mimics the tickets table. failAt makes the n-th
// Insert (1-based, counted across the store's lifetime) fail, which
// is how the partial-batch scenarios are driven.
type fakeTicketStore struct {
	tickets []model.Ticket
	failAt  int
	inserts int
}

func (f *fakeTicketStore) Insert(_ context.Context, t model.Ticket) error {
	f.inserts++
	if f.failAt > 0 && f.inserts == f.failAt {
		return errGatewayDown
	}
	for _, existing := range f.tickets {
		if existing.BookingReference == t.BookingReference {
			return repository.ErrDuplicateKey
		}
	}
	f.tickets = append(f.tickets, t)
	return nil
}

func (f *fakeTicketStore) All(_ context.Context) ([]model.Ticket, error) {
	return slices.Clone(f.tickets), nil
}
