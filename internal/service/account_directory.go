package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/queue"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/repository"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/utils"
)

// AccountDirectory owns the set of known accounts and the live
// sessions. It keeps an ordered in-memory mirror of the accounts
// table for duplicate checks and display; the mirror is replaced
// wholesale by Refresh and equals the persisted table after every
// successful write-then-refresh cycle.
type AccountDirectory struct {
	store    AccountStore
	exporter *Exporter
	events   *queue.Publisher

	secret     string
	ttlMin     int
	bcryptCost int

	mirror []model.Account
	live   map[string]struct{} // tokens of sessions that have not logged out
}

func NewAccountDirectory(store AccountStore, exporter *Exporter, events *queue.Publisher,
	jwtSecret string, sessionTTLMin, bcryptCost int) *AccountDirectory {
	return &AccountDirectory{
		store:      store,
		exporter:   exporter,
		events:     events,
		secret:     jwtSecret,
		ttlMin:     sessionTTLMin,
		bcryptCost: bcryptCost,
		live:       make(map[string]struct{}),
	}
}

// Refresh reloads the account mirror wholesale from the store.
func (d *AccountDirectory) Refresh(ctx context.Context) error {
	accounts, err := d.store.All(ctx)
	if err != nil {
		return fmt.Errorf("refresh accounts: %w", err)
	}
	d.mirror = accounts
	return nil
}

// Accounts returns the current mirror. Display only: between a write
// and its refresh the mirror may be stale.
func (d *AccountDirectory) Accounts() []model.Account { return d.mirror }

func (d *AccountDirectory) lookup(username string) (model.Account, bool) {
	for _, a := range d.mirror {
		if a.Username == username {
			return a, true
		}
	}
	return model.Account{}, false
}

// CreateAccount registers a new account. The mirror is checked for a
// duplicate strictly before the store write; a duplicate-key failure
// from the store (another writer won the race) is translated to
// ErrDuplicateUsername as well. After the write commits the CSV
// snapshot and account-created event fire, then the mirror is
// refreshed.
func (d *AccountDirectory) CreateAccount(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if _, exists := d.lookup(username); exists {
		return ErrDuplicateUsername
	}

	hash, err := utils.HashPassword(password, d.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	account := model.Account{Username: username, PasswordHash: hash}

	if err := d.store.Insert(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("insert account: %w", err)
	}
	d.mirror = append(d.mirror, account)

	if d.exporter != nil {
		if err := d.exporter.SnapshotAccounts(d.mirror); err != nil {
			log.Printf("export accounts snapshot: %v", err)
		}
	}
	if d.events != nil {
		_ = d.events.PublishAccountCreated(ctx, queue.AccountCreatedEvent{
			Username:  account.Username,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return d.Refresh(ctx)
}

// Login authenticates against the mirror and issues a session bound
// to the username. The returned Session is the caller's proof of
// identity; every authorized operation takes it as an explicit
// parameter.
func (d *AccountDirectory) Login(username, password string) (model.Session, error) {
	account, ok := d.lookup(strings.TrimSpace(username))
	if !ok {
		return model.Session{}, ErrUnknownUser
	}
	if !utils.VerifyPassword(account.PasswordHash, password) {
		return model.Session{}, ErrInvalidCredentials
	}

	token, err := utils.NewSessionToken(d.secret, account.Username, d.ttlMin)
	if err != nil {
		return model.Session{}, fmt.Errorf("issue session: %w", err)
	}
	d.live[token.Token] = struct{}{}
	return model.Session{
		Username:  account.Username,
		Token:     token.Token,
		ExpiresAt: token.Exp,
	}, nil
}

// Logout removes the session from the live set unconditionally. A
// session that was never live is a no-op.
func (d *AccountDirectory) Logout(s model.Session) {
	delete(d.live, s.Token)
}

// Authorize validates a session and returns the username it is bound
// to. The token must be live (not logged out), carry a valid
// signature and be unexpired; anything else is ErrNotAuthenticated.
func (d *AccountDirectory) Authorize(s model.Session) (string, error) {
	if _, ok := d.live[s.Token]; !ok {
		return "", ErrNotAuthenticated
	}
	username, err := utils.ParseSessionToken(d.secret, s.Token)
	if err != nil {
		return "", ErrNotAuthenticated
	}
	return username, nil
}
