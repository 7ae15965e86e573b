package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/service"
)

func newDirectory(store *fakeAccountStore) *service.AccountDirectory {
	// No exporter and no publisher: side channels are optional and the
	// directory must work without them.
	return service.NewAccountDirectory(store, nil, nil, "test-secret", 60, bcrypt.MinCost)
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	store := &fakeAccountStore{}
	dir := newDirectory(store)

	// Test case 1: successful creation lands in store and mirror
	require.NoError(t, dir.CreateAccount(ctx, "alice", "pw1"))
	require.Len(t, store.accounts, 1)
	assert.Equal(t, "alice", store.accounts[0].Username)
	assert.NotEqual(t, "pw1", store.accounts[0].PasswordHash)

	// Test case 2: second creation with the same username fails
	err := dir.CreateAccount(ctx, "alice", "other")
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)

	// Test case 3: the mirror retains exactly one entry for the name
	count := 0
	for _, a := range dir.Accounts() {
		if a.Username == "alice" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, store.accounts, 1)
}

func TestCreateAccountDuplicateCaughtByStore(t *testing.T) {
	ctx := context.Background()
	store := &fakeAccountStore{accounts: []model.Account{{Username: "alice", PasswordHash: "x"}}}
	// The directory has not refreshed, so its mirror does not know
	// about alice; the store's key constraint is the last line of
	// defense and must still surface as a duplicate-username error.
	dir := newDirectory(store)

	err := dir.CreateAccount(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestCreateAccountGatewayFailure(t *testing.T) {
	ctx := context.Background()
	store := &fakeAccountStore{insertErr: errGatewayDown}
	dir := newDirectory(store)

	// A plain gateway failure is surfaced, never interpreted as a
	// duplicate and never swallowed.
	err := dir.CreateAccount(ctx, "alice", "pw1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errGatewayDown)
	assert.NotErrorIs(t, err, service.ErrDuplicateUsername)
	assert.Empty(t, dir.Accounts())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(&fakeAccountStore{})
	require.NoError(t, dir.CreateAccount(ctx, "alice", "pw1"))

	// Test case 1: unknown user
	_, err := dir.Login("bob", "pw1")
	assert.ErrorIs(t, err, service.ErrUnknownUser)

	// Test case 2: wrong password, including case variants and prefixes
	for _, pw := range []string{"PW1", "pw", "pw12", ""} {
		_, err := dir.Login("alice", pw)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials, "password %q", pw)
	}

	// Test case 3: successful login yields an authorized session
	session, err := dir.Login("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	require.NotEmpty(t, session.Token)

	username, err := dir.Authorize(session)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestAuthorizeRejections(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(&fakeAccountStore{})
	require.NoError(t, dir.CreateAccount(ctx, "alice", "pw1"))

	// Test case 1: a hand-built session was never issued
	_, err := dir.Authorize(model.Session{Username: "alice", Token: "forged"})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	// Test case 2: logout revokes the session before its expiry
	session, err := dir.Login("alice", "pw1")
	require.NoError(t, err)
	dir.Logout(session)
	_, err = dir.Authorize(session)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	// Test case 3: logging out twice stays a no-op
	dir.Logout(session)
	_, err = dir.Authorize(session)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestRefreshReplacesMirrorWholesale(t *testing.T) {
	ctx := context.Background()
	store := &fakeAccountStore{}
	dir := newDirectory(store)
	require.NoError(t, dir.CreateAccount(ctx, "alice", "pw1"))

	// Another writer adds a row behind the directory's back.
	store.accounts = append(store.accounts, model.Account{Username: "bob", PasswordHash: "y"})

	require.NoError(t, dir.Refresh(ctx))
	assert.Len(t, dir.Accounts(), 2)
}
