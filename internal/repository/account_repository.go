package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
)

type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Insert writes one account row. A taken username is reported as
// ErrDuplicateKey.
func (r *AccountRepo) Insert(ctx context.Context, a model.Account) error {
	username := strings.TrimSpace(a.Username)
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (username, password_hash) VALUES (?,?)",
		username, a.PasswordHash)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// All returns every account ordered by username.
func (r *AccountRepo) All(ctx context.Context) ([]model.Account, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT username, password_hash FROM accounts ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.Username, &a.PasswordHash); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
