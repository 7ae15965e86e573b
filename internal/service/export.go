package service

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
)

// Exporter writes full mirror snapshots to flat comma-delimited files,
// one per entity kind. The files are a convenience side channel with
// no read path; correctness never depends on them, so callers log an
// export failure and move on.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter { return &Exporter{dir: dir} }

// SnapshotAccounts replaces <dir>/accounts.csv with the given mirror.
func (e *Exporter) SnapshotAccounts(accounts []model.Account) error {
	records := [][]string{{"username", "password_hash"}}
	for _, a := range accounts {
		records = append(records, []string{a.Username, a.PasswordHash})
	}
	return e.write("accounts.csv", records)
}

// SnapshotTickets replaces <dir>/tickets.csv with the given mirror.
func (e *Exporter) SnapshotTickets(tickets []model.Ticket) error {
	records := [][]string{{
		"booking_reference", "owner_username", "passenger_name", "passenger_id",
		"train_name", "origin_station", "destination_station", "fare",
	}}
	for _, t := range tickets {
		records = append(records, []string{
			t.BookingReference, t.OwnerUsername, t.PassengerName, t.PassengerID,
			t.TrainName, t.OriginStation, t.DestinationStation, strconv.Itoa(t.Fare),
		})
	}
	return e.write("tickets.csv", records)
}

func (e *Exporter) write(name string, records [][]string) error {
	f, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
