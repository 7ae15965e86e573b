package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/pricing"
)

func TestDefaultTableFares(t *testing.T) {
	table := pricing.Default()

	// Test case 1: known pair plus known train is base + surcharge
	assert.Equal(t, 60000, table.Fare("Stasiun Jakarta", "Stasiun Bandung", "Jaka Tingkir"))
	assert.Equal(t, 150000, table.Fare("Stasiun Bandung", "Stasiun Brebes", "Cikuray"))

	// Test case 2: unknown pair contributes base 0, surcharge still applies
	assert.Equal(t, 15000, table.Fare("Stasiun Jakarta", "Stasiun Surabaya", "Lodaya"))

	// Test case 3: unknown train contributes surcharge 0, base still applies
	assert.Equal(t, 70000, table.Fare("Stasiun Gambir", "Stasiun Brebes", "Bima"))

	// Test case 4: both unknown resolves to 0, never an error
	assert.Equal(t, 0, table.Fare("Nowhere", "Elsewhere", "Ghost Train"))
}

func TestTableIsDirectional(t *testing.T) {
	table := pricing.New(
		map[pricing.Route]int{{Origin: "A", Destination: "B"}: 40000},
		map[string]int{"T1": 5000},
		[]string{"A", "B"},
		[]string{"T1"},
	)

	assert.Equal(t, 45000, table.Fare("A", "B", "T1"))
	// The reverse direction was never configured; only the surcharge remains.
	assert.Equal(t, 5000, table.Fare("B", "A", "T1"))
}

func TestTableMenuLists(t *testing.T) {
	table := pricing.Default()
	assert.Len(t, table.Stations(), 4)
	assert.Len(t, table.Trains(), 5)
	assert.Contains(t, table.Stations(), "Stasiun Gambir")
	assert.Contains(t, table.Trains(), "Argo Parahyangan")
}
