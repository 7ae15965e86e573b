// Package pricing holds the static fare table for the rail network:
// a base price per ordered (origin, destination) station pair and a
// flat surcharge per train. Lookups never fail — unknown pairs and
// unknown trains contribute zero. Validating that a route or train
// actually exists is the caller's job.
package pricing

// Route is an ordered station pair. The table is directional: A→B
// and B→A are independent entries, even though the default network
// happens to be populated symmetrically.
type Route struct {
	Origin      string
	Destination string
}

// Table maps routes to base prices and trains to surcharges.
type Table struct {
	basePrices map[Route]int
	surcharges map[string]int
	stations   []string
	trains     []string
}

// New builds a Table from explicit price maps. The station and train
// lists preserve the given order for menu rendering.
func New(basePrices map[Route]int, surcharges map[string]int, stations, trains []string) *Table {
	return &Table{
		basePrices: basePrices,
		surcharges: surcharges,
		stations:   stations,
		trains:     trains,
	}
}

// Default returns the fare table for the served network: four
// stations on the Jakarta–Bandung–Brebes corridor and five named
// trains.
func Default() *Table {
	return New(
		map[Route]int{
			{"Stasiun Jakarta", "Stasiun Bandung"}: 50000,
			{"Stasiun Jakarta", "Stasiun Gambir"}:  20000,
			{"Stasiun Jakarta", "Stasiun Brebes"}:  80000,
			{"Stasiun Bandung", "Stasiun Gambir"}:  60000,
			{"Stasiun Bandung", "Stasiun Brebes"}:  100000,
			{"Stasiun Bandung", "Stasiun Jakarta"}: 50000,
			{"Stasiun Gambir", "Stasiun Brebes"}:   70000,
			{"Stasiun Gambir", "Stasiun Jakarta"}:  20000,
			{"Stasiun Gambir", "Stasiun Bandung"}:  60000,
			{"Stasiun Brebes", "Stasiun Jakarta"}:  80000,
			{"Stasiun Brebes", "Stasiun Bandung"}:  100000,
			{"Stasiun Brebes", "Stasiun Gambir"}:   70000,
		},
		map[string]int{
			"Jaka Tingkir":     10000,
			"Lodaya":           15000,
			"Argo Parahyangan": 20000,
			"Serayu":           22000,
			"Cikuray":          50000,
		},
		[]string{"Stasiun Bandung", "Stasiun Gambir", "Stasiun Brebes", "Stasiun Jakarta"},
		[]string{"Jaka Tingkir", "Lodaya", "Argo Parahyangan", "Serayu", "Cikuray"},
	)
}

// Fare returns base price for the ordered (origin, destination) pair
// plus the surcharge for the train. Missing entries count as zero on
// either side; no error is ever returned.
func (t *Table) Fare(origin, destination, train string) int {
	return t.basePrices[Route{Origin: origin, Destination: destination}] + t.surcharges[train]
}

// Stations lists the known stations in menu order.
func (t *Table) Stations() []string { return t.stations }

// Trains lists the known trains in menu order.
func (t *Table) Trains() []string { return t.trains }
