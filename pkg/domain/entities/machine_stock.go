package entities

// MachineStockEntry is the aggregate count of finished machines produced
// historically. It is incremented by build finalization and never
// decremented here.
type MachineStockEntry struct {
	Code string
	Name string
	Qty  Quantity
}
