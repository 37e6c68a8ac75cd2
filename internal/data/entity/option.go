package entity

// OptionKind separates the two provider catalogs
type OptionKind string

const (
	OptionKindTransport OptionKind = "transport"
	OptionKindHotel     OptionKind = "hotel"
)

// DefaultCatalogKey is the reserved catalog entry served for destinations
// without their own entry.
const DefaultCatalogKey = "Default"

// Option is one priced entry from a provider catalog. Transport unit cost
// is a one-way price; hotel unit cost is a price per night. Options are
// immutable after catalog load and shared across concurrent sessions.
type Option struct {
	Name        string     `db:"name"`
	Kind        OptionKind `db:"kind"`
	UnitCost    float64    `db:"unit_cost"`
	Destination string     `db:"destination"`
}
