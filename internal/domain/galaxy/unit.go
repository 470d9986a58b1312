package galaxy

// UnitKind identifies one of the unit types produced by specialized stars
type UnitKind string

const (
	UnitWarship       UnitKind = "WARSHIP"
	UnitMiningShip    UnitKind = "MINING_SHIP"
	UnitFarmer        UnitKind = "FARMER"
	UnitScientist     UnitKind = "SCIENTIST"
	UnitDoctor        UnitKind = "DOCTOR"
	UnitBuilder       UnitKind = "BUILDER"
	UnitStorageModule UnitKind = "STORAGE_MODULE"
)

// Unit is a batch of units produced in a single production cycle
type Unit struct {
	Kind  UnitKind
	Count int
}
