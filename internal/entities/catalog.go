package entities

import "errors"

// Colony is a named geozone; colony coordinates are the unit of address
// resolution for delivery-fee calculation.
type Colony struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

// Resolvable reports whether the colony carries usable coordinates.
// A zero/zero pair is the operator's "not located yet" placeholder.
func (c Colony) Resolvable() bool {
	return c.Lat != 0 || c.Lng != 0
}

// Settings is the operator-owned tariff singleton. It is read at
// order-creation time only; later edits never touch existing orders.
type Settings struct {
	BaseFee int
	KmRate  int
}

type Product struct {
	ID       string
	StoreID  string
	Name     string
	Price    int
	Category string
}

var (
	ErrColonyNotFound   = errors.New("colony not found")
	ErrSettingsNotFound = errors.New("settings not found")
)
