// Package fee computes delivery fees from colony coordinates and tariff
// settings. Everything here is pure; callers lock the result into the order
// at creation time.
package fee

import (
	"math"

	"github.com/prontomx/delivery-service/internal/entities"
)

// EarthRadiusKm is Earth's radius in kilometers for the Haversine formula.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinate pairs
// in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Quote is a computed delivery fee split. DeliveryFee is what the customer
// pays on top of the subtotal, DriverFee is the driver's share of it.
type Quote struct {
	DriverFee   int
	DeliveryFee int
}

// Calculate prices the trip between a customer colony and a store colony.
// The driver fee is the distance at KmRate, rounded up to whole currency
// units and floored at one KmRate unit so drivers are paid for at least one
// kilometer on short hops.
func Calculate(customer, store entities.Colony, s entities.Settings) Quote {
	dist := HaversineKm(customer.Lat, customer.Lng, store.Lat, store.Lng)

	driverFee := int(math.Ceil(dist * float64(s.KmRate)))
	if driverFee < s.KmRate {
		driverFee = s.KmRate
	}

	return Quote{
		DriverFee:   driverFee,
		DeliveryFee: driverFee + s.BaseFee,
	}
}

// Subtotal sums item prices at order quantities. Prices must already come
// from the authoritative product table, never from client input.
func Subtotal(items []entities.OrderItem) int {
	var sum int
	for _, it := range items {
		sum += it.Product.Price * it.Quantity
	}
	return sum
}
