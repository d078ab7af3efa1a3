package fee_test

import (
	"testing"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/fee"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		delta                  float64
	}{
		{
			name: "same point",
			lat1: 19.0, lng1: -99.0, lat2: 19.0, lng2: -99.0,
			want: 0, delta: 0.0001,
		},
		{
			name: "neighbouring colonies",
			lat1: 19.0, lng1: -99.0, lat2: 19.05, lng2: -99.05,
			want: 7.65, delta: 0.01,
		},
		{
			name: "across town",
			lat1: 19.432608, lng1: -99.133209, lat2: 19.427, lng2: -99.1677,
			want: 3.67, delta: 0.01,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := fee.HaversineKm(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			assert.InDelta(t, tc.want, got, tc.delta)
		})
	}
}

func TestCalculate(t *testing.T) {
	settings := entities.Settings{BaseFee: 15, KmRate: 5}

	testCases := []struct {
		name            string
		customer, store entities.Colony
		settings        entities.Settings
		wantDriverFee   int
		wantDeliveryFee int
	}{
		{
			name:            "regular trip rounds the driver fee up",
			customer:        entities.Colony{Lat: 19.0, Lng: -99.0},
			store:           entities.Colony{Lat: 19.05, Lng: -99.05},
			settings:        settings,
			wantDriverFee:   39, // ceil(7.65km * 5)
			wantDeliveryFee: 54,
		},
		{
			name:            "same colony still pays the one kilometre floor",
			customer:        entities.Colony{Lat: 19.0, Lng: -99.0},
			store:           entities.Colony{Lat: 19.0, Lng: -99.0},
			settings:        settings,
			wantDriverFee:   5,
			wantDeliveryFee: 20,
		},
		{
			name:            "very short hop floors at one KmRate unit",
			customer:        entities.Colony{Lat: 19.0001, Lng: -99.0001},
			store:           entities.Colony{Lat: 19.0, Lng: -99.0},
			settings:        settings,
			wantDriverFee:   5,
			wantDeliveryFee: 20,
		},
		{
			name:            "different tariff",
			customer:        entities.Colony{Lat: 19.0, Lng: -99.0},
			store:           entities.Colony{Lat: 19.05, Lng: -99.05},
			settings:        entities.Settings{BaseFee: 10, KmRate: 8},
			wantDriverFee:   62, // ceil(7.65km * 8)
			wantDeliveryFee: 72,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := fee.Calculate(tc.customer, tc.store, tc.settings)
			assert.Equal(t, tc.wantDriverFee, got.DriverFee)
			assert.Equal(t, tc.wantDeliveryFee, got.DeliveryFee)
			assert.GreaterOrEqual(t, got.DriverFee, tc.settings.KmRate)
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	customer := entities.Colony{Lat: 19.4326, Lng: -99.1332}
	store := entities.Colony{Lat: 19.3910, Lng: -99.2837}
	settings := entities.Settings{BaseFee: 15, KmRate: 5}

	first := fee.Calculate(customer, store, settings)
	for range 100 {
		assert.Equal(t, first, fee.Calculate(customer, store, settings))
	}
}

func TestSubtotal(t *testing.T) {
	items := []entities.OrderItem{
		{Product: entities.ProductSnapshot{Price: 120}, Quantity: 2},
		{Product: entities.ProductSnapshot{Price: 45}, Quantity: 1},
	}
	assert.Equal(t, 285, fee.Subtotal(items))
	assert.Equal(t, 0, fee.Subtotal(nil))
}
