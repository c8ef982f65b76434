package eta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/velocart/delivery-coverage/internal/pricing"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	orderDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		deliveryType pricing.DeliveryType
		wantMaxDays  int
		wantDate     time.Time
	}{
		{
			name:         "express",
			deliveryType: pricing.Express,
			wantMaxDays:  2,
			wantDate:     time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "standard",
			deliveryType: pricing.Standard,
			wantMaxDays:  5,
			wantDate:     time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := Estimate(orderDate, tt.deliveryType)
			assert.Equal(t, tt.wantMaxDays, w.MaxDays)
			assert.Equal(t, tt.wantDate, w.ExpectedDate)
		})
	}
}

func TestEstimateCrossesMonthEnd(t *testing.T) {
	t.Parallel()

	orderDate := time.Date(2024, time.January, 30, 9, 30, 0, 0, time.UTC)

	w := Estimate(orderDate, pricing.Standard)
	assert.Equal(t, time.Date(2024, time.February, 4, 9, 30, 0, 0, time.UTC), w.ExpectedDate)
}
