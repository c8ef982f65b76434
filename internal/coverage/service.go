package coverage

import (
	"fmt"
	"net/http"

	"github.com/velocart/delivery-coverage/internal/app"
	"github.com/velocart/delivery-coverage/internal/geometry"
	"github.com/velocart/delivery-coverage/internal/zone"
)

// Service is the coverage facade used by the two call sites: saving a
// delivery address and placing an order. Both run the same resolver
// over the same kind of snapshot, which is what keeps the two
// verdicts for one point consistent.
type Service struct{}

func New() *Service {
	return &Service{}
}

// ValidateAndResolveForSave resolves coverage for an address the
// customer is saving. On a match the caller must persist
// Decision.NormalizedCity, not the city the user typed, so later
// order-time queries compare against the canonical name.
func (s *Service) ValidateAndResolveForSave(zones []zone.Zone, point geometry.Point, city, society string) (Decision, error) {
	if err := validatePoint(point); err != nil {
		return Decision{}, err
	}

	return Resolve(zones, Query{Point: point, City: city, Society: society}), nil
}

// ValidateForOrder resolves coverage at order placement. It must be
// called with the customer's saved address, never a freshly supplied
// one, so the point being re-validated is the point that was
// validated at save time.
func (s *Service) ValidateForOrder(zones []zone.Zone, point geometry.Point, city string) (Decision, error) {
	if err := validatePoint(point); err != nil {
		return Decision{}, err
	}

	return Resolve(zones, Query{Point: point, City: city}), nil
}

// validatePoint is the engine's one true error condition: a query
// with a non-finite coordinate is a caller contract violation and
// fails fast. It is never coerced into a miss.
func validatePoint(p geometry.Point) error {
	if p.IsFinite() {
		return nil
	}

	return &app.ServerResponseError{
		Err:        fmt.Errorf("non-finite query point %v", []float64(p)),
		Msg:        "Latitude and longitude must be valid coordinates",
		StatusCode: http.StatusBadRequest,
	}
}
