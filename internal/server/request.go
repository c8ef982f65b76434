package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/velocart/delivery-coverage/internal/geometry"
	"github.com/velocart/delivery-coverage/internal/pricing"
)

type RequestBodyError struct {
	Msg string
	error
}

func (r *RequestBodyError) ServerErrorResponse() (int, string) {
	return http.StatusBadRequest, r.Msg
}

// addressPayload is the body of the save-address validation request.
// Lat and Lon are pointers so an absent coordinate can be told apart
// from a zero one.
type addressPayload struct {
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	City    string   `json:"city"`
	Society string   `json:"society"`
}

// orderPayload is the body of the order quote request. The address
// fields must come from the customer's saved address.
type orderPayload struct {
	addressPayload
	PaymentMethod  string `json:"payment_method"`
	DeliveryType   string `json:"delivery_type"`
	PriorCodOrders int    `json:"prior_cod_orders"`
	OrderDate      string `json:"order_date"`
}

func decodeBody(body io.Reader, v any) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return &RequestBodyError{
			Msg:   "Invalid request body",
			error: fmt.Errorf("decoding request body: %w", err),
		}
	}

	return nil
}

// Point validates the payload coordinates and returns them as a
// geometry.Point. Missing, non-finite, or out-of-range coordinates
// are rejected; they are never silently treated as a miss.
func (p *addressPayload) Point() (geometry.Point, error) {
	if p.Lat == nil || p.Lon == nil {
		return geometry.Point{}, &RequestBodyError{
			Msg:   "lat and lon are required",
			error: fmt.Errorf("missing coordinates (lat=%v, lon=%v)", p.Lat, p.Lon),
		}
	}

	lat, lon := *p.Lat, *p.Lon
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return geometry.Point{}, &RequestBodyError{
			Msg:   "lat must be a valid latitude",
			error: fmt.Errorf("invalid latitude %f", lat),
		}
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return geometry.Point{}, &RequestBodyError{
			Msg:   "lon must be a valid longitude",
			error: fmt.Errorf("invalid longitude %f", lon),
		}
	}

	return geometry.NewPoint(lon, lat), nil
}

func (p *addressPayload) validateCity() error {
	if p.City == "" {
		return &RequestBodyError{
			Msg:   "city is required",
			error: fmt.Errorf("missing city"),
		}
	}

	return nil
}

// deliveryType validates the speed tier.
func (p *orderPayload) deliveryType() (pricing.DeliveryType, error) {
	switch pricing.DeliveryType(p.DeliveryType) {
	case pricing.Express:
		return pricing.Express, nil
	case pricing.Standard, "":
		return pricing.Standard, nil
	default:
		return "", &RequestBodyError{
			Msg:   "delivery_type must be EXPRESS or STANDARD",
			error: fmt.Errorf("invalid delivery type %q", p.DeliveryType),
		}
	}
}

// orderDate parses the order date, defaulting to today.
func (p *orderPayload) orderDate() (time.Time, error) {
	if p.OrderDate == "" {
		return time.Now(), nil
	}

	t, err := time.Parse("2006-01-02", p.OrderDate)
	if err != nil {
		return time.Time{}, &RequestBodyError{
			Msg:   "order_date must be formatted as YYYY-MM-DD",
			error: fmt.Errorf("parsing order date %q: %w", p.OrderDate, err),
		}
	}

	return t, nil
}
