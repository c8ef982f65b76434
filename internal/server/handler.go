package server

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/velocart/delivery-coverage/internal/coverage"
	"github.com/velocart/delivery-coverage/internal/eta"
	"github.com/velocart/delivery-coverage/internal/metrics"
	"github.com/velocart/delivery-coverage/internal/pricing"
	"github.com/velocart/delivery-coverage/internal/zone"
)

// ZoneSource provides the active-zone snapshot that handlers resolve
// against.
type ZoneSource interface {
	Active(context.Context) ([]zone.Zone, error)
}

type Handler struct {
	logger   *log.Logger
	zones    ZoneSource
	coverage *coverage.Service
	pricing  *pricing.Calculator
}

func NewHandler(l *log.Logger) *Handler {
	return &Handler{
		logger: l,
	}
}

func (h *Handler) NewLogWriter(w http.ResponseWriter, r *http.Request) *LogWriter {
	return NewLogWriter(h.logger, w, r)
}

func (h *Handler) HelloWorld() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type res struct {
			Message string `json:"message"`
		}

		h.NewLogWriter(w, r).Write(Response{
			Status: http.StatusOK,
			Body:   res{Message: "Hello, World!"},
		})
	}
}

// coverageRes is the wire form of a coverage decision. The zone
// fields are present on a match, the closest-miss fields only when a
// geofence existed to measure against.
type coverageRes struct {
	Matched           bool     `json:"matched"`
	ZoneID            string   `json:"zone_id,omitempty"`
	MatchedVia        string   `json:"matched_via,omitempty"`
	NormalizedCity    string   `json:"normalized_city,omitempty"`
	ClosestDistanceKm *float64 `json:"closest_distance_km,omitempty"`
	ClosestRadiusKm   *float64 `json:"closest_radius_km,omitempty"`
	Reason            string   `json:"reason,omitempty"`
}

func newCoverageRes(d coverage.Decision) coverageRes {
	res := coverageRes{
		Matched:        d.Matched,
		ZoneID:         d.ZoneID,
		MatchedVia:     string(d.Via),
		NormalizedCity: d.NormalizedCity,
	}
	if d.Matched {
		return res
	}

	if d.Nearest != nil {
		distance := roundKm(d.Nearest.DistanceKm)
		radius := d.Nearest.RadiusKm
		res.ClosestDistanceKm = &distance
		res.ClosestRadiusKm = &radius
		res.Reason = fmt.Sprintf("Your location is %gkm away, but delivery is only available within %gkm", distance, radius)
	} else {
		res.Reason = "No delivery areas are configured for your location"
	}

	return res
}

// roundKm rounds a distance for presentation. The engine itself never
// rounds; only the response does.
func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func (h *Handler) countDecision(d coverage.Decision) {
	if d.Matched {
		metrics.MatchedTotal.WithLabelValues(string(d.Via)).Inc()
	} else {
		metrics.NoMatchTotal.Inc()
	}
}

// HandleValidateAddress resolves coverage for an address the customer
// is saving. A negative decision is a valid response, not an error;
// the body carries the best available diagnostic.
func (h *Handler) HandleValidateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writer := h.NewLogWriter(w, r)

		var payload addressPayload
		if err := decodeBody(r.Body, &payload); err != nil {
			writer.WriteError(err)
			return
		}
		if err := payload.validateCity(); err != nil {
			writer.WriteError(err)
			return
		}
		point, err := payload.Point()
		if err != nil {
			writer.WriteError(err)
			return
		}

		snapshot, err := h.zones.Active(ctx)
		if err != nil {
			h.logger.Printf("HandleValidateAddress: failed to load zone snapshot: %v", err)
			writer.WriteError(err)
			return
		}

		decision, err := h.coverage.ValidateAndResolveForSave(snapshot, point, payload.City, payload.Society)
		if err != nil {
			h.logger.Printf("HandleValidateAddress: failed to resolve (city=%q): %v", payload.City, err)
			writer.WriteError(err)
			return
		}
		h.countDecision(decision)

		writer.Write(Response{
			Status: http.StatusOK,
			Body:   newCoverageRes(decision),
		})
	}
}

// HandleOrderQuote resolves coverage for the customer's saved address
// at order placement and, on a match, quotes the delivery fee and the
// expected delivery window.
func (h *Handler) HandleOrderQuote() http.HandlerFunc {
	type res struct {
		coverageRes
		DeliveryFee          int    `json:"delivery_fee"`
		FreeCodDelivery      bool   `json:"free_cod_delivery"`
		MaxDays              int    `json:"max_days"`
		ExpectedDeliveryDate string `json:"expected_delivery_date"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writer := h.NewLogWriter(w, r)

		var payload orderPayload
		if err := decodeBody(r.Body, &payload); err != nil {
			writer.WriteError(err)
			return
		}
		if err := payload.validateCity(); err != nil {
			writer.WriteError(err)
			return
		}
		point, err := payload.Point()
		if err != nil {
			writer.WriteError(err)
			return
		}
		deliveryType, err := payload.deliveryType()
		if err != nil {
			writer.WriteError(err)
			return
		}
		orderDate, err := payload.orderDate()
		if err != nil {
			writer.WriteError(err)
			return
		}

		snapshot, err := h.zones.Active(ctx)
		if err != nil {
			h.logger.Printf("HandleOrderQuote: failed to load zone snapshot: %v", err)
			writer.WriteError(err)
			return
		}

		decision, err := h.coverage.ValidateForOrder(snapshot, point, payload.City)
		if err != nil {
			h.logger.Printf("HandleOrderQuote: failed to resolve (city=%q): %v", payload.City, err)
			writer.WriteError(err)
			return
		}
		h.countDecision(decision)

		if !decision.Matched {
			writer.Write(Response{
				Status: http.StatusOK,
				Body:   newCoverageRes(decision),
			})
			return
		}

		method := pricing.PaymentMethod(payload.PaymentMethod)
		window := eta.Estimate(orderDate, deliveryType)

		writer.Write(Response{
			Status: http.StatusOK,
			Body: res{
				coverageRes:          newCoverageRes(decision),
				DeliveryFee:          h.pricing.Fee(method, deliveryType, payload.PriorCodOrders),
				FreeCodDelivery:      method == pricing.MethodCOD && pricing.FirstCodOrderFree(payload.PriorCodOrders),
				MaxDays:              window.MaxDays,
				ExpectedDeliveryDate: window.ExpectedDate.Format("2006-01-02"),
			},
		})
	}
}
