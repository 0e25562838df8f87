package metrics

import "github.com/prometheus/client_golang/prometheus"

// Verification outcome label values
const (
	OutcomeCollected        = "collected"
	OutcomeNotFound         = "not_found"
	OutcomeAlreadyCollected = "already_collected"
	OutcomeLockedOut        = "locked_out"
	OutcomeIncorrectCode    = "incorrect_code"
)

// ParcelMetrics groups the desk counters incremented by the parcel service.
type ParcelMetrics struct {
	Registered    prometheus.Counter
	Verifications *prometheus.CounterVec
	Pending       prometheus.Gauge
	Overdue       prometheus.Gauge
}

// NewParcelsRegisteredTotal returns a Prometheus counter for parcels registered at the desk
func NewParcelsRegisteredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parcels_registered_total",
		Help: "Total number of parcels registered at the desk",
	})
}

// NewParcelVerificationsTotal returns a Prometheus counter vector of verification attempts by outcome
func NewParcelVerificationsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parcel_verifications_total",
		Help: "Total number of parcel verification attempts by outcome",
	}, []string{"outcome"})
}

// NewParcelsPending returns a Prometheus gauge of parcels waiting at the desk
func NewParcelsPending() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "parcels_pending",
		Help: "Number of parcels waiting for collection",
	})
}

// NewParcelsOverdue returns a Prometheus gauge of parcels pending for more than 48 hours
func NewParcelsOverdue() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "parcels_overdue",
		Help: "Number of pending parcels older than 48 hours",
	})
}

// NewParcelMetrics builds unregistered parcel counters.
func NewParcelMetrics() *ParcelMetrics {
	return &ParcelMetrics{
		Registered:    NewParcelsRegisteredTotal(),
		Verifications: NewParcelVerificationsTotal(),
		Pending:       NewParcelsPending(),
		Overdue:       NewParcelsOverdue(),
	}
}

// Register registers every counter with reg.
func (m *ParcelMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Registered, m.Verifications, m.Pending, m.Overdue} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveDesk sets the desk gauges from a stats snapshot.
func (m *ParcelMetrics) ObserveDesk(pending, overdue int) {
	m.Pending.Set(float64(pending))
	m.Overdue.Set(float64(overdue))
}
