package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travelband_api_requests_total",
			Help: "Total number of API requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travelband_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Workflow metrics
	ActivitiesShared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "travelband_activities_shared_total",
			Help: "Total number of activities shared into travel band folders",
		},
	)

	ReactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travelband_reactions_total",
			Help: "Total number of reaction changes by action",
		},
		[]string{"action"},
	)

	TravelBandsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "travelband_travel_bands_created_total",
			Help: "Total number of travel bands created",
		},
	)

	FoldersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "travelband_folders_created_total",
			Help: "Total number of folders created",
		},
	)

	SpottersInvited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "travelband_spotters_invited_total",
			Help: "Total number of spotters invited to travel bands",
		},
	)

	DatastoreErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "travelband_datastore_errors_total",
			Help: "Total number of datastore failures surfaced to clients",
		},
	)
)

func init() {
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(ActivitiesShared)
	prometheus.MustRegister(ReactionsTotal)
	prometheus.MustRegister(TravelBandsCreated)
	prometheus.MustRegister(FoldersCreated)
	prometheus.MustRegister(SpottersInvited)
	prometheus.MustRegister(DatastoreErrors)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
