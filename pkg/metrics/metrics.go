package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics holds Prometheus metrics for a service
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
	CacheRequests    *prometheus.CounterVec
	CacheEntries     *prometheus.GaugeVec
}

// NewMetrics creates a new metrics instance on the default registry.
// Call it once per process; tests that need isolation should use
// NewMetricsWithRegistry instead.
func NewMetrics(serviceName string) *Metrics {
	return NewMetricsWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a new metrics instance registered on reg
func NewMetricsWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		RequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
			[]string{"method"},
		),
		CacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "cache_requests_total",
				Help:      "Cache lookups by outcome",
			},
			[]string{"cache", "result"},
		),
		CacheEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "cache_entries",
				Help:      "Number of entries held per cache",
			},
			[]string{"cache"}, // cache is: conversion, format
		),
	}
}

// RecordCacheLookup records a cache lookup outcome
func (m *Metrics) RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheRequests.WithLabelValues(cache, result).Inc()
}

// SetCacheEntries records the current entry count of a cache
func (m *Metrics) SetCacheEntries(cache string, count int) {
	m.CacheEntries.WithLabelValues(cache).Set(float64(count))
}

// UnaryServerInterceptor returns a new unary server interceptor for metrics
func UnaryServerInterceptor(metrics *Metrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		method := info.FullMethod

		metrics.RequestsInFlight.WithLabelValues(method).Inc()
		defer metrics.RequestsInFlight.WithLabelValues(method).Dec()

		start := time.Now()
		defer func() {
			metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		}()

		resp, err := handler(ctx, req)

		statusCode := "ok"
		if err != nil {
			st, _ := status.FromError(err)
			statusCode = st.Code().String()
		}
		metrics.RequestCounter.WithLabelValues(method, statusCode).Inc()

		return resp, err
	}
}

// StreamServerInterceptor returns a new stream server interceptor for metrics
func StreamServerInterceptor(metrics *Metrics) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		method := info.FullMethod

		metrics.RequestsInFlight.WithLabelValues(method).Inc()
		defer metrics.RequestsInFlight.WithLabelValues(method).Dec()

		start := time.Now()
		defer func() {
			metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		}()

		err := handler(srv, stream)

		statusCode := "ok"
		if err != nil {
			st, _ := status.FromError(err)
			statusCode = st.Code().String()
		}
		metrics.RequestCounter.WithLabelValues(method, statusCode).Inc()

		return err
	}
}
