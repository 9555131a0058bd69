// Package instrument provides [reactivity.Observer] implementations:
// structured logs with zerolog and counters with Prometheus.
//
//	metrics := instrument.NewMetrics(instrument.WithRegistry(reg))
//	reactivity.SetObserver(instrument.Multi(
//	    instrument.NewLogger(log.Logger),
//	    metrics,
//	))
package instrument
