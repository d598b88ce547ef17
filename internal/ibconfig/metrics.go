package ibconfig

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ib_instruments"

const (
	loadResultOK      = "ok"
	loadResultMissing = "missing"

	directionForward = "forward"
	directionReverse = "reverse"

	lookupResultOK        = "ok"
	lookupResultNotFound  = "not_found"
	lookupResultAmbiguous = "ambiguous"
	lookupResultNoSource  = "source_unavailable"
)

type l = prometheus.Labels

var (
	configLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "config",
		Name:      "loads_total",
		Help:      "Total amount of IB configuration loads",
	}, []string{"result"})

	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "lookups_total",
		Help:      "Total amount of instrument lookups",
	}, []string{"direction", "result"})
)

func collectLookup(direction, result string) {
	lookups.With(l{"direction": direction, "result": result}).Inc()
}
