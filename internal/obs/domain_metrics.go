package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteTotal counts quote computations by delivery pricing type.
	QuoteTotal *prometheus.CounterVec
	// InvoiceReconcileTotal counts invoice reconciliation runs.
	InvoiceReconcileTotal prometheus.Counter
	// CatalogRefreshTotal counts catalog cache invalidations.
	CatalogRefreshTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_total",
			Help:      "Count of quote computations by delivery pricing type.",
		}, []string{"pricing_type"})
		InvoiceReconcileTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_reconcile_total",
			Help:      "Count of invoice reconciliation computations.",
		})
		CatalogRefreshTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_refresh_total",
			Help:      "Count of delivery-catalog cache invalidations.",
		})
		reg.MustRegister(QuoteTotal, InvoiceReconcileTotal, CatalogRefreshTotal)
	})
}

// ObserveQuote records one quote computation. Safe to call before metrics
// registration; it is then a no-op.
func ObserveQuote(pricingType string) {
	if QuoteTotal == nil {
		return
	}
	if pricingType == "" {
		pricingType = "none"
	}
	QuoteTotal.WithLabelValues(pricingType).Inc()
}

// ObserveInvoiceReconcile records one reconciliation run.
func ObserveInvoiceReconcile() {
	if InvoiceReconcileTotal == nil {
		return
	}
	InvoiceReconcileTotal.Inc()
}

// ObserveCatalogRefresh records one catalog invalidation.
func ObserveCatalogRefresh() {
	if CatalogRefreshTotal == nil {
		return
	}
	CatalogRefreshTotal.Inc()
}
