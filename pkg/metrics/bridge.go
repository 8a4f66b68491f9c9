package metrics

import "github.com/prometheus/client_golang/prometheus"

// BridgeMetrics records cross-window message traffic.
type BridgeMetrics struct {
	posted    *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	inbound   *prometheus.CounterVec
	completed prometheus.Counter
}

// NewBridgeMetrics registers the bridge metrics on the provided registerer.
func NewBridgeMetrics(reg prometheus.Registerer) *BridgeMetrics {
	if reg == nil {
		return &BridgeMetrics{}
	}
	posted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_messages_posted",
		Help: "Cart payloads posted to the checkout surface.",
	}, []string{"merchant"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_messages_dropped",
		Help: "Cart payloads dropped because the surface was unreachable at delay expiry.",
	}, []string{"merchant"})
	inbound := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_messages_inbound",
		Help: "Messages received from the checkout surface, by kind.",
	}, []string{"kind"})
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bridge_orders_completed",
		Help: "Order completion signals received.",
	})
	reg.MustRegister(posted, dropped, inbound, completed)
	return &BridgeMetrics{
		posted:    posted,
		dropped:   dropped,
		inbound:   inbound,
		completed: completed,
	}
}

// IncPosted counts a payload handed to the surface's content window.
func (b *BridgeMetrics) IncPosted(merchant string) {
	if b == nil || b.posted == nil {
		return
	}
	b.posted.WithLabelValues(normalizeLabel(merchant)).Inc()
}

// IncDropped counts a payload that never left because the surface was gone.
func (b *BridgeMetrics) IncDropped(merchant string) {
	if b == nil || b.dropped == nil {
		return
	}
	b.dropped.WithLabelValues(normalizeLabel(merchant)).Inc()
}

// IncInbound counts a message received from the checkout origin.
func (b *BridgeMetrics) IncInbound(kind string) {
	if b == nil || b.inbound == nil {
		return
	}
	b.inbound.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncCompleted counts an order-complete signal.
func (b *BridgeMetrics) IncCompleted() {
	if b == nil || b.completed == nil {
		return
	}
	b.completed.Inc()
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
