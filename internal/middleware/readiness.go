package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/victorjanco1992/despensa-app/internal/apierror"

	"github.com/gin-gonic/gin"
)

// ReadyState is the typed lifecycle state of the backing store. It replaces
// the bare "is database ready" boolean the first deployment used to guard
// request handling.
type ReadyState int32

const (
	StateInitializing ReadyState = iota
	StateReady
	StateFailed
)

func (s ReadyState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReadinessProbe holds the current state; safe for concurrent use.
type ReadinessProbe struct {
	state atomic.Int32
}

func NewReadinessProbe() *ReadinessProbe {
	return &ReadinessProbe{}
}

func (p *ReadinessProbe) Set(s ReadyState)  { p.state.Store(int32(s)) }
func (p *ReadinessProbe) State() ReadyState { return ReadyState(p.state.Load()) }

// Readiness rejects API traffic with 503 until the store is ready. Failed
// stays failed: a broken startup needs a restart, not retries.
func Readiness(p *ReadinessProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := p.State(); s != StateReady {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				apierror.New("Servicio no disponible: base de datos "+s.String()))
			return
		}
		c.Next()
	}
}
