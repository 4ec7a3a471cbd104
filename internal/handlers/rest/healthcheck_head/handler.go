package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// ReadinessChecker зависимость, без которой инстанс не должен получать трафик.
type ReadinessChecker interface {
	Ready() bool
}

type Handler struct {
	isShuttingDown *atomic.Bool
	checkers       []ReadinessChecker
}

func New(isShuttingDown *atomic.Bool, checkers ...ReadinessChecker) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		checkers:       checkers,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	for _, checker := range h.checkers {
		if !checker.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
