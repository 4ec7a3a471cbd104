package openapi_get

import (
	"net/http"
	"strconv"

	"feecalc/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	document []byte
}

func New(log handlerLogger, document []byte) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "openapi_get"),
	)

	return &Handler{
		log:      handlerLog,
		document: document,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.document)))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	_, err := w.Write(h.document)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write openapi document")
	}
}
