package fee_quote_requested

import (
	"context"
	"errors"
	"time"

	"feecalc/internal/pkg/validation"
	feeservice "feecalc/internal/service/fee"
	"feecalc/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	feeService               Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	publishRetryDelay        time.Duration
}

// New: retryDelay пауза перед выходом из ConsumeClaim после ошибки публикации,
// чтобы при открытом breaker группа не перебалансировалась без остановки.
func New(log handlerLogger, feeService Service, timeout, retryDelay time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "fee.quote.requested"),
	)

	return &Handler{
		feeService:               feeService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
		publishRetryDelay:        retryDelay,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("fee.quote.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("fee.quote.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать, не коммитя сообщение:
// после перезапуска сессии оно будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	quoteID := string(message.Key)
	msgLog := h.log.With(
		logger.NewField("quote_id", quoteID),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	order, err := validation.DecodeOrder(message.Value)
	if err != nil {
		msgLog.Warn("fee.quote.requested handler received bad message",
			logger.NewField("error", err),
		)
		sess.MarkMessage(message, "")
		return false
	}

	quote, err := h.feeService.QuoteDeliveryFee(ctx, quoteID, order)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("fee.quote.requested handler context cancelled, message will be reprocessed",
				logger.NewField("error", err),
			)
			return true

		case errors.Is(err, feeservice.ErrPublishFailed):
			msgLog.Error("fee.quote.requested handler failed to publish quote, message will be reprocessed",
				logger.NewField("error", err),
			)
			h.waitBeforeRetry(sess.Context())
			return true

		case errors.Is(err, feeservice.ErrInvalidQuoteID), errors.Is(err, feeservice.ErrInvalidOrder):
			msgLog.Warn("fee.quote.requested handler rejected message",
				logger.NewField("error", err),
			)

		default:
			msgLog.Error("fee.quote.requested handler failed to process message",
				logger.NewField("error", err),
			)
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("fee.quote.requested: processed",
		logger.NewField("delivery_fee", quote.DeliveryFee),
	)

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) waitBeforeRetry(ctx context.Context) {
	timer := time.NewTimer(h.publishRetryDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
