package fee

import (
	"context"
	"fmt"
	"time"

	"feecalc/internal/entities"
	"feecalc/pkg/logger"
	"github.com/google/uuid"
)

type Fee struct {
	log       serviceLogger
	constants entities.FeeConstants
	publisher EventPublisher
}

func New(log serviceLogger, constants entities.FeeConstants, publisher EventPublisher) *Fee {
	return &Fee{
		log:       log,
		constants: constants,
		publisher: publisher,
	}
}

func (s *Fee) Constants() entities.FeeConstants {
	return s.constants
}

// CalculateDeliveryFee считает стоимость для HTTP запроса.
// Событие публикуется по возможности, ошибка публикации только логируется.
func (s *Fee) CalculateDeliveryFee(ctx context.Context, order entities.Order) (*entities.FeeQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("calculate delivery fee: %w", err)
	}

	quote, err := s.quote(uuid.NewString(), order)
	if err != nil {
		return nil, err
	}

	err = s.publisher.PublishFeeCalculated(ctx, *quote)
	if err != nil {
		s.log.Warn("failed to publish fee calculated event",
			logger.NewField("quote_id", quote.ID),
			logger.NewField("error", err),
		)
	}

	return quote, nil
}

// QuoteDeliveryFee считает стоимость для сообщения из очереди.
// Без опубликованного события котировка считается не выполненной.
func (s *Fee) QuoteDeliveryFee(ctx context.Context, quoteID string, order entities.Order) (*entities.FeeQuote, error) {
	if !isValidQuoteID(quoteID) {
		return nil, ErrInvalidQuoteID
	}

	quote, err := s.quote(quoteID, order)
	if err != nil {
		return nil, err
	}

	err = s.publisher.PublishFeeCalculated(ctx, *quote)
	if err != nil {
		return nil, fmt.Errorf("%w: quote %s: %w", ErrPublishFailed, quoteID, err)
	}

	s.log.Info("fee quote published",
		logger.NewField("quote_id", quote.ID),
		logger.NewField("delivery_fee", quote.DeliveryFee),
	)

	return quote, nil
}

func (s *Fee) quote(id string, order entities.Order) (*entities.FeeQuote, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	breakdown := Breakdown(order, s.constants)
	observe(breakdown)

	return &entities.FeeQuote{
		ID:           id,
		Order:        order,
		Breakdown:    breakdown,
		DeliveryFee:  breakdown.Total,
		CalculatedAt: time.Now().UTC(),
	}, nil
}
