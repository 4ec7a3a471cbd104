package fee

import (
	"fmt"
	"strings"

	"feecalc/internal/entities"
)

func validateOrder(order entities.Order) error {
	if order.CartValue <= 0 {
		return fmt.Errorf("%w: cart value must be positive, got %d", ErrInvalidOrder, order.CartValue)
	}
	if order.DeliveryDistance <= 0 {
		return fmt.Errorf("%w: delivery distance must be positive, got %d", ErrInvalidOrder, order.DeliveryDistance)
	}
	if order.NumberOfItems <= 0 {
		return fmt.Errorf("%w: number of items must be positive, got %d", ErrInvalidOrder, order.NumberOfItems)
	}
	if order.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidOrder)
	}
	return nil
}

func isValidQuoteID(id string) bool {
	return strings.TrimSpace(id) != ""
}
