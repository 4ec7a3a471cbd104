package fee_calculated

import (
	"time"

	"feecalc/internal/entities"
)

type Event struct {
	QuoteID          string    `json:"quote_id"`
	DeliveryFee      int64     `json:"delivery_fee"`
	CartValue        int64     `json:"cart_value"`
	DeliveryDistance int64     `json:"delivery_distance"`
	NumberOfItems    int64     `json:"number_of_items"`
	Time             time.Time `json:"time"`
	Breakdown        Breakdown `json:"breakdown"`
	CalculatedAt     time.Time `json:"calculated_at"`
}

type Breakdown struct {
	FreeDelivery        bool  `json:"free_delivery"`
	DistanceFee         int64 `json:"distance_fee"`
	ItemSurcharge       int64 `json:"item_surcharge"`
	SmallOrderSurcharge int64 `json:"small_order_surcharge"`
	BulkFee             int64 `json:"bulk_fee"`
	Subtotal            int64 `json:"subtotal"`
	RushHour            bool  `json:"rush_hour"`
	Capped              bool  `json:"capped"`
}

func toEvent(quote entities.FeeQuote) Event {
	return Event{
		QuoteID:          quote.ID,
		DeliveryFee:      quote.DeliveryFee,
		CartValue:        quote.Order.CartValue,
		DeliveryDistance: quote.Order.DeliveryDistance,
		NumberOfItems:    quote.Order.NumberOfItems,
		Time:             quote.Order.Time.UTC(),
		Breakdown: Breakdown{
			FreeDelivery:        quote.Breakdown.FreeDelivery,
			DistanceFee:         quote.Breakdown.DistanceFee,
			ItemSurcharge:       quote.Breakdown.ItemSurcharge,
			SmallOrderSurcharge: quote.Breakdown.SmallOrderSurcharge,
			BulkFee:             quote.Breakdown.BulkFee,
			Subtotal:            quote.Breakdown.Subtotal,
			RushHour:            quote.Breakdown.RushHour,
			Capped:              quote.Breakdown.Capped,
		},
		CalculatedAt: quote.CalculatedAt.UTC(),
	}
}
