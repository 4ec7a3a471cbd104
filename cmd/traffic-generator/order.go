package main

import (
	"math/rand/v2"
	"time"

	"feecalc/internal/generated/dto"
)

// randomOrder покрывает все ветки расчета: бесплатную доставку, малый заказ,
// надбавки за позиции, bulk и часы пик.
func randomOrder(r *rand.Rand, now time.Time) dto.DeliveryFeeRequest {
	cartValue := int64(100 + r.IntN(25_000))
	distance := int64(100 + r.IntN(6_000))
	items := int64(1 + r.IntN(20))

	// треть запросов в пятничный час пик
	at := now.UTC()
	if r.IntN(3) == 0 {
		at = nextFridayRush(at, r.IntN(4*60))
	}

	return dto.DeliveryFeeRequest{
		CartValue:        cartValue,
		DeliveryDistance: distance,
		NumberOfItems:    items,
		Time:             at,
	}
}

func nextFridayRush(now time.Time, offsetMinutes int) time.Time {
	daysUntilFriday := (int(time.Friday) - int(now.Weekday()) + 7) % 7
	day := now.AddDate(0, 0, daysUntilFriday)
	return time.Date(day.Year(), day.Month(), day.Day(), 15, 0, 0, 0, time.UTC).
		Add(time.Duration(offsetMinutes) * time.Minute)
}
