package fee

import (
	"math"
	"time"

	"feecalc/internal/entities"
)

// Calculate возвращает стоимость доставки в минимальных единицах валюты.
// Заказ должен быть провалидирован до вызова, ошибок здесь нет.
func Calculate(order entities.Order, constants entities.FeeConstants) int64 {
	return Breakdown(order, constants).Total
}

// Breakdown прогоняет заказ через все правила по порядку:
// бесплатная доставка -> надбавки -> ограничение MaxFee -> час пик -> снова MaxFee.
func Breakdown(order entities.Order, constants entities.FeeConstants) entities.FeeBreakdown {
	if IsFreeDelivery(order.CartValue, constants) {
		return entities.FeeBreakdown{FreeDelivery: true}
	}

	breakdown := entities.FeeBreakdown{
		DistanceFee:         DistanceFee(order.DeliveryDistance, constants),
		ItemSurcharge:       ItemSurcharge(order.NumberOfItems, constants),
		SmallOrderSurcharge: SmallOrderSurcharge(order.CartValue, constants),
		BulkFee:             BulkFee(order.NumberOfItems, constants),
	}
	breakdown.Subtotal = saturatingAdd(
		breakdown.DistanceFee,
		breakdown.ItemSurcharge,
		breakdown.SmallOrderSurcharge,
		breakdown.BulkFee,
	)

	fee := min(breakdown.Subtotal, constants.MaxFee)

	if IsRushHour(order.Time, constants) {
		breakdown.RushHour = true
		fee = applyMultiplier(fee, constants.RushMultiplier)
	}

	breakdown.Total = min(fee, constants.MaxFee)
	breakdown.Capped = breakdown.Subtotal > constants.MaxFee || fee > constants.MaxFee

	return breakdown
}

func IsFreeDelivery(cartValue int64, constants entities.FeeConstants) bool {
	return cartValue >= constants.FreeDeliveryThreshold
}

// DistanceFee базовая ставка плюс AdditionalFee за каждый начатый интервал сверх базового расстояния.
func DistanceFee(distance int64, constants entities.FeeConstants) int64 {
	if distance <= constants.BaseDeliveryFeeDistance {
		return constants.BaseDeliveryFee
	}

	extra := distance - constants.BaseDeliveryFeeDistance
	intervals := extra / constants.AdditionalFeeDistance
	if extra%constants.AdditionalFeeDistance != 0 {
		intervals++
	}

	return saturatingAdd(constants.BaseDeliveryFee, saturatingMul(intervals, constants.AdditionalFee))
}

// ItemSurcharge начисляется начиная с AdditionalItemLimit-го товара включительно.
func ItemSurcharge(items int64, constants entities.FeeConstants) int64 {
	if items < constants.AdditionalItemLimit {
		return 0
	}

	billable := items - constants.AdditionalItemLimit + 1
	return saturatingMul(billable, constants.AdditionalItemSurcharge)
}

func SmallOrderSurcharge(cartValue int64, constants entities.FeeConstants) int64 {
	if cartValue < constants.SmallOrderThreshold {
		return constants.SmallOrderThreshold - cartValue
	}
	return 0
}

// BulkFee только строго больше порога, сам порог без сбора.
func BulkFee(items int64, constants entities.FeeConstants) int64 {
	if items > constants.BulkFeeThreshold {
		return constants.BulkFee
	}
	return 0
}

// IsRushHour проверяет день недели (понедельник = 0) и время суток по UTC.
// Обе границы окна включительно: 19:00:00 еще час пик, 19:00:00.000001 уже нет.
func IsRushHour(t time.Time, constants entities.FeeConstants) bool {
	utc := t.UTC()
	if weekdayIndex(utc.Weekday()) != constants.RushDeliveryDay {
		return false
	}

	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	sinceMidnight := utc.Sub(midnight)

	start := time.Duration(constants.RushDeliveryStart) * time.Hour
	end := time.Duration(constants.RushDeliveryEnd) * time.Hour

	return sinceMidnight >= start && sinceMidnight <= end
}

func weekdayIndex(day time.Weekday) int {
	// time.Weekday начинается с воскресенья
	return (int(day) + 6) % 7
}

// applyMultiplier округляет половину вверх до целого цента.
func applyMultiplier(fee int64, multiplier float64) int64 {
	result := math.Round(float64(fee) * multiplier)
	if result >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(result)
}

func saturatingAdd(values ...int64) int64 {
	var sum int64
	for _, v := range values {
		if v > 0 && sum > math.MaxInt64-v {
			return math.MaxInt64
		}
		sum += v
	}
	return sum
}

func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
