package entities

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidFeeConstants = errors.New("invalid fee constants")

// FeeConstants таблица тарифов. Загружается один раз при старте и дальше не меняется.
type FeeConstants struct {
	BaseDeliveryFee         int64
	BaseDeliveryFeeDistance int64
	AdditionalFee           int64
	AdditionalFeeDistance   int64
	AdditionalItemLimit     int64
	AdditionalItemSurcharge int64
	BulkFeeThreshold        int64
	BulkFee                 int64
	SmallOrderThreshold     int64
	FreeDeliveryThreshold   int64
	MaxFee                  int64
	RushMultiplier          float64
	RushDeliveryDay         int // 0 - понедельник, 6 - воскресенье
	RushDeliveryStart       int // час, UTC, включительно
	RushDeliveryEnd         int // час, UTC, включительно
}

func DefaultFeeConstants() FeeConstants {
	return FeeConstants{
		BaseDeliveryFee:         200,
		BaseDeliveryFeeDistance: 1_000,
		AdditionalFee:           100,
		AdditionalFeeDistance:   500,
		AdditionalItemLimit:     5,
		AdditionalItemSurcharge: 50,
		BulkFeeThreshold:        12,
		BulkFee:                 120,
		SmallOrderThreshold:     1_000,
		FreeDeliveryThreshold:   20_000,
		MaxFee:                  1_500,
		RushMultiplier:          1.2,
		RushDeliveryDay:         4,
		RushDeliveryStart:       15,
		RushDeliveryEnd:         19,
	}
}

func (c FeeConstants) Validate() error {
	nonNegative := []struct {
		name  string
		value int64
	}{
		{"base delivery fee", c.BaseDeliveryFee},
		{"base delivery fee distance", c.BaseDeliveryFeeDistance},
		{"additional fee", c.AdditionalFee},
		{"additional item surcharge", c.AdditionalItemSurcharge},
		{"bulk fee threshold", c.BulkFeeThreshold},
		{"bulk fee", c.BulkFee},
		{"small order threshold", c.SmallOrderThreshold},
		{"free delivery threshold", c.FreeDeliveryThreshold},
		{"max fee", c.MaxFee},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidFeeConstants, v.name, v.value)
		}
	}

	if c.AdditionalFeeDistance <= 0 {
		return fmt.Errorf("%w: additional fee distance must be positive, got %d", ErrInvalidFeeConstants, c.AdditionalFeeDistance)
	}
	if c.AdditionalItemLimit <= 0 {
		return fmt.Errorf("%w: additional item limit must be positive, got %d", ErrInvalidFeeConstants, c.AdditionalItemLimit)
	}
	if math.IsNaN(c.RushMultiplier) || math.IsInf(c.RushMultiplier, 0) || c.RushMultiplier <= 0 {
		return fmt.Errorf("%w: rush multiplier must be a positive number, got %v", ErrInvalidFeeConstants, c.RushMultiplier)
	}
	if c.RushDeliveryDay < 0 || c.RushDeliveryDay > 6 {
		return fmt.Errorf("%w: rush delivery day must be in 0..6, got %d", ErrInvalidFeeConstants, c.RushDeliveryDay)
	}
	if !isHour(c.RushDeliveryStart) || !isHour(c.RushDeliveryEnd) {
		return fmt.Errorf("%w: rush hours must be in 0..23, got %d-%d", ErrInvalidFeeConstants, c.RushDeliveryStart, c.RushDeliveryEnd)
	}
	if c.RushDeliveryStart > c.RushDeliveryEnd {
		return fmt.Errorf("%w: rush start %d is after rush end %d", ErrInvalidFeeConstants, c.RushDeliveryStart, c.RushDeliveryEnd)
	}

	return nil
}

func isHour(h int) bool {
	return h >= 0 && h <= 23
}

// FeeBreakdown суммы по каждому правилу одного расчета.
type FeeBreakdown struct {
	FreeDelivery        bool
	DistanceFee         int64
	ItemSurcharge       int64
	SmallOrderSurcharge int64
	BulkFee             int64
	Subtotal            int64
	RushHour            bool
	Capped              bool
	Total               int64
}

type FeeQuote struct {
	ID           string
	Order        Order
	Breakdown    FeeBreakdown
	DeliveryFee  int64
	CalculatedAt time.Time
}

// FeeProfile именованная версия таблицы тарифов, хранится в БД.
type FeeProfile struct {
	ID        int64
	Name      string
	Constants FeeConstants
	Active    bool
	CreatedAt time.Time
}
