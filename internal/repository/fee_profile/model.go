package fee_profile

import "time"

type FeeProfileDB struct {
	ID                      int64
	Name                    string
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
	RushDeliveryDay         int16
	RushDeliveryStart       int16
	RushDeliveryEnd         int16
	Active                  bool
	CreatedAt               time.Time
}

// columns в порядке полей FeeProfileDB.
var columns = []string{
	"id",
	"name",
	"base_delivery_fee",
	"base_delivery_fee_distance",
	"additional_fee",
	"additional_fee_distance",
	"additional_item_limit",
	"additional_item_surcharge",
	"bulk_fee_threshold",
	"bulk_fee",
	"small_order_threshold",
	"free_delivery_threshold",
	"max_fee",
	"rush_multiplier",
	"rush_delivery_day",
	"rush_delivery_start",
	"rush_delivery_end",
	"active",
	"created_at",
}

func (p *FeeProfileDB) scanTargets() []any {
	return []any{
		&p.ID,
		&p.Name,
		&p.BaseDeliveryFee,
		&p.BaseDeliveryFeeDistance,
		&p.AdditionalFee,
		&p.AdditionalFeeDistance,
		&p.AdditionalItemLimit,
		&p.AdditionalItemSurcharge,
		&p.BulkFeeThreshold,
		&p.BulkFee,
		&p.SmallOrderThreshold,
		&p.FreeDeliveryThreshold,
		&p.MaxFee,
		&p.RushMultiplier,
		&p.RushDeliveryDay,
		&p.RushDeliveryStart,
		&p.RushDeliveryEnd,
		&p.Active,
		&p.CreatedAt,
	}
}
