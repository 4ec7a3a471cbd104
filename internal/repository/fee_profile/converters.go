package fee_profile

import "feecalc/internal/entities"

func ToDomain(p *FeeProfileDB) *entities.FeeProfile {
	if p == nil {
		return nil
	}
	return &entities.FeeProfile{
		ID:   p.ID,
		Name: p.Name,
		Constants: entities.FeeConstants{
			BaseDeliveryFee:         p.BaseDeliveryFee,
			BaseDeliveryFeeDistance: p.BaseDeliveryFeeDistance,
			AdditionalFee:           p.AdditionalFee,
			AdditionalFeeDistance:   p.AdditionalFeeDistance,
			AdditionalItemLimit:     p.AdditionalItemLimit,
			AdditionalItemSurcharge: p.AdditionalItemSurcharge,
			BulkFeeThreshold:        p.BulkFeeThreshold,
			BulkFee:                 p.BulkFee,
			SmallOrderThreshold:     p.SmallOrderThreshold,
			FreeDeliveryThreshold:   p.FreeDeliveryThreshold,
			MaxFee:                  p.MaxFee,
			RushMultiplier:          p.RushMultiplier,
			RushDeliveryDay:         int(p.RushDeliveryDay),
			RushDeliveryStart:       int(p.RushDeliveryStart),
			RushDeliveryEnd:         int(p.RushDeliveryEnd),
		},
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// FromDomainConstants значения для INSERT в порядке columns без id, name, active и created_at.
func FromDomainConstants(c entities.FeeConstants) []any {
	return []any{
		c.BaseDeliveryFee,
		c.BaseDeliveryFeeDistance,
		c.AdditionalFee,
		c.AdditionalFeeDistance,
		c.AdditionalItemLimit,
		c.AdditionalItemSurcharge,
		c.BulkFeeThreshold,
		c.BulkFee,
		c.SmallOrderThreshold,
		c.FreeDeliveryThreshold,
		c.MaxFee,
		c.RushMultiplier,
		int16(c.RushDeliveryDay),   //nolint:gosec // 0..6 после Validate
		int16(c.RushDeliveryStart), //nolint:gosec // 0..23 после Validate
		int16(c.RushDeliveryEnd),   //nolint:gosec // 0..23 после Validate
	}
}
