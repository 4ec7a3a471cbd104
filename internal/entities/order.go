package entities

import "time"

// Order входные данные для расчета стоимости доставки.
// Денежные значения в минимальных единицах валюты (центах), расстояние в метрах.
type Order struct {
	CartValue        int64
	DeliveryDistance int64
	NumberOfItems    int64
	Time             time.Time
}
