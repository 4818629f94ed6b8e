package models

// ServiceabilityRequest asks which couriers can ship between two pincodes.
type ServiceabilityRequest struct {
	PickupPostcode   string  `form:"pickup_postcode"`
	DeliveryPostcode string  `form:"delivery_postcode" binding:"required"`
	Weight           float64 `form:"weight" binding:"required,gt=0"`
	COD              bool    `form:"cod"`
}

// CourierOption is one courier quote returned by the carrier.
type CourierOption struct {
	CourierID     int     `json:"courier_company_id"`
	CourierName   string  `json:"courier_name"`
	Rate          float64 `json:"rate"`
	EstimatedDays string  `json:"estimated_delivery_days"`
	ETD           string  `json:"etd"`
	COD           int     `json:"cod"`
}
