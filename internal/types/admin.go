package types

// CouponTemplate 管理端的优惠券模板
type CouponTemplate struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	MinSpend  float64 `json:"min_spend"`
	ValidDays int     `json:"valid_days"`
	Total     int     `json:"total"`
	Issued    int     `json:"issued"`
	Enabled   bool    `json:"enabled"`
}

type SaveCouponTemplateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	MinSpend  float64 `json:"min_spend"`
	ValidDays int     `json:"valid_days"`
	Total     int     `json:"total"`
	Enabled   bool    `json:"enabled"`
}

// DeliverySettings 配送费设置
type DeliverySettings struct {
	Enabled       bool    `json:"enabled"`        // 是否开启配送
	BaseFee       float64 `json:"base_fee"`       // 基础配送费
	FreeThreshold float64 `json:"free_threshold"` // 满额免配送费
	Notice        string  `json:"notice"`         // 配送公告
}

type SavePaymentQRCodeRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
}
