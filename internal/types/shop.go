package types

type Product struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url"`
	OnShelf  bool    `json:"on_shelf"`
}

type CartItem struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	DeliveryFee float64    `json:"delivery_fee"`
	Payable     float64    `json:"payable"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type Building struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Address struct {
	ID         uint   `json:"id"`
	BuildingID uint   `json:"building_id"`
	Building   string `json:"building"`
	Room       string `json:"room"`
	Contact    string `json:"contact"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

type CreateAddressRequest struct {
	BuildingID uint   `json:"building_id" binding:"required"`
	Room       string `json:"room" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	IsDefault  bool   `json:"is_default"`
}

// CheckoutRequest 提交结算：购物车内容在上游，网关只传地址、优惠券和备注
type CheckoutRequest struct {
	AddressID uint   `json:"address_id" binding:"required"`
	CouponID  uint   `json:"coupon_id"`
	Note      string `json:"note"`
}

type Coupon struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	MinSpend  float64 `json:"min_spend"`
	ExpiresAt int64   `json:"expires_at"`
	Used      bool    `json:"used"`
}

// PaymentQRCode 收款二维码，顾客扫码转账后手动点"我已付款"
type PaymentQRCode struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Active   bool   `json:"active"`
}

type LotteryStatus struct {
	Chances int      `json:"chances"`
	Prizes  []string `json:"prizes"`
}

type DrawResult struct {
	Won       bool   `json:"won"`
	PrizeName string `json:"prize_name"`
}
