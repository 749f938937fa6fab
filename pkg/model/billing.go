package model

// PricePoint is a product price point with per-currency amounts and
// Stripe identifiers.
type PricePoint struct {
	Price         float64 `json:"price"`
	EURPrice      float64 `json:"eur_price"`
	Comment       string  `json:"comment"`
	AUDPrice      float64 `json:"aud_price"`
	Duration      int     `json:"duration"`
	AlreadyBilled int     `json:"already_billed"`
	CADStripeID   string  `json:"cad_stripe_id"`
	Type          string  `json:"type"`
	ProductID     int     `json:"product_id"`
	JPYPrice      float64 `json:"jpy_price"`
	GBPPrice      float64 `json:"gbp_price"`
	JPYStripeID   string  `json:"jpy_stripe_id"`
	CADPrice      float64 `json:"cad_price"`
	EURStripeID   string  `json:"eur_stripe_id"`
	CHFStripeID   string  `json:"chf_stripe_id"`
	StripeID      string  `json:"stripe_id"`
	AUDStripeID   string  `json:"aud_stripe_id"`
	GBPStripeID   string  `json:"gbp_stripe_id"`
	CHFPrice      float64 `json:"chf_price"`
	PK            int     `json:"PK"`

	Extra Extra `json:"-"`
}

var pricePointRequired = []string{
	"price", "eur_price", "comment", "aud_price", "duration",
	"already_billed", "cad_stripe_id", "type", "product_id", "jpy_price",
	"gbp_price", "jpy_stripe_id", "cad_price", "eur_stripe_id",
	"chf_stripe_id", "stripe_id", "aud_stripe_id", "gbp_stripe_id",
	"chf_price", "PK",
}

func (p *PricePoint) UnmarshalJSON(data []byte) error {
	type alias PricePoint
	var v alias
	if err := unmarshalResource(data, "PricePoint", &v, pricePointRequired, &v.Extra); err != nil {
		return err
	}
	*p = PricePoint(v)
	return nil
}

// Product is a purchasable ControlD product.
type Product struct {
	ProxyAccess int    `json:"proxy_access"`
	Type        string `json:"type"`
	Priority    *int   `json:"priority,omitempty"`
	Name        string `json:"name"`
	PK          int    `json:"PK"`

	Extra Extra `json:"-"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	var v alias
	if err := unmarshalResource(data, "Product", &v, []string{"proxy_access", "type", "name", "PK"}, &v.Extra); err != nil {
		return err
	}
	*p = Product(v)
	return nil
}

// ActiveSubscription is the subscription block nested inside an active
// product.
type ActiveSubscription struct {
	PK       string  `json:"PK"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method"`
	NextBill int64   `json:"next_bill"`
	Price    float64 `json:"price"`
	Product  int     `json:"product"`
	Started  string  `json:"started"`
	State    string  `json:"state"`
	Status   Status  `json:"status"`
	User     string  `json:"user"`

	Extra Extra `json:"-"`
}

var activeSubscriptionRequired = []string{
	"PK", "amount", "method", "next_bill", "price", "product",
	"started", "state", "status", "user",
}

func (s *ActiveSubscription) UnmarshalJSON(data []byte) error {
	type alias ActiveSubscription
	var v alias
	if err := unmarshalResource(data, "ActiveSubscription", &v, activeSubscriptionRequired, &v.Extra); err != nil {
		return err
	}
	*s = ActiveSubscription(v)
	return nil
}

// Subscription is a full subscription record.
type Subscription struct {
	Price          float64 `json:"price"`
	Started        string  `json:"started"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	State          string  `json:"state"`
	Product        Product `json:"product"`
	User           string  `json:"user"`
	NextBill       int64   `json:"next_bill"`
	PK             string  `json:"PK"`
	Status         Status  `json:"status"`
	Currency       string  `json:"currency"`
	CurrencyAmount float64 `json:"currency_amount"`
	NextRebillDate string  `json:"next_rebill_date"`

	Extra Extra `json:"-"`
}

var subscriptionRequired = []string{
	"price", "started", "amount", "method", "state", "product", "user",
	"next_bill", "PK", "status", "currency", "currency_amount",
	"next_rebill_date",
}

func (s *Subscription) UnmarshalJSON(data []byte) error {
	type alias Subscription
	var v alias
	if err := unmarshalResource(data, "Subscription", &v, subscriptionRequired, &v.Extra); err != nil {
		return err
	}
	*s = Subscription(v)
	return nil
}

// ActiveProduct is a product currently active on the account.
type ActiveProduct struct {
	ProxyAccess  int                `json:"proxy_access"`
	Type         string             `json:"type"`
	Expiry       string             `json:"expiry"`
	Name         string             `json:"name"`
	PK           int                `json:"PK"`
	Price        PricePoint         `json:"price"`
	Subscription ActiveSubscription `json:"subscription"`

	Extra Extra `json:"-"`
}

var activeProductRequired = []string{
	"proxy_access", "type", "expiry", "name", "PK", "price", "subscription",
}

func (p *ActiveProduct) UnmarshalJSON(data []byte) error {
	type alias ActiveProduct
	var v alias
	if err := unmarshalResource(data, "ActiveProduct", &v, activeProductRequired, &v.Extra); err != nil {
		return err
	}
	*p = ActiveProduct(v)
	return nil
}

// Payment is a past payment transaction.
type Payment struct {
	Method         string     `json:"method"`
	SubID          string     `json:"sub_id"`
	Date           string     `json:"date"`
	Amount         float64    `json:"amount"`
	Fingerprint    string     `json:"fingerprint"`
	TxID           string     `json:"tx_id"`
	Currency       string     `json:"currency"`
	Balance        float64    `json:"balance"`
	User           string     `json:"user"`
	Product        Product    `json:"product"`
	PricePoint     PricePoint `json:"price_point"`
	TS             int64      `json:"ts"`
	PK             string     `json:"PK"`
	TxStatus       int        `json:"tx_status"`
	TxRefunded     int        `json:"tx_refunded"`
	CurrencyAmount float64    `json:"currency_amount"`

	Extra Extra `json:"-"`
}

var paymentRequired = []string{
	"method", "sub_id", "date", "amount", "fingerprint", "tx_id",
	"currency", "balance", "user", "product", "price_point", "ts", "PK",
	"tx_status", "tx_refunded", "currency_amount",
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	type alias Payment
	var v alias
	if err := unmarshalResource(data, "Payment", &v, paymentRequired, &v.Extra); err != nil {
		return err
	}
	*p = Payment(v)
	return nil
}
