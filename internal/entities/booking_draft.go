package entities

// BookingDraft черновик формы бронирования, json повторяет форму на клиенте.
// Теги validate на вложенных типах проверяются на границе отправки (BookingRequest),
// поля самой формы валидируются по одному в service/form.
type BookingDraft struct {
	Cargo    CargoDetails    `json:"cargo"`
	Pickup   LocationDetails `json:"pickup"`
	Delivery LocationDetails `json:"delivery"`
	Customer CustomerDetails `json:"customer"`
	Payment  PaymentDetails  `json:"payment"`
}

type CargoDetails struct {
	Description         string     `json:"description"`
	Type                CargoType  `json:"type"`
	Weight              float64    `json:"weight"`
	Dimensions          Dimensions `json:"dimensions"`
	Value               float64    `json:"value"`
	SpecialInstructions string     `json:"specialInstructions"`
}

type Dimensions struct {
	Length float64 `json:"length" validate:"gt=0,lte=10000"`
	Width  float64 `json:"width" validate:"gt=0,lte=10000"`
	Height float64 `json:"height" validate:"gt=0,lte=10000"`
}

type LocationDetails struct {
	Address      Address `json:"address"`
	Contact      Contact `json:"contact"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Instructions string  `json:"instructions"`
}

type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required,pincode"`
	Country    string `json:"country" validate:"required"`
}

type Contact struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,phone10"`
}

type CustomerDetails struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PaymentDetails struct {
	Method        PaymentMethod `json:"method"`
	AcceptTerms   bool          `json:"acceptTerms"`
	AcceptPrivacy bool          `json:"acceptPrivacy"`
}

type CargoType string

const (
	CargoGeneral    CargoType = "general"
	CargoFragile    CargoType = "fragile"
	CargoHazardous  CargoType = "hazardous"
	CargoPerishable CargoType = "perishable"
	CargoValuable   CargoType = "valuable"
)

func (t CargoType) String() string {
	return string(t)
}

type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "net_banking"
	PaymentWallet     PaymentMethod = "wallet"
	PaymentCash       PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// FieldState состояние одного поля формы после последней валидации.
type FieldState struct {
	Path    string
	Valid   bool
	Touched bool
	Message string
}
