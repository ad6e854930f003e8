package models

// PayRequest is the /api/pay body. sourceId is the opaque token produced by
// the payment SDK on the client; amount is integer minor units.
type PayRequest struct {
	SourceID   string `json:"sourceId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	LocationID string `json:"locationId"`
	Fund       string `json:"fund"`
	FundLabel  string `json:"fundLabel"`
	BuyerName  string `json:"buyerName"`
	BuyerEmail string `json:"buyerEmail"`
}

// PayResponse is the JSON success body when no redirect applies.
type PayResponse struct {
	OK         bool   `json:"ok"`
	PaymentID  string `json:"paymentId"`
	Status     string `json:"status"`
	ReceiptURL string `json:"receiptUrl"`
}

// ErrorResponse is the uniform failure body for the API surface.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
