package square

// Request/response shapes for the two Square endpoints this service calls.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type CreatePaymentRequest struct {
	IdempotencyKey    string `json:"idempotency_key"`
	SourceID          string `json:"source_id"`
	LocationID        string `json:"location_id"`
	AmountMoney       Money  `json:"amount_money"`
	Autocomplete      bool   `json:"autocomplete"`
	Note              string `json:"note,omitempty"`
	BuyerEmailAddress string `json:"buyer_email_address,omitempty"`
	ReferenceID       string `json:"reference_id,omitempty"`
}

// Payment is the subset of the processor's payment object this service
// relays to the client.
type Payment struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ReceiptURL string `json:"receipt_url"`
}

const StatusCompleted = "COMPLETED"

type createPaymentResponse struct {
	Payment *Payment   `json:"payment"`
	Errors  []APIError `json:"errors"`
}

type registerDomainRequest struct {
	DomainName string `json:"domain_name"`
}

type registerDomainResponse struct {
	Status string     `json:"status"`
	Errors []APIError `json:"errors"`
}
