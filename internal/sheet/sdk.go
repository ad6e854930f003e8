// Package sheet drives the payment sheet: it brings up to six payment-method
// widgets to a ready state through the processor's web SDK, isolating each
// optional method's failure from its siblings, and serializes
// tokenize-and-submit per sheet instance.
package sheet

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrSDKUnavailable means the vendor script never loaded.
	ErrSDKUnavailable = errors.New("payment SDK not loaded")
	// ErrMissingCredentials means app or location identifiers are absent.
	ErrMissingCredentials = errors.New("missing payment SDK credentials")
)

// MethodKind identifies one payment method tab/button on the sheet.
type MethodKind string

const (
	MethodCard      MethodKind = "card"
	MethodApplePay  MethodKind = "applePay"
	MethodGooglePay MethodKind = "googlePay"
	MethodCashApp   MethodKind = "cashApp"
	MethodAfterpay  MethodKind = "afterpay"
	MethodACH       MethodKind = "ach"
)

// PaymentRequest is the shared descriptor all wallet methods reference so
// they display one consistent total.
type PaymentRequest struct {
	AmountCents int64
	Currency    string
	CountryCode string
	Label       string
}

// TokenResult mirrors the SDK's tokenize outcome.
type TokenResult struct {
	Status       string
	Token        string
	ErrorMessage string
}

const StatusOK = "OK"

// Method is one instantiated payment-method widget.
type Method interface {
	// CanMakePayment reports device/browser support for this method.
	CanMakePayment(ctx context.Context) (bool, error)
	// Attach mounts the widget into the named container.
	Attach(ctx context.Context, containerID string) error
	// Tokenize converts the entered credentials into a single-use token.
	Tokenize(ctx context.Context) (TokenResult, error)
}

// SDK is the processor's client-side entry point. Card takes no payment
// request; every wallet method shares one.
type SDK interface {
	Card(ctx context.Context) (Method, error)
	Wallet(ctx context.Context, kind MethodKind, req PaymentRequest) (Method, error)
}

// Client caches the SDK handle across repeated sheet opens; the loader runs
// once per page load no matter how many times the sheet is opened.
type Client struct {
	load func() (SDK, error)

	mu  sync.Mutex
	sdk SDK
	err error
	ran bool
}

func NewClient(load func() (SDK, error)) *Client {
	return &Client{load: load}
}

// Ensure returns the singleton SDK handle, loading it on first use. A failed
// load is sticky for the page lifetime, matching the vendor-script case.
func (c *Client) Ensure() (SDK, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ran {
		c.sdk, c.err = c.load()
		c.ran = true
	}
	return c.sdk, c.err
}
