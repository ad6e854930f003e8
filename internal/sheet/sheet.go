package sheet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/holi/give-server/internal/telemetry"
)

// Outcome is the result of attempting one method descriptor.
type Outcome int

const (
	// Unattempted is the zero value before Open runs.
	Unattempted Outcome = iota
	Attached
	Unavailable
	Failed
)

var (
	ErrSheetClosed        = errors.New("payment sheet is closed")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrMethodUnavailable  = errors.New("payment method not available")
)

// descriptor fixes the processing order and per-method behavior. Card is the
// mandatory first entry; its failure makes the whole sheet unusable.
// checkAvailability marks methods gated on a device capability probe.
type descriptor struct {
	kind              MethodKind
	container         string
	optional          bool
	checkAvailability bool
}

var methodOrder = []descriptor{
	{kind: MethodCard, container: "card-container"},
	{kind: MethodApplePay, container: "apple-pay-button", optional: true, checkAvailability: true},
	{kind: MethodGooglePay, container: "google-pay-button", optional: true, checkAvailability: true},
	{kind: MethodCashApp, container: "cash-app-pay-button", optional: true},
	{kind: MethodAfterpay, container: "afterpay-button", optional: true},
	{kind: MethodACH, container: "ach-button", optional: true},
}

// Submission carries one tokenized attempt to the submit endpoint.
type Submission struct {
	Token       string
	AmountCents int64
	Fund        string
	FundLabel   string
	DonorName   string
	DonorEmail  string
}

// SubmitFunc forwards a submission to /api/pay. Exactly one call is in
// flight per sheet instance.
type SubmitFunc func(ctx context.Context, sub Submission) error

// Sheet is one open payment sheet: the attached methods for a single
// validated donation amount.
type Sheet struct {
	request    PaymentRequest
	fund       string
	fundLabel  string
	donorName  string
	donorEmail string
	submit     SubmitFunc

	mu       sync.Mutex
	open     bool
	inFlight bool
	methods  map[MethodKind]Method
	outcomes map[MethodKind]Outcome
}

// Open initializes every payment method for amountCents. The card method is
// mandatory: its failure aborts with an error and no usable sheet. Optional
// methods are fault-isolated; any error just hides that method.
func Open(ctx context.Context, client *Client, amountCents int64, fund, fundLabel, donorName, donorEmail string, submit SubmitFunc) (*Sheet, error) {
	sdk, err := client.Ensure()
	if err != nil {
		return nil, err
	}

	s := &Sheet{
		request: PaymentRequest{
			AmountCents: amountCents,
			Currency:    "USD",
			CountryCode: "US",
			Label:       "HOLI Gift",
		},
		fund:       fund,
		fundLabel:  fundLabel,
		donorName:  donorName,
		donorEmail: donorEmail,
		submit:     submit,
		open:       true,
		methods:    make(map[MethodKind]Method),
		outcomes:   make(map[MethodKind]Outcome),
	}

	for _, desc := range methodOrder {
		outcome, method, attemptErr := s.attempt(ctx, sdk, desc)
		s.outcomes[desc.kind] = outcome
		if outcome == Attached {
			s.methods[desc.kind] = method
		}
		if !desc.optional && outcome != Attached {
			return nil, fmt.Errorf("card method failed to attach: %w", attemptErr)
		}
	}

	if !s.AnyWalletVisible() {
		telemetry.Logger.Info("no alternative payment methods available",
			zap.Int64("amount_cents", amountCents))
	}

	return s, nil
}

// attempt runs one descriptor through create → availability → attach. The
// returned error never aborts sibling methods; the caller decides what a
// failed mandatory method means.
func (s *Sheet) attempt(ctx context.Context, sdk SDK, desc descriptor) (Outcome, Method, error) {
	var (
		method Method
		err    error
	)
	if desc.kind == MethodCard {
		method, err = sdk.Card(ctx)
	} else {
		method, err = sdk.Wallet(ctx, desc.kind, s.request)
	}
	if err != nil {
		telemetry.Logger.Debug("payment method init failed",
			zap.String("method", string(desc.kind)), zap.Error(err))
		return Failed, nil, err
	}

	if desc.checkAvailability {
		can, err := method.CanMakePayment(ctx)
		if err != nil {
			return Failed, nil, err
		}
		if !can {
			return Unavailable, nil, nil
		}
	}

	if err := method.Attach(ctx, desc.container); err != nil {
		telemetry.Logger.Debug("payment method attach failed",
			zap.String("method", string(desc.kind)), zap.Error(err))
		return Failed, nil, err
	}

	return Attached, method, nil
}

// Outcome reports how a method fared during Open.
func (s *Sheet) Outcome(kind MethodKind) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcomes[kind]
}

// AnyWalletVisible reports whether at least one optional method attached;
// false means the "no alternative methods" notice is shown.
func (s *Sheet) AnyWalletVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, desc := range methodOrder {
		if desc.optional && s.outcomes[desc.kind] == Attached {
			return true
		}
	}
	return false
}

// Submit tokenizes the chosen method and forwards the result. Only one
// submission may be in flight per sheet; concurrent calls get
// ErrSubmissionInFlight. A closed sheet no-ops with ErrSheetClosed so a
// late callback against hidden UI is harmless.
func (s *Sheet) Submit(ctx context.Context, kind MethodKind) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return ErrSheetClosed
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	method, ok := s.methods[kind]
	if !ok {
		s.mu.Unlock()
		return ErrMethodUnavailable
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	res, err := method.Tokenize(ctx)
	if err != nil {
		return err
	}
	if res.Status != StatusOK {
		msg := res.ErrorMessage
		if msg == "" {
			msg = "could not tokenize payment method"
		}
		return errors.New(msg)
	}

	return s.submit(ctx, Submission{
		Token:       res.Token,
		AmountCents: s.request.AmountCents,
		Fund:        s.fund,
		FundLabel:   s.fundLabel,
		DonorName:   s.donorName,
		DonorEmail:  s.donorEmail,
	})
}

// Close hides the sheet. In-flight submissions are not canceled; their
// completions land on a closed sheet and are ignored by Submit's guard on
// the next interaction.
func (s *Sheet) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}
