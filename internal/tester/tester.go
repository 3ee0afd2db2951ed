// Package tester coordinates download client connection tests.
package tester

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/form"
)

// Service is the server-side test surface the orchestrator drives.
// *api.Client implements it.
type Service interface {
	TestConnection(ctx context.Context, id int64) (*api.TestResult, error)
	TestNewConnection(ctx context.Context, payload api.Payload) (*api.TestResult, error)
}

// failureMessage is the only message shown for transport failures.
// The underlying error is kept on the Result and logged, never
// displayed.
const failureMessage = "Connection failed"

// Result is the settled outcome of one test run.
type Result struct {
	Success bool
	Message string
	// Err carries the underlying transport error for logging and
	// programmatic callers. Nil for API-level failures where the
	// server answered with success=false.
	Err error
}

// Orchestrator runs connection tests and tracks the latest outcome.
// It does not enforce mutual exclusion: overlapping runs race and the
// last run to settle owns the stored result. Testing() stays true
// while any run is in flight.
type Orchestrator struct {
	svc Service
	log zerolog.Logger

	mu       sync.Mutex
	inFlight int
	result   *Result
}

// New returns an Orchestrator backed by the given test service.
func New(svc Service) *Orchestrator {
	return &Orchestrator{
		svc: svc,
		log: log.With().Str("component", "tester").Logger(),
	}
}

// Run tests the client described by the form. Edit-mode forms test by
// id against the server's stored credentials; create-mode forms build
// the current draft payload and test it without persisting. The
// returned Result is also stored for later inspection.
func (o *Orchestrator) Run(ctx context.Context, f *form.Form) Result {
	o.begin()

	var (
		res *api.TestResult
		err error
	)
	if f.Editing() {
		o.log.Debug().Int64("clientId", f.ClientID()).Msg("testing persisted client")
		res, err = o.svc.TestConnection(ctx, f.ClientID())
	} else {
		payload := form.BuildPayload(f)
		o.log.Debug().Str("clientType", string(payload.ClientType)).Msg("testing draft client")
		res, err = o.svc.TestNewConnection(ctx, payload)
	}

	var settled Result
	if err != nil {
		o.log.Debug().Err(err).Msg("connection test transport failure")
		settled = Result{Success: false, Message: failureMessage, Err: err}
	} else {
		settled = Result{Success: res.Success, Message: res.Message}
	}

	o.settle(settled)
	return settled
}

// Testing reports whether any test run is still in flight.
func (o *Orchestrator) Testing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight > 0
}

// Result returns the outcome of the last run to settle, or nil if no
// run has settled yet.
func (o *Orchestrator) Result() *Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.result == nil {
		return nil
	}
	res := *o.result
	return &res
}

func (o *Orchestrator) begin() {
	o.mu.Lock()
	o.inFlight++
	o.mu.Unlock()
}

func (o *Orchestrator) settle(res Result) {
	o.mu.Lock()
	o.inFlight--
	o.result = &res
	o.mu.Unlock()
}
