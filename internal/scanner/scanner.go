// Package scanner drives a single artifact scan end to end: probe the
// analysis server, prepare the captured photo, submit it, stage the result
// for the results surface, and request navigation. The session is an
// explicit state machine consumed by the UI layer through a plain
// subscription interface.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/zyarat-mobile/zyarat/internal/artifact"
	"github.com/zyarat-mobile/zyarat/internal/imageprep"
	"github.com/zyarat-mobile/zyarat/internal/relay"
	"github.com/zyarat-mobile/zyarat/internal/scanapi"
)

// ResultsRoute is the navigation destination requested after a successful scan.
const ResultsRoute = "/scan/results"

// State is the phase a scan session is in.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateAnalyzing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateAnalyzing:
		return "analyzing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Prober checks whether the analysis server is ready.
type Prober interface {
	Probe(ctx context.Context) scanapi.ProbeResult
}

// Preparer normalizes a captured photo for upload.
type Preparer interface {
	Prepare(raw []byte, sourceURI string) (*imageprep.Prepared, error)
}

// Submitter uploads a prepared photo and returns the analysis result.
type Submitter interface {
	Submit(ctx context.Context, img *imageprep.Prepared) (*artifact.Result, error)
}

// ResultPayload is what a successful scan stages in the relay under
// relay.ResultKey for the results surface to take.
type ResultPayload struct {
	ImageURI     string
	ArtifactData *artifact.Result
}

// Session is the orchestrator for one user's scan flow. It runs one attempt
// at a time: starting a capture while another attempt is analyzing is
// rejected, never queued. All methods are safe for use from UI callbacks.
type Session struct {
	prober    Prober
	preparer  Preparer
	submitter Submitter
	relay     *relay.Store

	probeEvery time.Duration
	navigate   func(route string)

	mu        sync.Mutex
	state     State
	gen       int
	lastErr   error
	connected bool
	probedAt  time.Time
	observers []func(State)
}

// Option configures a Session.
type Option func(*Session)

// WithNavigate sets the callback invoked when the session requests
// navigation to the results destination. The relay entry is always staged
// before this fires.
func WithNavigate(fn func(route string)) Option {
	return func(s *Session) { s.navigate = fn }
}

// WithProbeInterval sets how long a successful health probe is trusted
// before the next attempt re-probes.
func WithProbeInterval(d time.Duration) Option {
	return func(s *Session) { s.probeEvery = d }
}

// NewSession wires an orchestrator from its collaborators. The session
// starts Idle with the server connectivity unknown, so the first attempt
// always probes.
func NewSession(prober Prober, preparer Preparer, submitter Submitter, relayStore *relay.Store, opts ...Option) *Session {
	s := &Session{
		prober:     prober,
		preparer:   preparer,
		submitter:  submitter,
		relay:      relayStore,
		probeEvery: time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the session's current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the failure that put the session into StateFailed, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers an observer called on every state change. Observers
// run outside the session lock and must not block for long.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// StartCapture begins a new attempt. Allowed from Idle and from the terminal
// states; a capture started while another attempt is capturing or analyzing
// is rejected.
func (s *Session) StartCapture() error {
	s.mu.Lock()
	switch s.state {
	case StateIdle, StateSucceeded, StateFailed:
	default:
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("cannot start capture while %s", state)
	}
	s.lastErr = nil
	s.setLocked(StateCapturing)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.fanout(observers, StateCapturing)
	return nil
}

// Cancel aborts the current attempt and returns the session to Idle. During
// Analyzing the cancellation is cooperative: an in-flight upload is allowed
// to finish, but its result is discarded instead of staged.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.state != StateCapturing && s.state != StateAnalyzing {
		s.mu.Unlock()
		return
	}
	s.gen++
	s.lastErr = nil
	s.setLocked(StateIdle)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	slog.Info("Scan cancelled by user")
	s.fanout(observers, StateIdle)
}

// Reset returns the session from a terminal state to Idle, ready for the
// next attempt. A staged result the results surface never took is dropped so
// it cannot surface on a later scan. Reset from Idle is a no-op; while an
// attempt is capturing or analyzing it is rejected — use Cancel for that.
func (s *Session) Reset() error {
	s.mu.Lock()
	switch s.state {
	case StateIdle:
		s.mu.Unlock()
		return nil
	case StateSucceeded, StateFailed:
	default:
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("cannot reset while %s", state)
	}
	s.lastErr = nil
	s.relay.Drop(relay.ResultKey)
	s.setLocked(StateIdle)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.fanout(observers, StateIdle)
	return nil
}

// Analyze runs the pipeline for a captured photo: connectivity probe (when
// the server was last known unreachable or the last good probe is stale),
// image preparation, then submission. On a recognized or unrecognized result
// the payload is staged in the relay and navigation is requested; the relay
// write strictly precedes the navigation request. Any step failing moves the
// session to Failed with a typed, user-actionable error, and nothing is
// retried automatically.
func (s *Session) Analyze(ctx context.Context, raw []byte, imageURI string) error {
	s.mu.Lock()
	if s.state != StateCapturing {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("cannot analyze from state %s", state)
	}
	gen := s.gen
	s.setLocked(StateAnalyzing)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.fanout(observers, StateAnalyzing)
	slog.Info("Starting image analysis", "image_uri", imageURI, "bytes", len(raw))

	if s.needsProbe() {
		probe := s.prober.Probe(ctx)
		s.recordProbe(probe)
		if !probe.Ready {
			return s.fail(gen, &ConnectivityError{Detail: probe.Detail})
		}
	}
	if s.cancelled(gen) {
		return ErrCancelled
	}

	prepared, err := s.preparer.Prepare(raw, imageURI)
	if err != nil {
		return s.fail(gen, &PreparationError{Err: err})
	}
	if s.cancelled(gen) {
		return ErrCancelled
	}

	result, err := s.submitter.Submit(ctx, prepared)
	if err != nil {
		// A failed upload casts doubt on connectivity; re-probe next time.
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
		return s.fail(gen, &UploadError{Err: err})
	}

	// Staging and the final cancellation check are one atomic step: a result
	// arriving after Cancel must never reach the relay.
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		slog.Info("Discarding late analysis result for a cancelled scan")
		return ErrCancelled
	}
	s.relay.Put(relay.ResultKey, ResultPayload{
		ImageURI:     prepared.SourceURI,
		ArtifactData: result,
	})
	s.setLocked(StateSucceeded)
	observers = s.snapshotObservers()
	navigate := s.navigate
	s.mu.Unlock()

	slog.Info("Analysis complete", "outcome", result.Outcome)
	s.fanout(observers, StateSucceeded)
	if navigate != nil {
		navigate(ResultsRoute)
	}
	return nil
}

// fail moves the session to Failed with err, unless the attempt was
// cancelled in the meantime — then the failure is dropped along with the
// attempt and ErrCancelled is reported instead.
func (s *Session) fail(gen int, err error) error {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return ErrCancelled
	}
	s.lastErr = err
	s.setLocked(StateFailed)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	slog.Error("Scan attempt failed", "err", err)
	s.fanout(observers, StateFailed)
	return err
}

func (s *Session) needsProbe() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.connected || time.Since(s.probedAt) > s.probeEvery
}

func (s *Session) recordProbe(result scanapi.ProbeResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = result.Ready
	s.probedAt = time.Now()
}

func (s *Session) cancelled(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen != gen
}

func (s *Session) setLocked(state State) {
	s.state = state
}

func (s *Session) snapshotObservers() []func(State) {
	observers := make([]func(State), len(s.observers))
	copy(observers, s.observers)
	return observers
}

func (s *Session) fanout(observers []func(State), state State) {
	for _, fn := range observers {
		fn(state)
	}
}
