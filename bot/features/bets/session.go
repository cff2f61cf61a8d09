package bets

import (
	"sync"
	"time"

	"poolbot/models"
)

// CaptureState is the state of a contribution capture flow
type CaptureState int

const (
	// CaptureClosed means no capture prompt is open
	CaptureClosed CaptureState = iota
	// CaptureOpenUnselected means the prompt is open but a two-sided bet has
	// no side chosen yet
	CaptureOpenUnselected
	// CaptureOpenSelected means the prompt is open and a side is set
	CaptureOpenSelected
)

// Capture translates a user's inputs into one validated contribution
// submission. It owns no server state. For single-pool bets the side is
// fixed at open time, so the unselected state never occurs.
type Capture struct {
	betID    string
	topology models.Topology

	state  CaptureState
	side   models.Side
	amount int64

	onSubmit func(models.ContributionSubmission)
}

// NewCapture creates a closed capture for a bet. onSubmit may be nil; when
// set it is invoked exactly once per successful Submit.
func NewCapture(betID string, topology models.Topology, onSubmit func(models.ContributionSubmission)) *Capture {
	return &Capture{
		betID:    betID,
		topology: topology,
		state:    CaptureClosed,
		onSubmit: onSubmit,
	}
}

// BetID returns the bet this capture contributes to
func (c *Capture) BetID() string {
	return c.betID
}

// Topology returns the bet topology the capture was opened for
func (c *Capture) Topology() models.Topology {
	return c.topology
}

// State returns the current capture state
func (c *Capture) State() CaptureState {
	return c.state
}

// Side returns the chosen side; ok is false while no side is set
func (c *Capture) Side() (models.Side, bool) {
	if c.side == "" {
		return "", false
	}
	return c.side, true
}

// Amount returns the current amount; zero means empty
func (c *Capture) Amount() int64 {
	return c.amount
}

// Open opens the prompt without a side. Single-pool bets take their fixed
// side immediately; two-sided bets open unselected. The amount resets.
func (c *Capture) Open() {
	c.amount = 0
	if fixed, ok := c.topology.FixedSide(); ok {
		c.side = fixed
		c.state = CaptureOpenSelected
		return
	}
	c.side = ""
	c.state = CaptureOpenUnselected
}

// OpenFor opens the prompt with the given side already chosen. For
// single-pool bets the fixed side always wins regardless of the argument.
// The amount resets.
func (c *Capture) OpenFor(side models.Side) {
	c.amount = 0
	if fixed, ok := c.topology.FixedSide(); ok {
		c.side = fixed
		c.state = CaptureOpenSelected
		return
	}
	if !c.topology.AllowsSide(side) {
		c.side = ""
		c.state = CaptureOpenUnselected
		return
	}
	c.side = side
	c.state = CaptureOpenSelected
}

// SelectSide chooses or overwrites the side on an open two-sided prompt.
// Ignored while closed and for single-pool bets, whose side is fixed.
func (c *Capture) SelectSide(side models.Side) {
	if c.state == CaptureClosed {
		return
	}
	if !c.topology.RequiresSideChoice() || !c.topology.AllowsSide(side) {
		return
	}
	c.side = side
	c.state = CaptureOpenSelected
}

// SetAmount overwrites the amount. Quick picks and free-text input both land
// here; selection overwrites, never appends. No state transition.
func (c *Capture) SetAmount(amount int64) {
	if c.state == CaptureClosed {
		return
	}
	c.amount = amount
}

// Submit finalizes the capture. It is guarded: with an empty or non-positive
// amount, or no side on a two-sided bet, it is a silent no-op with no
// callback and no transition. Otherwise it builds the submission, invokes
// the callback exactly once, clears amount and side, and closes.
func (c *Capture) Submit() (models.ContributionSubmission, bool) {
	if c.state != CaptureOpenSelected {
		return models.ContributionSubmission{}, false
	}
	if c.amount <= 0 || c.side == "" {
		return models.ContributionSubmission{}, false
	}

	submission := models.ContributionSubmission{
		Amount: c.amount,
		Side:   c.side,
	}

	c.amount = 0
	c.side = ""
	c.state = CaptureClosed

	if c.onSubmit != nil {
		c.onSubmit(submission)
	}

	return submission, true
}

// Close cancels the capture from any open state without invoking the callback
func (c *Capture) Close() {
	c.amount = 0
	c.side = ""
	c.state = CaptureClosed
}

// captureSession stores a user's in-flight capture alongside the message it
// was opened from, so the bet view can be refreshed after submission
type captureSession struct {
	UserID      int64
	Capture     *Capture
	MessageID   string
	ChannelID   string
	GuildID     string
	Description string
	RewardType  string
	Timestamp   time.Time
}

var (
	captureSessions   = make(map[int64]*captureSession)
	captureSessionsMu sync.RWMutex
)

// getCaptureSession retrieves the capture session for a user
func getCaptureSession(userID int64) *captureSession {
	captureSessionsMu.RLock()
	defer captureSessionsMu.RUnlock()
	return captureSessions[userID]
}

// saveCaptureSession stores or updates a capture session
func saveCaptureSession(session *captureSession) {
	captureSessionsMu.Lock()
	defer captureSessionsMu.Unlock()
	session.Timestamp = time.Now()
	captureSessions[session.UserID] = session
}

// deleteCaptureSession removes a user's capture session
func deleteCaptureSession(userID int64) {
	captureSessionsMu.Lock()
	defer captureSessionsMu.Unlock()
	delete(captureSessions, userID)
}

// cleanupSessions removes sessions older than 1 hour
func cleanupSessions() {
	captureSessionsMu.Lock()
	defer captureSessionsMu.Unlock()

	now := time.Now()
	for userID, session := range captureSessions {
		if now.Sub(session.Timestamp) > time.Hour {
			delete(captureSessions, userID)
		}
	}
}
