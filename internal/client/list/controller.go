// Package list implements the paginated customer list controller as an
// explicit state machine: reduce(state, event) yields the next state plus an
// optional fetch effect. Exactly three inputs re-enter the Loading state:
// page change, page-size change, and an external reload request. Every fetch
// is tagged with a monotonically increasing request id; only the most recent
// id may mutate state when its result arrives, which makes stale-response
// discard a first-class concern rather than a scheduling accident.
package list

import (
	"context"
	"sync"

	"custdesk/internal/client/api"
)

// State is the controller's observable state. Loading and a non-empty Err are
// mutually exclusive at rest: the error is cleared before a fetch starts.
type State struct {
	PageIndex  int
	PageSize   int
	Records    []api.Customer
	TotalPages int
	TotalCount int
	Loading    bool
	Err        string
}

// EventKind enumerates the reducer inputs.
type EventKind int

const (
	PageChanged EventKind = iota
	SizeChanged
	ReloadRequested
	FetchSucceeded
	FetchFailed
)

// Event is one reducer input. Page/Size accompany the change events,
// RequestID plus Result or Message accompany the fetch resolutions.
type Event struct {
	Kind      EventKind
	Page      int
	Size      int
	RequestID uint64
	Result    *api.CustomerPage
	Message   string
}

// Effect is the side effect a transition requests: issue one fetch for the
// given page/size, tagged with RequestID.
type Effect struct {
	RequestID uint64
	Page      int
	Size      int
}

// Fetcher performs the actual page fetch against the API collaborator.
type Fetcher func(ctx context.Context, page, pageSize int) (*api.CustomerPage, error)

// Controller drives State through the reducer and executes fetch effects.
// Fetches run in the calling goroutine; a superseding call from elsewhere
// bumps the latest request id so the older resolution is discarded.
type Controller struct {
	mu      sync.Mutex
	state   State
	fetcher Fetcher

	nextRequestID uint64
	latestRequest uint64
	closed        bool

	subs    map[int]func()
	nextSub int
}

// NewController constructs a controller at page 1 with the given page size
// (minimum 1). No fetch is issued until Load or one of the inputs fires.
func NewController(fetcher Fetcher, pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Controller{
		state: State{
			PageIndex:  1,
			PageSize:   pageSize,
			TotalPages: 1,
		},
		fetcher: fetcher,
		subs:    make(map[int]func()),
	}
}

// reduce applies ev to s. Change events clear the error, enter Loading, and
// request a fetch. Resolution events only apply when their request id is the
// latest one issued; stale resolutions return the state untouched.
func (c *Controller) reduce(s State, ev Event) (State, *Effect) {
	switch ev.Kind {
	case PageChanged:
		s.PageIndex = ev.Page
		return c.enterLoading(s)

	case SizeChanged:
		// combined transition: deep pages would be out of range at the new size
		s.PageSize = ev.Size
		s.PageIndex = 1
		return c.enterLoading(s)

	case ReloadRequested:
		return c.enterLoading(s)

	case FetchSucceeded:
		if ev.RequestID != c.latestRequest {
			return s, nil
		}
		s.Loading = false
		s.Records = ev.Result.Customers
		if s.Records == nil {
			s.Records = []api.Customer{}
		}
		s.TotalPages = ev.Result.TotalPages
		if s.TotalPages == 0 {
			s.TotalPages = 1
		}
		s.TotalCount = ev.Result.TotalCount
		return s, nil

	case FetchFailed:
		if ev.RequestID != c.latestRequest {
			return s, nil
		}
		s.Loading = false
		s.Records = []api.Customer{}
		s.TotalPages = 1
		s.TotalCount = 0
		s.Err = ev.Message
		return s, nil
	}
	return s, nil
}

func (c *Controller) enterLoading(s State) (State, *Effect) {
	s.Err = ""
	s.Loading = true
	c.nextRequestID++
	c.latestRequest = c.nextRequestID
	return s, &Effect{RequestID: c.latestRequest, Page: s.PageIndex, Size: s.PageSize}
}

// Snapshot returns a copy of the current state. Records is copied too, so a
// snapshot stays stable when ApplyUpdate or ApplyDelete later mutate the set.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if c.state.Records != nil {
		s.Records = make([]api.Customer, len(c.state.Records))
		copy(s.Records, c.state.Records)
	}
	return s
}

// Subscribe registers fn to run after every state change; the returned
// function unsubscribes it. The hook serves event-driven frontends; the
// synchronous REPL renders from Snapshot after each command instead.
func (c *Controller) Subscribe(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Close invalidates all outstanding fetches: resolutions arriving after Close
// never mutate state.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Controller) dispatch(ctx context.Context, ev Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	next, effect := c.reduce(c.state, ev)
	c.state = next
	c.mu.Unlock()

	c.notify()

	if effect != nil {
		c.runFetch(ctx, *effect)
	}
}

func (c *Controller) runFetch(ctx context.Context, effect Effect) {
	page, err := c.fetcher(ctx, effect.Page, effect.Size)

	c.mu.Lock()
	if c.closed || effect.RequestID != c.latestRequest {
		// stale: a newer request was issued or the controller was torn down
		c.mu.Unlock()
		return
	}
	var ev Event
	if err != nil {
		ev = Event{Kind: FetchFailed, RequestID: effect.RequestID, Message: err.Error()}
	} else {
		ev = Event{Kind: FetchSucceeded, RequestID: effect.RequestID, Result: page}
	}
	c.state, _ = c.reduce(c.state, ev)
	c.mu.Unlock()

	c.notify()
}

// Load issues the initial fetch at the current page/size.
func (c *Controller) Load(ctx context.Context) {
	c.dispatch(ctx, Event{Kind: ReloadRequested})
}

// SetPage moves to page p and refetches at the current size. Bounds are the
// pagination widget's concern; the controller does not clamp.
func (c *Controller) SetPage(ctx context.Context, p int) {
	c.dispatch(ctx, Event{Kind: PageChanged, Page: p})
}

// SetPageSize switches to size s and unconditionally resets to page 1 in the
// same transition, then refetches.
func (c *Controller) SetPageSize(ctx context.Context, s int) {
	c.dispatch(ctx, Event{Kind: SizeChanged, Size: s})
}

// Reload forces a full refetch at the current page/size. Creating
// collaborators signal completion through this.
func (c *Controller) Reload(ctx context.Context) {
	c.dispatch(ctx, Event{Kind: ReloadRequested})
}

// ApplyUpdate replaces the record matching updated's id in the in-memory set.
// Pagination totals are untouched and no refetch is issued. An unmatched id
// is a silent no-op.
func (c *Controller) ApplyUpdate(updated api.Customer) {
	c.mu.Lock()
	changed := false
	for i, rec := range c.state.Records {
		if rec.ID == updated.ID {
			c.state.Records[i] = updated
			changed = true
			break
		}
	}
	c.mu.Unlock()
	if changed {
		c.notify()
	}
}

// ApplyDelete removes the record with the given id from the in-memory set.
// TotalCount/TotalPages are deliberately left as-is; they go stale until the
// next page- or size-driven refetch.
func (c *Controller) ApplyDelete(id string) {
	c.mu.Lock()
	changed := false
	for i, rec := range c.state.Records {
		if rec.ID == id {
			c.state.Records = append(c.state.Records[:i], c.state.Records[i+1:]...)
			changed = true
			break
		}
	}
	c.mu.Unlock()
	if changed {
		c.notify()
	}
}
