package client

import (
	"context"
	"html/template"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/internal/render"
	"github.com/pageza/recettes/backend/internal/types"
)

// State of the list view
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Controller defaults
const (
	DefaultDebounce        = 300 * time.Millisecond
	DefaultNotificationTTL = 3 * time.Second
)

const loadFailedMessage = "Erreur lors du chargement des recettes"

// Lister fetches a page of recipes
type Lister interface {
	ListRecipes(ctx context.Context, filters types.FilterSpec) (*types.RecipeList, error)
}

// View receives rendered output. Its methods are called with the
// controller's lock held and must not call back into the controller.
type View interface {
	Render(fragment template.HTML, list *types.RecipeList)
	Notify(notification template.HTML)
	Dismiss()
}

// Controller turns filter changes into list requests. Search text is
// debounced; the other filters apply at once. Every request carries a
// generation number and only the newest generation's response reaches the
// view.
type Controller struct {
	lister Lister
	view   View
	log    *zap.Logger

	debounce        time.Duration
	timeout         time.Duration
	notificationTTL time.Duration

	mu         sync.Mutex
	filters    types.FilterSpec
	state      State
	generation uint64
	timer      *time.Timer
	dismiss    *time.Timer
	closed     bool
	wg         sync.WaitGroup
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithDebounce sets the search debounce window
func WithDebounce(d time.Duration) ControllerOption {
	return func(c *Controller) { c.debounce = d }
}

// WithNotificationTTL sets how long a failure notification stays up
func WithNotificationTTL(d time.Duration) ControllerOption {
	return func(c *Controller) { c.notificationTTL = d }
}

// WithRequestTimeout bounds each list request
func WithRequestTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) { c.timeout = d }
}

// WithLogger sets the controller's logger
func WithLogger(log *zap.Logger) ControllerOption {
	return func(c *Controller) { c.log = log }
}

// NewController creates an idle controller with default filters
func NewController(lister Lister, view View, opts ...ControllerOption) *Controller {
	c := &Controller{
		lister:          lister,
		view:            view,
		log:             zap.NewNop(),
		debounce:        DefaultDebounce,
		timeout:         DefaultTimeout,
		notificationTTL: DefaultNotificationTTL,
		filters:         types.FilterSpec{}.Normalize(),
		state:           Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Filters returns the filters the next request will use
func (c *Controller) Filters() types.FilterSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Load requests the current page with the current filters
func (c *Controller) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

// SetSearch updates the search text and requests page 1 once typing pauses.
// A changed text invalidates any request still in flight.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if text != c.filters.Search {
		c.generation++
	}
	c.filters.Search = text
	if c.timer != nil {
		c.timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A newer keystroke or filter change replaced this timer.
		if c.timer != timer {
			return
		}
		c.timer = nil
		c.filters.Page = types.DefaultPage
		c.startLocked()
	})
	c.timer = timer
}

// SetCategory filters by category slug; empty clears the filter
func (c *Controller) SetCategory(slug string) {
	c.apply(func(f *types.FilterSpec) { f.Category = slug })
}

// SetDifficulty filters by difficulty; empty clears the filter
func (c *Controller) SetDifficulty(difficulty string) {
	c.apply(func(f *types.FilterSpec) { f.Difficulty = difficulty })
}

// SetMaxTime bounds total time in minutes; zero clears the filter
func (c *Controller) SetMaxTime(minutes int) {
	c.apply(func(f *types.FilterSpec) { f.MaxTime = minutes })
}

// SetFeatured restricts the list to featured recipes
func (c *Controller) SetFeatured(featured bool) {
	c.apply(func(f *types.FilterSpec) { f.Featured = featured })
}

// SetPage moves to another page without touching the filters
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters.Page = page
	c.filters = c.filters.Normalize()
	c.startLocked()
}

// Close stops a pending debounce and notification dismissal and waits for
// in-flight requests
func (c *Controller) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.dismiss != nil {
		c.dismiss.Stop()
		c.dismiss = nil
	}
	c.closed = true
	c.generation++
	c.mu.Unlock()

	c.wg.Wait()
}

// apply changes a filter and requests page 1 at once. A pending search
// debounce is dropped since the new request already carries its text.
func (c *Controller) apply(change func(*types.FilterSpec)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	change(&c.filters)
	c.filters.Page = types.DefaultPage
	c.filters = c.filters.Normalize()
	c.startLocked()
}

func (c *Controller) startLocked() {
	if c.closed {
		return
	}
	c.generation++
	c.state = Loading

	gen, filters := c.generation, c.filters
	c.wg.Add(1)
	go c.fetch(gen, filters)
}

func (c *Controller) fetch(gen uint64, filters types.FilterSpec) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	list, err := c.lister.ListRecipes(ctx, filters)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.log.Debug("dropping stale response", zap.Uint64("generation", gen), zap.Uint64("current", c.generation))
		return
	}

	if err == nil {
		var fragment template.HTML
		if fragment, err = render.RecipeList(list.Recipes); err == nil {
			c.state = Loaded
			c.view.Render(fragment, list)
			return
		}
	}

	c.log.Warn("failed to load recipes", zap.Error(err))
	c.state = Error
	c.notifyLocked(loadFailedMessage)
}

func (c *Controller) notifyLocked(message string) {
	toast, err := render.Notification(render.Failure, message)
	if err != nil {
		c.log.Error("failed to render notification", zap.Error(err))
		return
	}
	c.view.Notify(toast)

	// Only the newest notification's timer may dismiss it.
	if c.dismiss != nil {
		c.dismiss.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(c.notificationTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || c.dismiss != timer {
			return
		}
		c.dismiss = nil
		c.view.Dismiss()
	})
	c.dismiss = timer
}
