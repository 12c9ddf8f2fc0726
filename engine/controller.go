package engine

import (
	"math"
	"sync"
	"time"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
)

// DefaultDebounce is the quiet period after the last state change before a
// recomputation pass runs. Bursts of changes (slider drags, per-keystroke
// search input) collapse into a single pass.
const DefaultDebounce = 300 * time.Millisecond

// Snapshot is one immutable view of the catalog. The engine never mutates a
// product or category in place; callers swap in a whole new snapshot when the
// catalog changes.
type Snapshot struct {
	Products   []models.Product
	Categories []models.Category
}

// Engine owns the filter state and re-derives the filtered, sorted result
// whenever the state or snapshot changes, coalescing rapid changes through a
// cancelable debounce timer. Recomputation itself is synchronous and pure;
// RecomputeNow exposes that path directly for handlers and tests.
type Engine struct {
	mu       sync.Mutex
	snapshot Snapshot
	state    FilterState
	result   []models.Product
	bounds   models.PriceRangeData
	debounce time.Duration
	timer    *time.Timer
	onResult func([]models.Product)
}

// New builds an engine over the snapshot with the default filter state
// (open filter over the snapshot's derived price bounds).
func New(snapshot Snapshot) *Engine {
	e := &Engine{
		snapshot: snapshot,
		bounds:   PriceBounds(snapshot.Products),
		debounce: DefaultDebounce,
	}
	e.state = DefaultState(e.bounds)
	e.result = RecomputeNow(e.state, e.snapshot)
	return e
}

// SetDebounce overrides the debounce window. Tests use a short window;
// a zero duration still defers execution to the timer goroutine.
func (e *Engine) SetDebounce(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debounce = d
}

// OnResult registers a callback invoked after every completed pass with the
// fresh result. The callback runs outside the engine lock.
func (e *Engine) OnResult(fn func([]models.Product)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onResult = fn
}

// Dispatch applies an action to the filter state and schedules a debounced
// recomputation. Each dispatch cancels and restarts the pending timer, so
// only the last change in a burst triggers a pass.
func (e *Engine) Dispatch(action Action) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Reduce(e.state, action)
	e.scheduleLocked()
}

// Toggle dispatches the derived toggle action for c (see ToggleCategory).
func (e *Engine) Toggle(c models.Category) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Reduce(e.state, ToggleCategory(e.state, e.snapshot.Categories, c))
	e.scheduleLocked()
}

// SetSnapshot swaps in a new catalog snapshot. Price bounds are re-derived
// immediately (they seed range UI defaults and do not wait out the debounce
// window); the filtered result is rescheduled like any other change.
func (e *Engine) SetSnapshot(snapshot Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshot = snapshot
	e.bounds = PriceBounds(snapshot.Products)
	e.scheduleLocked()
}

func (e *Engine) scheduleLocked() {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, e.runPass)
}

func (e *Engine) runPass() {
	e.mu.Lock()
	e.result = RecomputeNow(e.state, e.snapshot)
	fresh := e.result
	fn := e.onResult
	e.mu.Unlock()

	if fn != nil {
		fn(fresh)
	}
}

// Flush cancels any pending timer and runs the pass synchronously.
func (e *Engine) Flush() {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.mu.Unlock()
	e.runPass()
}

// Stop cancels any pending recomputation without running it.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// State returns the current filter state.
func (e *Engine) State() FilterState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Result returns the latest filtered and sorted product list (not paginated).
func (e *Engine) Result() []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Bounds returns the derived min/max price over the raw snapshot.
func (e *Engine) Bounds() models.PriceRangeData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bounds
}

// RecomputeNow is the pure recomputation pass: predicate pipeline, then sort.
// Deterministic given its inputs, so tests can bypass the timer entirely.
func RecomputeNow(state FilterState, snapshot Snapshot) []models.Product {
	pred := All(
		ByCategory(snapshot.Categories, state.Categories),
		ByPrice(state.PriceRange),
		BySearch(state.Search),
	)
	return SortProducts(Filter(snapshot.Products, pred), state.Sort)
}

// PriceBounds scans the raw product snapshot for the floor of the lowest and
// the ceiling of the highest price. An empty snapshot falls back to 0/1000,
// matching the storefront's default slider range.
func PriceBounds(products []models.Product) models.PriceRangeData {
	if len(products) == 0 {
		return models.PriceRangeData{Min: 0, Max: 1000}
	}

	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return models.PriceRangeData{Min: math.Floor(min), Max: math.Ceil(max)}
}
