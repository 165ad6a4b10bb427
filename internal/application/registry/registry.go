package registry

import (
	"context"
	"sync"
	"time"

	"weather-widget/internal/application/view"
	"weather-widget/internal/domain/usecase/widget"
)

// Widget is one session's application and the view it renders into
type Widget struct {
	SessionID string
	App       widget.UseCase
	View      *view.HTMLView

	lastSeen time.Time
	initOnce sync.Once
	ready    chan struct{}
}

// Init runs App.Init once per widget and returns its error to that caller only.
// Concurrent callers wait until it has finished or their ctx is done.
func (w *Widget) Init(ctx context.Context) error {
	ran := false
	var err error
	w.initOnce.Do(func() {
		defer close(w.ready)
		ran = true
		err = w.App.Init(ctx)
	})
	if ran {
		return err
	}

	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Factory builds the application of a new session around its view
type Factory func(sessionID string, v *view.HTMLView) widget.UseCase

// Registry holds the widgets of all live sessions
type Registry struct {
	mu      sync.Mutex
	widgets map[string]*Widget
	factory Factory
	now     func() time.Time
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		widgets: make(map[string]*Widget),
		factory: factory,
		now:     time.Now,
	}
}

// GetOrCreate returns the session's widget, creating it on first use. created reports whether the session is new.
func (r *Registry) GetOrCreate(sessionID string) (w *Widget, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.widgets[sessionID]; ok {
		w.lastSeen = r.now()
		return w, false
	}

	v := view.NewHTMLView()
	w = &Widget{
		SessionID: sessionID,
		App:       r.factory(sessionID, v),
		View:      v,
		lastSeen:  r.now(),
		ready:     make(chan struct{}),
	}
	r.widgets[sessionID] = w
	return w, true
}

// Evict drops widgets not used for longer than idle and returns how many were removed
func (r *Registry) Evict(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	evicted := 0
	for id, w := range r.widgets {
		if w.lastSeen.Before(cutoff) {
			delete(r.widgets, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.widgets)
}
