// Package picker implements the selectable-entity fields used by the forms:
// an option list loaded from a repository read, bound to a nullable form slot,
// with inline edit, duplicate and delete actions.
package picker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

const defaultReconcileTimeout = 5 * time.Second

var (
	ErrUnknownOption    = errors.New("unknown option")
	ErrActionNotAllowed = errors.New("action not allowed")
	ErrClosed           = errors.New("picker closed")
)

type ActionKind string

const (
	ActionEdit      ActionKind = "edit"
	ActionDuplicate ActionKind = "duplicate"
	ActionDelete    ActionKind = "delete"
)

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionEdit, ActionDuplicate, ActionDelete:
		return true
	default:
		return false
	}
}

type Option struct {
	Value       int64        `json:"value"`
	Label       string       `json:"label"`
	Description *string      `json:"description,omitempty"`
	IsTemplate  bool         `json:"isTemplate,omitempty"`
	Actions     []ActionKind `json:"actions,omitempty"`
}

func (o Option) allows(kind ActionKind) bool {
	return slices.Contains(o.Actions, kind)
}

// View is what a client renders for a field.
type View struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Options     []Option `json:"options"`
	Selected    *int64   `json:"selected"`
}

// ActResult carries either a navigation target (edit, duplicate) or the
// option list after a delete. Options is null for navigation and a list,
// possibly empty, after a delete.
type ActResult struct {
	Redirect string   `json:"redirect,omitempty"`
	Options  []Option `json:"options"`
}

type Config[T any] struct {
	Name        string
	Label       string
	Placeholder string

	// Load fetches the rows for the given dependency (e.g. a program id).
	// Fields without a dependency get 0.
	Load func(ctx context.Context, dep int64) ([]T, error)
	Map  func(row T) Option
	// NeedsDependency fields show no options until SetDependency is called.
	NeedsDependency bool

	Delete   func(ctx context.Context, id int64) error
	Navigate map[ActionKind]func(id int64) string
	OnSelect func(ctx context.Context, value *int64)

	Slot             *Slot
	ReconcileTimeout time.Duration
	MetricsManager   *metrics.Manager
}

// Field is a generic option list over rows of type T. Safe for concurrent use.
//
// Every event that replaces or edits the list (load, dependency change, local
// delete) bumps the generation. A fetch only applies its result when the
// generation it started with is still current, so a slow reconcile can never
// overwrite a newer list.
type Field[T any] struct {
	cfg Config[T]

	mutex      sync.Mutex
	options    []Option
	loaded     bool
	dep        int64
	hasDep     bool
	generation uint64
	closed     bool

	reconciles sync.WaitGroup
}

func NewField[T any](cfg Config[T]) *Field[T] {
	if cfg.Slot == nil {
		cfg.Slot = &Slot{}
	}
	if cfg.ReconcileTimeout <= 0 {
		cfg.ReconcileTimeout = defaultReconcileTimeout
	}
	return &Field[T]{
		cfg:     cfg,
		options: []Option{},
	}
}

func (f *Field[T]) Name() string {
	return f.cfg.Name
}

func (f *Field[T]) Slot() *Slot {
	return f.cfg.Slot
}

// Load fetches and fully replaces the options.
func (f *Field[T]) Load(ctx context.Context) error {
	f.mutex.Lock()
	if f.closed {
		f.mutex.Unlock()
		return ErrClosed
	}
	if f.cfg.NeedsDependency && !f.hasDep {
		f.options = []Option{}
		f.loaded = true
		f.mutex.Unlock()
		return nil
	}
	f.generation++
	gen, dep := f.generation, f.dep
	f.mutex.Unlock()

	return f.fetch(ctx, gen, dep)
}

// View returns the current options and selection, loading on first use.
func (f *Field[T]) View(ctx context.Context) (View, error) {
	f.mutex.Lock()
	loaded := f.loaded
	f.mutex.Unlock()

	if !loaded {
		if err := f.Load(ctx); err != nil {
			return View{}, err
		}
	}

	return View{
		Name:        f.cfg.Name,
		Label:       f.cfg.Label,
		Placeholder: f.cfg.Placeholder,
		Options:     f.Options(),
		Selected:    f.cfg.Slot.Get(),
	}, nil
}

func (f *Field[T]) Options() []Option {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return slices.Clone(f.options)
}

// SetDependency reloads the options for a new dependency value. Applying the
// current dependency again does nothing.
func (f *Field[T]) SetDependency(ctx context.Context, dep int64) error {
	f.mutex.Lock()
	if f.closed {
		f.mutex.Unlock()
		return ErrClosed
	}
	if f.hasDep && f.dep == dep {
		f.mutex.Unlock()
		return nil
	}
	f.dep = dep
	f.hasDep = true
	f.generation++
	gen := f.generation
	f.mutex.Unlock()

	return f.fetch(ctx, gen, dep)
}

// Reload fetches the options for dep even when dep is already applied.
func (f *Field[T]) Reload(ctx context.Context, dep int64) error {
	f.mutex.Lock()
	if f.closed {
		f.mutex.Unlock()
		return ErrClosed
	}
	f.dep = dep
	f.hasDep = true
	f.generation++
	gen := f.generation
	f.mutex.Unlock()

	return f.fetch(ctx, gen, dep)
}

// ClearDependency empties a dependent field and its selection.
func (f *Field[T]) ClearDependency() {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.hasDep {
		return
	}
	f.dep = 0
	f.hasDep = false
	f.generation++
	f.options = []Option{}
	f.loaded = f.cfg.NeedsDependency
	f.cfg.Slot.Clear()
}

// Select binds value to the slot, nil clears it.
func (f *Field[T]) Select(ctx context.Context, value *int64) error {
	f.mutex.Lock()
	if value != nil && f.indexOf(*value) < 0 {
		f.mutex.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownOption, *value)
	}
	f.cfg.Slot.Set(value)
	f.mutex.Unlock()

	if f.cfg.OnSelect != nil {
		f.cfg.OnSelect(ctx, f.cfg.Slot.Get())
	}
	return nil
}

func (f *Field[T]) Act(ctx context.Context, id int64, kind ActionKind) (ActResult, error) {
	f.mutex.Lock()
	idx := f.indexOf(id)
	if idx < 0 {
		f.mutex.Unlock()
		return ActResult{}, fmt.Errorf("%w: %d", ErrUnknownOption, id)
	}
	allowed := f.options[idx].allows(kind)
	f.mutex.Unlock()

	if !allowed {
		return ActResult{}, fmt.Errorf("%w: %s on %d", ErrActionNotAllowed, kind, id)
	}

	if kind == ActionDelete {
		return f.delete(ctx, id)
	}

	target, ok := f.cfg.Navigate[kind]
	if !ok {
		return ActResult{}, fmt.Errorf("%w: %s has no target", ErrActionNotAllowed, kind)
	}
	return ActResult{Redirect: target(id)}, nil
}

// delete removes the row in the store first, the local list is only touched
// after the store confirmed it. The option is spliced out and a background
// fetch reconciles the list with the store.
func (f *Field[T]) delete(ctx context.Context, id int64) (ActResult, error) {
	if f.cfg.Delete == nil {
		return ActResult{}, fmt.Errorf("%w: %s cannot delete", ErrActionNotAllowed, f.cfg.Name)
	}

	if err := f.cfg.Delete(ctx, id); err != nil {
		log.Errorf("picker [%s]: delete option [%d]: %s", f.cfg.Name, id, err)
		return ActResult{}, err
	}

	f.mutex.Lock()
	if idx := f.indexOf(id); idx >= 0 {
		f.options = slices.Delete(f.options, idx, idx+1)
	}
	if selected := f.cfg.Slot.Get(); selected != nil && *selected == id {
		f.cfg.Slot.Clear()
	}
	f.generation++
	gen, dep := f.generation, f.dep
	options := slices.Clone(f.options)
	if options == nil {
		options = []Option{}
	}
	if !f.closed {
		f.reconciles.Add(1)
		go f.reconcile(ctx, gen, dep)
	}
	f.mutex.Unlock()

	return ActResult{Options: options}, nil
}

func (f *Field[T]) reconcile(parent context.Context, gen uint64, dep int64) {
	defer f.reconciles.Done()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), f.cfg.ReconcileTimeout)
	defer cancel()

	if err := f.fetch(ctx, gen, dep); err != nil {
		log.Warnf("picker [%s]: reconcile: %s", f.cfg.Name, err)
	}
}

func (f *Field[T]) fetch(ctx context.Context, gen uint64, dep int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "picker.fetch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f.cfg.MetricsManager.PickerReload(f.cfg.Name)

	rows, err := f.cfg.Load(ctx, dep)
	if err != nil {
		return fmt.Errorf("picker [%s] load: %w", f.cfg.Name, err)
	}

	options := make([]Option, 0, len(rows))
	for _, row := range rows {
		options = append(options, f.cfg.Map(row))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if gen != f.generation {
		log.Debugf("picker [%s]: dropping stale options, generation %d != %d", f.cfg.Name, gen, f.generation)
		return nil
	}
	f.options = options
	f.loaded = true
	if selected := f.cfg.Slot.Get(); selected != nil && f.indexOf(*selected) < 0 {
		f.cfg.Slot.Clear()
	}

	return nil
}

func (f *Field[T]) indexOf(value int64) int {
	return slices.IndexFunc(f.options, func(o Option) bool {
		return o.Value == value
	})
}

// Wait blocks until the background reconciles finish.
func (f *Field[T]) Wait() {
	f.reconciles.Wait()
}

// Close stops scheduling reconciles and waits for the running ones.
func (f *Field[T]) Close() {
	f.mutex.Lock()
	f.closed = true
	f.mutex.Unlock()
	f.reconciles.Wait()
}
