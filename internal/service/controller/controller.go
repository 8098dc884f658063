package controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jortega-dev/tienda-admin/internal/dal/api"
)

// store is the remote collection contract the controller mutates through.
type store[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, body map[string]any) (string, error)
	Update(ctx context.Context, id int64, body map[string]any) (string, error)
	Remove(ctx context.Context, id int64) (string, error)
}

// Gate grants or denies permission for a destructive action. It must
// answer false on anything but an explicit affirmation.
type Gate interface {
	Ask(message string) bool
}

// Notifier surfaces operation outcomes to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Auxiliary is a reference collection fetched alongside the primary list,
// typically to populate a foreign-key dropdown. Failures log only; they
// never block the primary list.
type Auxiliary struct {
	Name  string
	Fetch func(ctx context.Context) error
}

// Controller wires the list cache, form session and remote store together
// for one entity type. Four instantiations cover the whole dataset; all
// per-entity variation lives in the Schema.
type Controller[T Entity] struct {
	schema      Schema[T]
	store       store[T]
	cache       *ListCache[T]
	form        *FormSession
	gate        Gate
	notifier    Notifier
	auxiliaries []Auxiliary
}

// option is a function that configures the Controller.
type option[T Entity] func(*Controller[T])

// WithAuxiliary registers a reference collection to fetch on mount.
func WithAuxiliary[T Entity](aux Auxiliary) option[T] {
	return func(c *Controller[T]) {
		c.auxiliaries = append(c.auxiliaries, aux)
	}
}

// NewController creates a controller for one entity type.
func NewController[T Entity](
	schema Schema[T],
	store store[T],
	gate Gate,
	notifier Notifier,
	opts ...option[T],
) *Controller[T] {
	c := &Controller[T]{
		schema:   schema,
		store:    store,
		cache:    NewListCache[T](),
		form:     NewFormSession(),
		gate:     gate,
		notifier: notifier,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Records returns the cached collection.
func (c *Controller[T]) Records() []T { return c.cache.Records() }

// Loading reports whether the primary list is refreshing.
func (c *Controller[T]) Loading() bool { return c.cache.Loading() }

// Form returns the form session for direct field access by the view.
func (c *Controller[T]) Form() *FormSession { return c.form }

// Schema returns the entity schema the controller was built with.
func (c *Controller[T]) Schema() Schema[T] { return c.schema }

// Mount loads the primary list and then every auxiliary reference
// collection. Auxiliary failures are logged and swallowed: a dropdown
// without options is still a renderable view.
func (c *Controller[T]) Mount(ctx context.Context) error {
	err := c.Refresh(ctx)

	for _, aux := range c.auxiliaries {
		if auxErr := aux.Fetch(ctx); auxErr != nil {
			slog.Error("failed to load reference list", "list", aux.Name, "error", auxErr)
		}
	}

	return err
}

// Refresh re-fetches the primary list, replacing the cache wholesale.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	err := c.cache.Refresh(ctx, c.store.List)
	if err != nil {
		c.notifier.Error(api.UserMessage(err))

		return err
	}

	return nil
}

// SetField stores one draft value.
func (c *Controller[T]) SetField(name, value string) {
	c.form.SetField(name, value)
}

// Submit dispatches the draft as a create or an update depending on the
// form mode. On success the list is re-fetched and the form reset; on
// failure the draft stays untouched for correction.
func (c *Controller[T]) Submit(ctx context.Context) error {
	body, err := c.schema.Body(c.form.Draft())
	if err != nil {
		c.notifier.Error(err.Error())

		return err
	}

	var message string
	if id, editing := c.form.EditingID(); editing {
		message, err = c.store.Update(ctx, id, body)
	} else {
		message, err = c.store.Create(ctx, body)
	}
	if err != nil {
		c.notifier.Error(api.UserMessage(err))

		return err
	}

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		return refreshErr
	}
	c.form.Reset()

	if message == "" {
		message = fmt.Sprintf("%s guardado correctamente", c.schema.Title)
	}
	c.notifier.Success(message)

	return nil
}

// RequestEdit seeds the form from an existing record and switches it to
// Editing mode.
func (c *Controller[T]) RequestEdit(entity T) {
	c.form.BeginEdit(entity.EntityID(), c.schema.Seed(entity))
}

// RequestDelete asks the confirmation gate and, only when affirmed,
// removes the record and re-fetches the list. A denied gate issues no
// store call at all.
func (c *Controller[T]) RequestDelete(ctx context.Context, id int64, label string) error {
	prompt := fmt.Sprintf("¿Deseas eliminar %s %s?", c.schema.Title, label)
	if !c.gate.Ask(prompt) {
		return nil
	}

	message, err := c.store.Remove(ctx, id)
	if err != nil {
		c.notifier.Error(api.UserMessage(err))

		return err
	}

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		return refreshErr
	}

	if message == "" {
		message = fmt.Sprintf("%s eliminado correctamente", c.schema.Title)
	}
	c.notifier.Success(message)

	return nil
}
