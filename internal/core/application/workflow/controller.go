package workflow

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/toast"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/metrics"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrWorkflowClosed       = errors.New("workflow instance is closed")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrNotReady             = errors.New("workflow catalogs are not loaded")
	ErrModeMismatch         = errors.New("operation is not available in this workflow mode")
)

// User-facing messages.
const (
	MsgNotAuthenticated  = "No autenticado"
	MsgSelectAddresses   = "Selecciona dirección de origen y destino"
	MsgWeightNotPositive = "El peso debe ser mayor a 0"
	MsgQuantityTooLow    = "La cantidad debe ser al menos 1"
	MsgNoPackageTypes    = "No hay tipos de paquete disponibles"
	MsgSelectStatus      = "Selecciona un estatus"
	MsgUnknownStatus     = "Estatus no válido"
	MsgOrderCreated      = "Orden creada correctamente"
	MsgOrderUpdated      = "Orden actualizada"
)

// Mode tells whether an instance composes a new order or inspects an existing one.
type Mode int

const (
	ModeNone Mode = iota
	ModeCreate
	ModeView
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeView:
		return "view"
	default:
		return "none"
	}
}

// Form is the editable part of an order.
type Form struct {
	OriginAddressID      kernel.ID
	DestinationAddressID kernel.ID
	WeightKg             float64
	Quantity             int
	Observations         string
	InternalNotes        string
}

// Classification is the package type a weight falls into, ready to present.
type Classification struct {
	PackageTypeID int64
	Bracket       catalog.PackageType
	Described     bool
}

// Snapshot is a consistent copy of an instance's observable state.
type Snapshot struct {
	ID       uuid.UUID
	Mode     Mode
	State    State
	Err      error
	Catalogs catalog.Catalogs
	Detail   *order.Detail
	Form     Form
	Created  *order.Order
	Closed   bool
}

// Hooks are invoked outside the controller's lock.
type Hooks struct {
	// OnSaved runs after any successful create or status change.
	OnSaved func()
	// OnClose runs once when the instance is closed.
	OnClose func()
}

// SessionSource exposes the current session.
type SessionSource interface {
	Current() session.Session
}

type (
	CatalogLoader interface {
		Handle(ctx context.Context, query queries.LoadCatalogsQuery) (catalog.Catalogs, error)
	}
	DetailLoader interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (order.Detail, error)
	}
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	StatusUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
)

// Dependencies are shared by every instance; none of them holds per-instance state.
type Dependencies struct {
	Sessions      SessionSource
	Notifier      ports.Notifier
	Catalogs      CatalogLoader
	Details       DetailLoader
	Creator       OrderCreator
	StatusUpdater StatusUpdater
	Logger        *slog.Logger
	Clock         func() time.Time
}

func (d Dependencies) validate() error {
	var missing []error
	if d.Sessions == nil {
		missing = append(missing, errs.NewValueIsRequiredError("sessions"))
	}
	if d.Notifier == nil {
		missing = append(missing, errs.NewValueIsRequiredError("notifier"))
	}
	if d.Catalogs == nil {
		missing = append(missing, errs.NewValueIsRequiredError("catalogs"))
	}
	if d.Details == nil {
		missing = append(missing, errs.NewValueIsRequiredError("details"))
	}
	if d.Creator == nil {
		missing = append(missing, errs.NewValueIsRequiredError("creator"))
	}
	if d.StatusUpdater == nil {
		missing = append(missing, errs.NewValueIsRequiredError("status_updater"))
	}
	return errors.Join(missing...)
}

// Controller is one workflow instance. All methods are safe for concurrent use; network
// calls run without holding the lock and their results are applied only if the instance
// was neither closed nor reopened meanwhile.
type Controller struct {
	id         uuid.UUID
	deps       Dependencies
	hooks      Hooks
	classifier services.PackageClassifier
	logger     *slog.Logger
	now        func() time.Time

	mu             sync.Mutex
	generation     uint64
	closed         bool
	state          State
	lastErr        error
	mode           Mode
	catalogs       catalog.Catalogs
	catalogsLoaded bool
	detail         *order.Detail
	form           Form
	created        *order.Order
}

// NewController creates an Idle instance with a fresh id.
func NewController(deps Dependencies, hooks Hooks) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	id := uuid.New()
	return &Controller{
		id:         id,
		deps:       deps,
		hooks:      hooks,
		classifier: services.NewPackageClassifier(),
		logger:     deps.Logger.With("component", "workflow", "workflow_id", id.String()),
		now:        deps.Clock,
		state:      Idle,
	}, nil
}

func (c *Controller) ID() uuid.UUID {
	return c.id
}

// Snapshot returns a copy of the instance state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		ID:       c.id,
		Mode:     c.mode,
		State:    c.state,
		Err:      c.lastErr,
		Catalogs: c.catalogs,
		Form:     c.form,
		Created:  c.created,
		Closed:   c.closed,
	}
	if c.detail != nil {
		d := *c.detail
		snap.Detail = &d
	}
	return snap
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OpenForCreate resets the form and loads catalogs for the caller.
func (c *Controller) OpenForCreate(ctx context.Context) error {
	sess, gen, err := c.open(ModeCreate)
	if err != nil {
		return err
	}

	return c.loadCatalogs(ctx, gen, sess, nil)
}

// OpenForView fetches an order's detail and then loads catalogs scoped to the order's
// owner, so address options reflect the owner rather than the viewer.
func (c *Controller) OpenForView(ctx context.Context, orderID kernel.ID) error {
	sess, gen, err := c.open(ModeView)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDetailQuery(sess.Token(), orderID)
	if err != nil {
		return c.failLoad(gen, err)
	}

	detail, err := c.deps.Details.Handle(ctx, query)
	if err != nil {
		return c.failLoad(gen, err)
	}

	c.mu.Lock()
	if !c.isLive(gen) {
		c.mu.Unlock()
		return c.discard("order detail")
	}
	c.detail = &detail
	c.form = Form{
		OriginAddressID:      detail.Origin.ID,
		DestinationAddressID: detail.Destination.ID,
		WeightKg:             detail.ActualWeightKg,
		Quantity:             detail.Quantity,
		Observations:         detail.Observations,
	}
	if sess.Role().IsAdmin() {
		c.form.InternalNotes = detail.InternalNotes
	}
	c.mu.Unlock()

	owner := detail.OwnerID
	return c.loadCatalogs(ctx, gen, sess, &owner)
}

// open resets the instance for a new round and returns the generation that owns it.
func (c *Controller) open(mode Mode) (session.Session, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return session.Session{}, 0, ErrWorkflowClosed
	}
	if c.state == Submitting {
		return session.Session{}, 0, ErrSubmissionInProgress
	}

	sess := c.deps.Sessions.Current()
	if !sess.IsAuthenticated() {
		c.deps.Notifier.Notify(toast.Error, MsgNotAuthenticated)
		return session.Session{}, 0, errs.ErrNotAuthenticated
	}

	c.generation++
	c.mode = mode
	c.lastErr = nil
	c.catalogs = catalog.Catalogs{}
	c.catalogsLoaded = false
	c.detail = nil
	c.created = nil
	c.form = Form{Quantity: 1}
	c.setState(Idle)
	c.transition(State.StartLoading)

	c.logger.Debug("workflow opened", "mode", mode.String(), "user_id", sess.UserID())
	return sess, c.generation, nil
}

func (c *Controller) loadCatalogs(ctx context.Context, gen uint64, sess session.Session, owner *kernel.ID) error {
	query, err := queries.NewLoadCatalogsQuery(sess.Token(), sess.UserID(), owner)
	if err != nil {
		return c.failLoad(gen, err)
	}

	loaded, err := c.deps.Catalogs.Handle(ctx, query)
	if err != nil {
		return c.failLoad(gen, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isLive(gen) {
		return c.discard("catalogs")
	}
	c.catalogs = loaded
	c.catalogsLoaded = true
	c.transition(State.Loaded)
	return nil
}

func (c *Controller) failLoad(gen uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isLive(gen) {
		return c.discard("failed load")
	}
	c.lastErr = err
	c.transition(State.Fail)
	c.logger.Warn("workflow load failed", "error", err)
	c.deps.Notifier.Notify(toast.Error, err.Error())
	return err
}

// Classify maps a weight to a bracket of this instance's catalog. It is re-evaluated
// on every call.
func (c *Controller) Classify(weightKg float64) Classification {
	c.mu.Lock()
	brackets := c.catalogs
	c.mu.Unlock()

	id := c.classifier.Classify(weightKg, brackets.PackageTypes)
	bracket, ok := brackets.Describe(id)
	return Classification{PackageTypeID: id, Bracket: bracket, Described: ok}
}

// SubmitCreate validates the form locally and creates the order. Validation failures
// are returned as *errs.ValidationError, reported as a warning toast and leave the state
// untouched without any request being issued.
func (c *Controller) SubmitCreate(ctx context.Context, form Form) (*order.Order, error) {
	c.mu.Lock()
	if err := c.checkSubmittable(ModeCreate); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	sess := c.deps.Sessions.Current()
	if !sess.IsAuthenticated() {
		c.mu.Unlock()
		c.deps.Notifier.Notify(toast.Error, MsgNotAuthenticated)
		return nil, errs.ErrNotAuthenticated
	}

	draft, err := c.buildDraft(sess, form)
	if err != nil {
		c.mu.Unlock()
		c.logger.Info("order form rejected", "error", err)
		c.deps.Notifier.Notify(toast.Warning, err.Error())
		return nil, err
	}

	cmd, err := commands.NewCreateOrderCommand(sess.Token(), draft)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.form = form
	c.transition(State.StartSubmitting)
	gen := c.generation
	c.mu.Unlock()

	created, err := c.deps.Creator.Handle(ctx, cmd)

	c.mu.Lock()
	if !c.isLive(gen) {
		c.mu.Unlock()
		return nil, c.discard("order creation")
	}
	if err != nil {
		c.lastErr = err
		c.transition(State.Fail)
		c.mu.Unlock()
		c.logger.Warn("order creation rejected", "error", err)
		c.deps.Notifier.Notify(toast.Error, err.Error())
		return nil, err
	}
	if created == nil {
		created = draft
	}
	c.created = created
	c.lastErr = nil
	c.transition(State.Succeed)
	c.mu.Unlock()

	c.logger.Info("order created", "order_id", created.ID(), "order_number", created.OrderNumber())
	c.deps.Notifier.Notify(toast.Success, MsgOrderCreated)
	c.fire(c.hooks.OnSaved)
	return created, nil
}

// buildDraft applies the local form rules and stamps the order with the caller's
// identity. Callers hold c.mu.
func (c *Controller) buildDraft(sess session.Session, form Form) (*order.Order, error) {
	if !form.OriginAddressID.IsSet() || !form.DestinationAddressID.IsSet() {
		return nil, errs.NewValidationError(MsgSelectAddresses)
	}
	if math.IsNaN(form.WeightKg) || math.IsInf(form.WeightKg, 0) || form.WeightKg <= 0 {
		return nil, errs.NewValidationError(MsgWeightNotPositive)
	}
	if form.Quantity < 1 {
		return nil, errs.NewValidationError(MsgQuantityTooLow)
	}

	packageTypeID := c.classifier.Classify(form.WeightKg, c.catalogs.PackageTypes)
	switch packageTypeID {
	case catalog.NoStandardBracket:
		return nil, errs.NewValidationError(catalog.OverflowDescription)
	case catalog.Unclassified:
		return nil, errs.NewValidationError(MsgNoPackageTypes)
	}

	weight, err := kernel.NewWeight(form.WeightKg)
	if err != nil {
		return nil, errs.NewValidationError(MsgWeightNotPositive)
	}

	internalNotes := ""
	if sess.Role().IsAdmin() {
		internalNotes = form.InternalNotes
	}

	draft, err := order.NewOrder(order.Draft{
		CustomerID:           sess.UserID(),
		OriginAddressID:      form.OriginAddressID,
		DestinationAddressID: form.DestinationAddressID,
		Quantity:             form.Quantity,
		Weight:               weight,
		PackageTypeID:        kernel.ID(packageTypeID),
		Observations:         strings.TrimSpace(form.Observations),
		InternalNotes:        internalNotes,
		CreatedAt:            c.now(),
	})
	if err != nil {
		return nil, errs.NewValidationError(err.Error())
	}
	return draft, nil
}

// SubmitStatusUpdate asks the backend to move orderID to status. Only admins may call
// it; anyone else gets errs.ErrForbidden and no request is issued. When status options
// are loaded the status must be one of them.
func (c *Controller) SubmitStatusUpdate(ctx context.Context, orderID kernel.ID, status string, internalNotes string) error {
	c.mu.Lock()
	if err := c.checkSubmittable(ModeView); err != nil {
		c.mu.Unlock()
		return err
	}

	sess := c.deps.Sessions.Current()
	if !sess.IsAuthenticated() {
		c.mu.Unlock()
		c.deps.Notifier.Notify(toast.Error, MsgNotAuthenticated)
		return errs.ErrNotAuthenticated
	}
	if !sess.Role().IsAdmin() {
		c.mu.Unlock()
		c.logger.Warn("status update refused for non-admin", "user_id", sess.UserID(), "role", sess.Role())
		return errs.ErrForbidden
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		c.mu.Unlock()
		vErr := errs.NewValidationError(MsgSelectStatus)
		c.deps.Notifier.Notify(toast.Warning, vErr.Message)
		return vErr
	}
	if len(c.catalogs.StatusOptions) > 0 && !c.catalogs.HasStatus(parsed.String()) {
		c.mu.Unlock()
		vErr := errs.NewValidationError(MsgUnknownStatus)
		c.deps.Notifier.Notify(toast.Warning, vErr.Message)
		return vErr
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(sess.Token(), sess.Role(), orderID, parsed, internalNotes)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.transition(State.StartSubmitting)
	gen := c.generation
	c.mu.Unlock()

	err = c.deps.StatusUpdater.Handle(ctx, cmd)

	c.mu.Lock()
	if !c.isLive(gen) {
		c.mu.Unlock()
		return c.discard("status update")
	}
	if err != nil {
		c.lastErr = err
		c.transition(State.Fail)
		c.mu.Unlock()
		c.logger.Warn("status update rejected", "order_id", orderID, "error", err)
		c.deps.Notifier.Notify(toast.Error, err.Error())
		return err
	}
	if c.detail != nil && c.detail.ID == orderID {
		c.detail.Status = parsed
		c.detail.InternalNotes = internalNotes
	}
	c.form.InternalNotes = internalNotes
	c.lastErr = nil
	c.transition(State.Succeed)
	c.mu.Unlock()

	c.logger.Info("order status updated", "order_id", orderID, "status", parsed)
	c.deps.Notifier.Notify(toast.Success, MsgOrderUpdated)
	c.fire(c.hooks.OnSaved)
	return nil
}

// checkSubmittable gates submissions. Callers hold c.mu.
func (c *Controller) checkSubmittable(mode Mode) error {
	switch {
	case c.closed:
		return ErrWorkflowClosed
	case c.state == Submitting:
		return ErrSubmissionInProgress
	case c.mode != mode:
		return ErrModeMismatch
	case !c.catalogsLoaded || (c.state != Ready && c.state != Failed):
		return ErrNotReady
	}
	return nil
}

// Close tears the instance down. Requests still in flight are discarded when they
// complete. Closing twice is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.generation++
	c.setState(Idle)
	c.mu.Unlock()

	c.logger.Debug("workflow closed")
	c.fire(c.hooks.OnClose)
}

// isLive reports whether gen still owns the instance. Callers hold c.mu.
func (c *Controller) isLive(gen uint64) bool {
	return !c.closed && c.generation == gen
}

func (c *Controller) discard(what string) error {
	c.logger.Debug("discarding stale result", "result", what)
	return ErrWorkflowClosed
}

// transition applies a guarded state change. Callers hold c.mu. An illegal transition
// is a programming error and is logged, not applied.
func (c *Controller) transition(step func(State) (State, error)) {
	next, err := step(c.state)
	if err != nil {
		c.logger.Error("illegal workflow transition", "from", c.state.String(), "error", err)
		return
	}
	c.setState(next)
}

func (c *Controller) setState(next State) {
	c.state = next
	metrics.WorkflowTransitionsTotal.WithLabelValues(next.String()).Inc()
}

func (c *Controller) fire(hook func()) {
	if hook != nil {
		hook()
	}
}
