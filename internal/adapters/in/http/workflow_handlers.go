package http

import (
	"math"
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflow"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders. all=1 is honoured for admins only.
func (s *Server) ListOrders(c echo.Context) error {
	sess := s.sessions.Current()
	all := c.QueryParam("all") == "1"

	query, err := queries.NewListOrdersQuery(sess.Token(), sess.Role(), all)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.orders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	admin := sess.Role().IsAdmin()
	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderToResponse(o, admin))
	}
	return c.JSON(http.StatusOK, resp)
}

// OpenWorkflow handles POST /api/v1/workflows. A workflow whose initial load fails is
// closed again and the failure is returned.
func (s *Server) OpenWorkflow(c echo.Context) error {
	var req openWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Mode != workflow.ModeCreate.String() && req.Mode != workflow.ModeView.String() {
		return badRequest(c, "mode must be create or view")
	}

	orderID := kernel.ID(req.OrderID)
	if req.Mode == workflow.ModeView.String() {
		if err := orderID.Validate(); err != nil {
			return s.fail(c, err)
		}
	}

	ctrl, err := s.workflows.Open(workflow.Hooks{})
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	if req.Mode == workflow.ModeCreate.String() {
		err = ctrl.OpenForCreate(ctx)
	} else {
		err = ctrl.OpenForView(ctx, orderID)
	}
	if err != nil {
		ctrl.Close()
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, snapshotToResponse(ctrl.Snapshot(), s.isAdmin()))
}

// GetWorkflow handles GET /api/v1/workflows/:id.
func (s *Server) GetWorkflow(c echo.Context) error {
	ctrl, err := s.lookup(c)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshotToResponse(ctrl.Snapshot(), s.isAdmin()))
}

// Classify handles GET /api/v1/workflows/:id/classification?weight=.
func (s *Server) Classify(c echo.Context) error {
	ctrl, err := s.lookup(c)
	if err != nil {
		return s.fail(c, err)
	}

	weight, parseErr := strconv.ParseFloat(c.QueryParam("weight"), 64)
	if parseErr != nil {
		return badRequest(c, "weight must be a number")
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return badRequest(c, "weight must be a positive number")
	}
	return c.JSON(http.StatusOK, classificationToResponse(ctrl.Classify(weight)))
}

// SubmitOrder handles POST /api/v1/workflows/:id/orders.
func (s *Server) SubmitOrder(c echo.Context) error {
	ctrl, err := s.lookup(c)
	if err != nil {
		return s.fail(c, err)
	}

	var form formDTO
	if bindErr := c.Bind(&form); bindErr != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := ctrl.SubmitCreate(c.Request().Context(), form.toForm())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderToResponse(created, s.isAdmin()))
}

// UpdateStatus handles PATCH /api/v1/workflows/:id/status for the order the workflow
// is viewing.
func (s *Server) UpdateStatus(c echo.Context) error {
	ctrl, err := s.lookup(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req statusUpdateRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return badRequest(c, "Invalid request body")
	}

	snap := ctrl.Snapshot()
	if snap.Detail == nil {
		return s.fail(c, workflow.ErrModeMismatch)
	}

	if err = ctrl.SubmitStatusUpdate(c.Request().Context(), snap.Detail.ID, req.Status, req.InternalNotes); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, snapshotToResponse(ctrl.Snapshot(), true))
}

// CloseWorkflow handles DELETE /api/v1/workflows/:id.
func (s *Server) CloseWorkflow(c echo.Context) error {
	id, err := parseWorkflowID(c)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.workflows.Close(id); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// lookup resolves the :id path parameter to an open workflow.
func (s *Server) lookup(c echo.Context) (*workflow.Controller, error) {
	id, err := parseWorkflowID(c)
	if err != nil {
		return nil, err
	}
	return s.workflows.Get(id)
}

func parseWorkflowID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errs.NewValueIsInvalidErrorWithCause("workflow id", err)
	}
	return id, nil
}

func (s *Server) isAdmin() bool {
	return s.sessions.Current().Role().IsAdmin()
}
