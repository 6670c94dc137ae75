package http

import (
	"math"
	"time"

	"logistics/internal/core/application/workflow"
	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/toast"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        uint64     `json:"user_id,omitempty"`
	Role          string     `json:"role,omitempty"`
	Email         string     `json:"email,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func sessionToResponse(s session.Session) sessionResponse {
	if !s.IsAuthenticated() {
		return sessionResponse{}
	}
	resp := sessionResponse{
		Authenticated: true,
		UserID:        uint64(s.UserID()),
		Role:          s.Role().String(),
		Email:         s.Email(),
	}
	if t := s.ExpiresAt(); !t.IsZero() {
		resp.ExpiresAt = &t
	}
	return resp
}

type toastResponse struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	TTLMillis int64     `json:"ttl_ms"`
	CreatedAt time.Time `json:"created_at"`
}

func toastsToResponse(list []toast.Toast) []toastResponse {
	out := make([]toastResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toastResponse{
			ID:        uint64(t.ID),
			Kind:      string(t.Kind),
			Message:   t.Message,
			TTLMillis: t.TTL.Milliseconds(),
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

type orderResponse struct {
	ID                   uint64    `json:"id"`
	OrderNumber          string    `json:"order_number"`
	CustomerID           uint64    `json:"customer_id"`
	CreatedBy            uint64    `json:"created_by"`
	OriginAddressID      uint64    `json:"origin_address_id"`
	DestinationAddressID uint64    `json:"destination_address_id"`
	Quantity             int       `json:"quantity"`
	WeightKg             float64   `json:"actual_weight_kg"`
	PackageTypeID        uint64    `json:"package_type_id"`
	Observations         string    `json:"observations"`
	InternalNotes        string    `json:"internal_notes,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func orderToResponse(o *order.Order, admin bool) orderResponse {
	r := o.Record()
	resp := orderResponse{
		ID:                   uint64(r.ID),
		OrderNumber:          r.OrderNumber,
		CustomerID:           uint64(r.CustomerID),
		CreatedBy:            uint64(r.CreatedBy),
		OriginAddressID:      uint64(r.OriginAddressID),
		DestinationAddressID: uint64(r.DestinationAddressID),
		Quantity:             r.Quantity,
		WeightKg:             r.ActualWeightKg,
		PackageTypeID:        uint64(r.PackageTypeID),
		Observations:         r.Observations,
		Status:               r.Status.String(),
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if admin {
		resp.InternalNotes = r.InternalNotes
	}
	return resp
}

type addressResponse struct {
	ID         uint64 `json:"id"`
	CustomerID uint64 `json:"customer_id"`
	Label      string `json:"label"`
	IsActive   bool   `json:"is_active"`
}

// packageTypeResponse leaves max_weight_kg null for the overflow bracket.
type packageTypeResponse struct {
	ID          uint64   `json:"id"`
	SizeCode    string   `json:"size_code"`
	MaxWeightKg *float64 `json:"max_weight_kg"`
	Description string   `json:"description"`
	Label       string   `json:"label"`
	Overflow    bool     `json:"overflow"`
}

func packageTypeToResponse(p catalog.PackageType) packageTypeResponse {
	resp := packageTypeResponse{
		ID:          uint64(p.ID),
		SizeCode:    p.SizeCode,
		Description: p.Description,
		Label:       p.Label(),
		Overflow:    p.IsOverflow(),
	}
	if !math.IsInf(p.MaxWeightKg, 0) && !math.IsNaN(p.MaxWeightKg) {
		maxKg := p.MaxWeightKg
		resp.MaxWeightKg = &maxKg
	}
	return resp
}

type statusOptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type catalogsResponse struct {
	Addresses     []addressResponse      `json:"addresses"`
	PackageTypes  []packageTypeResponse  `json:"package_types"`
	StatusOptions []statusOptionResponse `json:"status_options"`
}

func catalogsToResponse(c catalog.Catalogs) catalogsResponse {
	resp := catalogsResponse{
		Addresses:     make([]addressResponse, 0, len(c.Addresses)),
		PackageTypes:  make([]packageTypeResponse, 0, len(c.PackageTypes)),
		StatusOptions: make([]statusOptionResponse, 0, len(c.StatusOptions)),
	}
	for _, a := range c.Addresses {
		resp.Addresses = append(resp.Addresses, addressResponse{
			ID:         uint64(a.ID),
			CustomerID: uint64(a.CustomerID),
			Label:      a.Label(),
			IsActive:   a.IsActive,
		})
	}
	for _, p := range c.PackageTypes {
		resp.PackageTypes = append(resp.PackageTypes, packageTypeToResponse(p))
	}
	for _, s := range c.StatusOptions {
		resp.StatusOptions = append(resp.StatusOptions, statusOptionResponse{Label: s.Label, Value: s.Value})
	}
	return resp
}

type addressSummaryResponse struct {
	ID           uint64 `json:"id"`
	Street       string `json:"street"`
	Exterior     string `json:"exterior"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Postal       string `json:"postal"`
}

func addressSummaryToResponse(a order.AddressSummary) addressSummaryResponse {
	return addressSummaryResponse{
		ID:           uint64(a.ID),
		Street:       a.Street,
		Exterior:     a.Exterior,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		Postal:       a.Postal,
	}
}

type detailResponse struct {
	ID             uint64                 `json:"id"`
	OrderNumber    string                 `json:"order_number"`
	OwnerID        uint64                 `json:"owner_id"`
	OwnerName      string                 `json:"owner_name"`
	Origin         addressSummaryResponse `json:"origin"`
	Destination    addressSummaryResponse `json:"destination"`
	Quantity       int                    `json:"quantity"`
	ActualWeightKg float64                `json:"actual_weight_kg"`
	PackageTypeID  uint64                 `json:"package_type_id"`
	SizeCode       string                 `json:"size_code"`
	Observations   string                 `json:"observations"`
	InternalNotes  string                 `json:"internal_notes,omitempty"`
	Status         string                 `json:"status"`
	StatusLabel    string                 `json:"status_label"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type formDTO struct {
	OriginAddressID      uint64  `json:"origin_address_id"`
	DestinationAddressID uint64  `json:"destination_address_id"`
	WeightKg             float64 `json:"weight_kg"`
	Quantity             int     `json:"quantity"`
	Observations         string  `json:"observations"`
	InternalNotes        string  `json:"internal_notes,omitempty"`
}

func (f formDTO) toForm() workflow.Form {
	return workflow.Form{
		OriginAddressID:      kernel.ID(f.OriginAddressID),
		DestinationAddressID: kernel.ID(f.DestinationAddressID),
		WeightKg:             f.WeightKg,
		Quantity:             f.Quantity,
		Observations:         f.Observations,
		InternalNotes:        f.InternalNotes,
	}
}

func formToDTO(f workflow.Form) formDTO {
	return formDTO{
		OriginAddressID:      uint64(f.OriginAddressID),
		DestinationAddressID: uint64(f.DestinationAddressID),
		WeightKg:             f.WeightKg,
		Quantity:             f.Quantity,
		Observations:         f.Observations,
		InternalNotes:        f.InternalNotes,
	}
}

type openWorkflowRequest struct {
	Mode    string `json:"mode"`
	OrderID uint64 `json:"order_id"`
}

type workflowResponse struct {
	ID       string           `json:"id"`
	Mode     string           `json:"mode"`
	State    string           `json:"state"`
	Error    string           `json:"error,omitempty"`
	Catalogs catalogsResponse `json:"catalogs"`
	Detail   *detailResponse  `json:"detail,omitempty"`
	Form     formDTO          `json:"form"`
	Created  *orderResponse   `json:"created,omitempty"`
}

// snapshotToResponse hides internal notes from non-admin viewers.
func snapshotToResponse(snap workflow.Snapshot, admin bool) workflowResponse {
	resp := workflowResponse{
		ID:       snap.ID.String(),
		Mode:     snap.Mode.String(),
		State:    snap.State.String(),
		Catalogs: catalogsToResponse(snap.Catalogs),
		Form:     formToDTO(snap.Form),
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	if !admin {
		resp.Form.InternalNotes = ""
	}
	if d := snap.Detail; d != nil {
		detail := detailResponse{
			ID:             uint64(d.ID),
			OrderNumber:    d.OrderNumber,
			OwnerID:        uint64(d.OwnerID),
			OwnerName:      d.OwnerName,
			Origin:         addressSummaryToResponse(d.Origin),
			Destination:    addressSummaryToResponse(d.Destination),
			Quantity:       d.Quantity,
			ActualWeightKg: d.ActualWeightKg,
			PackageTypeID:  uint64(d.PackageTypeID),
			SizeCode:       d.SizeCode,
			Observations:   d.Observations,
			Status:         d.Status.String(),
			StatusLabel:    snap.Catalogs.StatusLabel(d.Status.String()),
			CreatedAt:      d.CreatedAt,
			UpdatedAt:      d.UpdatedAt,
		}
		if admin {
			detail.InternalNotes = d.InternalNotes
		}
		resp.Detail = &detail
	}
	if snap.Created != nil {
		created := orderToResponse(snap.Created, admin)
		resp.Created = &created
	}
	return resp
}

type classificationResponse struct {
	PackageTypeID int64                `json:"package_type_id"`
	Bracket       *packageTypeResponse `json:"bracket,omitempty"`
}

func classificationToResponse(c workflow.Classification) classificationResponse {
	resp := classificationResponse{PackageTypeID: c.PackageTypeID}
	if c.Described {
		b := packageTypeToResponse(c.Bracket)
		resp.Bracket = &b
	}
	return resp
}

type statusUpdateRequest struct {
	Status        string `json:"status"`
	InternalNotes string `json:"internal_notes"`
}
