package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Draft holds what a customer submits when composing a new order.
type Draft struct {
	CustomerID           kernel.ID
	OriginAddressID      kernel.ID
	DestinationAddressID kernel.ID
	Quantity             int
	Weight               kernel.Weight
	PackageTypeID        kernel.ID
	Observations         string
	InternalNotes        string
	CreatedAt            time.Time
}

// Record is an order as reported by the backend.
type Record struct {
	ID                   kernel.ID
	OrderNumber          string
	CreatedAt            time.Time
	CreatedBy            kernel.ID
	CustomerID           kernel.ID
	OriginAddressID      kernel.ID
	DestinationAddressID kernel.ID
	Quantity             int
	ActualWeightKg       float64
	PackageTypeID        kernel.ID
	Observations         string
	InternalNotes        string
	Status               Status
	UpdatedAt            time.Time
	UpdatedBy            kernel.ID
}

// Order is a shipping order. Orders built with NewOrder are drafts ready to submit:
// they have no ID or order number yet, their status is Created and they were
// created by their own customer.
//
// Order follows these invariants:
//   - Quantity is at least 1
//   - Actual weight is strictly positive
//   - Origin, destination and package type reference persisted records
//   - Origin and destination may be equal; the backend decides
type Order struct {
	id                   kernel.ID
	orderNumber          string
	createdAt            time.Time
	createdBy            kernel.ID
	customerID           kernel.ID
	originAddressID      kernel.ID
	destinationAddressID kernel.ID
	quantity             int
	weight               kernel.Weight
	packageTypeID        kernel.ID
	observations         string
	internalNotes        string
	status               Status
	updatedAt            time.Time
	updatedBy            kernel.ID

	isConstructed bool
}

// NewOrder validates a draft and stamps it with status Created.
func NewOrder(d Draft) (*Order, error) {
	o := &Order{
		createdAt:     d.CreatedAt,
		updatedAt:     d.CreatedAt,
		observations:  d.Observations,
		internalNotes: d.InternalNotes,
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomer(d.CustomerID),
		o.setAddresses(d.OriginAddressID, d.DestinationAddressID),
		o.setQuantity(d.Quantity),
		o.setWeight(d.Weight),
		o.setPackageType(d.PackageTypeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order reported by the backend. Only the identity is
// required; the backend is trusted for the rest.
func RestoreOrder(r Record) (*Order, error) {
	if err := r.ID.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                   r.ID,
		orderNumber:          r.OrderNumber,
		createdAt:            r.CreatedAt,
		createdBy:            r.CreatedBy,
		customerID:           r.CustomerID,
		originAddressID:      r.OriginAddressID,
		destinationAddressID: r.DestinationAddressID,
		quantity:             r.Quantity,
		packageTypeID:        r.PackageTypeID,
		observations:         r.Observations,
		internalNotes:        r.InternalNotes,
		status:               r.Status,
		updatedAt:            r.UpdatedAt,
		updatedBy:            r.UpdatedBy,
		isConstructed:        true,
	}
	if w, err := kernel.NewWeight(r.ActualWeightKg); err == nil {
		o.weight = w
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsDraft reports whether the order has not been persisted yet.
func (o *Order) IsDraft() bool {
	return !o.id.IsSet()
}

func (o *Order) ID() kernel.ID                   { return o.id }
func (o *Order) OrderNumber() string             { return o.orderNumber }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) CreatedBy() kernel.ID            { return o.createdBy }
func (o *Order) CustomerID() kernel.ID           { return o.customerID }
func (o *Order) OriginAddressID() kernel.ID      { return o.originAddressID }
func (o *Order) DestinationAddressID() kernel.ID { return o.destinationAddressID }
func (o *Order) Quantity() int                   { return o.quantity }
func (o *Order) Weight() kernel.Weight           { return o.weight }
func (o *Order) PackageTypeID() kernel.ID        { return o.packageTypeID }
func (o *Order) Observations() string            { return o.observations }
func (o *Order) InternalNotes() string           { return o.internalNotes }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }
func (o *Order) UpdatedBy() kernel.ID            { return o.updatedBy }

// Record flattens the order for transport.
func (o *Order) Record() Record {
	return Record{
		ID:                   o.id,
		OrderNumber:          o.orderNumber,
		CreatedAt:            o.createdAt,
		CreatedBy:            o.createdBy,
		CustomerID:           o.customerID,
		OriginAddressID:      o.originAddressID,
		DestinationAddressID: o.destinationAddressID,
		Quantity:             o.quantity,
		ActualWeightKg:       o.weight.Kg(),
		PackageTypeID:        o.packageTypeID,
		Observations:         o.observations,
		InternalNotes:        o.internalNotes,
		Status:               o.status,
		UpdatedAt:            o.updatedAt,
		UpdatedBy:            o.updatedBy,
	}
}

func (o *Order) setCustomer(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	o.createdBy = customerID
	return nil
}

func (o *Order) setAddresses(origin, destination kernel.ID) error {
	var originErr, destinationErr error
	if !origin.IsSet() {
		originErr = errs.NewValueIsRequiredError("origin_address_id")
	}
	if !destination.IsSet() {
		destinationErr = errs.NewValueIsRequiredError("destination_address_id")
	}
	if err := errors.Join(originErr, destinationErr); err != nil {
		return err
	}
	o.originAddressID = origin
	o.destinationAddressID = destination
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setPackageType(packageTypeID kernel.ID) error {
	if err := packageTypeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("package_type_id", err)
	}
	o.packageTypeID = packageTypeID
	return nil
}
