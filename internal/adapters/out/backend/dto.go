package backend

import (
	"time"

	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginResponseDTO struct {
	Token string `json:"token"`
}

type addressDTO struct {
	ID             uint64 `json:"id"`
	CustomerID     uint64 `json:"customer_id"`
	Street         string `json:"street"`
	ExteriorNumber string `json:"exterior_number"`
	InteriorNumber string `json:"interior_number"`
	Neighborhood   string `json:"neighborhood"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	IsActive       *bool  `json:"is_active"`
}

func (d addressDTO) toDomain() catalog.Address {
	return catalog.Address{
		ID:             kernel.ID(d.ID),
		CustomerID:     kernel.ID(d.CustomerID),
		Street:         d.Street,
		ExteriorNumber: d.ExteriorNumber,
		InteriorNumber: d.InteriorNumber,
		Neighborhood:   d.Neighborhood,
		PostalCode:     d.PostalCode,
		City:           d.City,
		State:          d.State,
		Country:        d.Country,
		// A missing flag means active.
		IsActive: d.IsActive == nil || *d.IsActive,
	}
}

type packageTypeDTO struct {
	ID          uint64  `json:"id"`
	SizeCode    string  `json:"size_code"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
}

func (d packageTypeDTO) toDomain() catalog.PackageType {
	return catalog.PackageType{
		ID:          kernel.ID(d.ID),
		SizeCode:    d.SizeCode,
		MaxWeightKg: d.MaxWeightKg,
		Description: d.Description,
		IsActive:    d.IsActive,
	}
}

type statusOptionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type orderDTO struct {
	ID                   uint64    `json:"id"`
	OrderNumber          string    `json:"order_number"`
	CreatedAt            time.Time `json:"created_at"`
	CreatedBy            uint64    `json:"created_by"`
	CustomerID           uint64    `json:"customer_id"`
	OriginAddressID      uint64    `json:"origin_address_id"`
	DestinationAddressID uint64    `json:"destination_address_id"`
	Quantity             int       `json:"quantity"`
	ActualWeightKg       float64   `json:"actual_weight_kg"`
	PackageTypeID        uint64    `json:"package_type_id"`
	Observations         string    `json:"observations"`
	InternalNotes        string    `json:"internal_notes"`
	Status               string    `json:"status"`
	UpdatedAt            time.Time `json:"updated_at"`
	UpdatedBy            *uint64   `json:"updated_by"`
}

func orderToDTO(o *order.Order) orderDTO {
	r := o.Record()
	updatedBy := uint64(r.UpdatedBy)
	return orderDTO{
		ID:                   uint64(r.ID),
		OrderNumber:          r.OrderNumber,
		CreatedAt:            r.CreatedAt,
		CreatedBy:            uint64(r.CreatedBy),
		CustomerID:           uint64(r.CustomerID),
		OriginAddressID:      uint64(r.OriginAddressID),
		DestinationAddressID: uint64(r.DestinationAddressID),
		Quantity:             r.Quantity,
		ActualWeightKg:       r.ActualWeightKg,
		PackageTypeID:        uint64(r.PackageTypeID),
		Observations:         r.Observations,
		InternalNotes:        r.InternalNotes,
		Status:               r.Status.String(),
		UpdatedAt:            r.UpdatedAt,
		UpdatedBy:            &updatedBy,
	}
}

func (d orderDTO) toDomain() (*order.Order, error) {
	var updatedBy kernel.ID
	if d.UpdatedBy != nil {
		updatedBy = kernel.ID(*d.UpdatedBy)
	}
	return order.RestoreOrder(order.Record{
		ID:                   kernel.ID(d.ID),
		OrderNumber:          d.OrderNumber,
		CreatedAt:            d.CreatedAt,
		CreatedBy:            kernel.ID(d.CreatedBy),
		CustomerID:           kernel.ID(d.CustomerID),
		OriginAddressID:      kernel.ID(d.OriginAddressID),
		DestinationAddressID: kernel.ID(d.DestinationAddressID),
		Quantity:             d.Quantity,
		ActualWeightKg:       d.ActualWeightKg,
		PackageTypeID:        kernel.ID(d.PackageTypeID),
		Observations:         d.Observations,
		InternalNotes:        d.InternalNotes,
		Status:               order.Status(d.Status),
		UpdatedAt:            d.UpdatedAt,
		UpdatedBy:            updatedBy,
	})
}

type orderDetailDTO struct {
	ID                   uint64    `json:"id"`
	OrderNumber          string    `json:"order_number"`
	CreatedAt            time.Time `json:"created_at"`
	UserID               uint64    `json:"user_id"`
	FullName             string    `json:"full_name"`
	OriginAddressID      uint64    `json:"origin_address_id"`
	AOStreet             string    `json:"ao_street"`
	AOExterior           string    `json:"ao_exterior"`
	AONeighborhood       string    `json:"ao_neighborhood"`
	AOCity               string    `json:"ao_city"`
	AOPostal             string    `json:"ao_postal"`
	DestinationAddressID uint64    `json:"destination_address_id"`
	ADStreet             string    `json:"ad_street"`
	ADExterior           string    `json:"ad_exterior"`
	ADNeighborhood       string    `json:"ad_neighborhood"`
	ADCity               string    `json:"ad_city"`
	ADPostal             string    `json:"ad_postal"`
	Quantity             int       `json:"quantity"`
	ActualWeightKg       float64   `json:"actual_weight_kg"`
	PackageTypeID        uint64    `json:"package_type_id"`
	SizeCode             string    `json:"size_code"`
	Observations         string    `json:"observations"`
	InternalNotes        string    `json:"internal_notes"`
	UpdatedAt            time.Time `json:"updated_at"`
	Status               string    `json:"status"`
}

func (d orderDetailDTO) toDomain() order.Detail {
	quantity := d.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return order.Detail{
		ID:          kernel.ID(d.ID),
		OrderNumber: d.OrderNumber,
		CreatedAt:   d.CreatedAt,
		OwnerID:     kernel.ID(d.UserID),
		OwnerName:   d.FullName,
		Origin: order.AddressSummary{
			ID:           kernel.ID(d.OriginAddressID),
			Street:       d.AOStreet,
			Exterior:     d.AOExterior,
			Neighborhood: d.AONeighborhood,
			City:         d.AOCity,
			Postal:       d.AOPostal,
		},
		Destination: order.AddressSummary{
			ID:           kernel.ID(d.DestinationAddressID),
			Street:       d.ADStreet,
			Exterior:     d.ADExterior,
			Neighborhood: d.ADNeighborhood,
			City:         d.ADCity,
			Postal:       d.ADPostal,
		},
		Quantity:       quantity,
		ActualWeightKg: d.ActualWeightKg,
		PackageTypeID:  kernel.ID(d.PackageTypeID),
		SizeCode:       d.SizeCode,
		Observations:   d.Observations,
		InternalNotes:  d.InternalNotes,
		UpdatedAt:      d.UpdatedAt,
		Status:         order.Status(d.Status),
	}
}

type patchStatusDTO struct {
	Status        string `json:"status"`
	InternalNotes string `json:"internal_notes"`
}
