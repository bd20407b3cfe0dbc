package dto

import (
	"github.com/google/uuid"

	m "courtku_backend/internals/features/billing/services/model"
)

/* =============== REQUESTS =============== */

type CreateServiceRequest struct {
	ServiceName      string  `json:"service_name"       validate:"required,min=2,max=80"`
	ServiceUnitPrice float64 `json:"service_unit_price" validate:"required,gte=0"`
}

func (r CreateServiceRequest) ToModel() *m.ServiceModel {
	return &m.ServiceModel{
		ServiceName:      r.ServiceName,
		ServiceUnitPrice: r.ServiceUnitPrice,
		ServiceIsActive:  true,
	}
}

// Update (partial)
type UpdateServiceRequest struct {
	ServiceName      *string  `json:"service_name"       validate:"omitempty,min=2,max=80"`
	ServiceUnitPrice *float64 `json:"service_unit_price" validate:"omitempty,gte=0"`
	ServiceIsActive  *bool    `json:"service_is_active"  validate:"omitempty"`
}

func (r UpdateServiceRequest) ApplyTo(mo *m.ServiceModel) {
	if r.ServiceName != nil {
		mo.ServiceName = *r.ServiceName
	}
	if r.ServiceUnitPrice != nil {
		mo.ServiceUnitPrice = *r.ServiceUnitPrice
	}
	if r.ServiceIsActive != nil {
		mo.ServiceIsActive = *r.ServiceIsActive
	}
}

/* =============== RESPONSES =============== */

type ServiceResponse struct {
	ServiceID        uuid.UUID `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	ServiceUnitPrice float64   `json:"service_unit_price"`
	ServiceIsActive  bool      `json:"service_is_active"`
}

func FromModel(mo m.ServiceModel) ServiceResponse {
	return ServiceResponse{
		ServiceID:        mo.ServiceID,
		ServiceName:      mo.ServiceName,
		ServiceUnitPrice: mo.ServiceUnitPrice,
		ServiceIsActive:  mo.ServiceIsActive,
	}
}

func FromModels(rows []m.ServiceModel) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
