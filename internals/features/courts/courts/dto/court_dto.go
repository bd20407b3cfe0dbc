package dto

import (
	"github.com/google/uuid"

	m "courtku_backend/internals/features/courts/courts/model"
)

/* =============== REQUESTS =============== */

type CreateCourtRequest struct {
	CourtName        string   `json:"court_name"        validate:"required,min=2,max=80"`
	CourtDescription *string  `json:"court_description" validate:"omitempty"`
	CourtFacilities  []string `json:"court_facilities"  validate:"omitempty,dive,min=1"`
}

func (r CreateCourtRequest) ToModel() *m.CourtModel {
	return &m.CourtModel{
		CourtName:        r.CourtName,
		CourtDescription: r.CourtDescription,
		CourtFacilities:  r.CourtFacilities,
		CourtIsActive:    true,
	}
}

// Update (partial)
type UpdateCourtRequest struct {
	CourtName        *string   `json:"court_name"        validate:"omitempty,min=2,max=80"`
	CourtDescription *string   `json:"court_description" validate:"omitempty"`
	CourtFacilities  *[]string `json:"court_facilities"  validate:"omitempty,dive,min=1"`
	CourtIsActive    *bool     `json:"court_is_active"   validate:"omitempty"`
}

func (r UpdateCourtRequest) ApplyTo(mo *m.CourtModel) {
	if r.CourtName != nil {
		mo.CourtName = *r.CourtName
	}
	if r.CourtDescription != nil {
		mo.CourtDescription = r.CourtDescription
	}
	if r.CourtFacilities != nil {
		mo.CourtFacilities = *r.CourtFacilities
	}
	if r.CourtIsActive != nil {
		mo.CourtIsActive = *r.CourtIsActive
	}
}

/* =============== RESPONSES =============== */

type CourtResponse struct {
	CourtID          uuid.UUID `json:"court_id"`
	CourtName        string    `json:"court_name"`
	CourtDescription *string   `json:"court_description,omitempty"`
	CourtFacilities  []string  `json:"court_facilities,omitempty"`
	CourtIsActive    bool      `json:"court_is_active"`
}

func FromModel(mo m.CourtModel) CourtResponse {
	return CourtResponse{
		CourtID:          mo.CourtID,
		CourtName:        mo.CourtName,
		CourtDescription: mo.CourtDescription,
		CourtFacilities:  mo.CourtFacilities,
		CourtIsActive:    mo.CourtIsActive,
	}
}

func FromModels(rows []m.CourtModel) []CourtResponse {
	out := make([]CourtResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
