package dto

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

type MembershipResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	MembershipType string `json:"membership_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	// DiscountPercentage is in hundredths of a percent (1525 -> 15.25%).
	DiscountPercentage int64  `json:"discount_percentage"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}

func (m MembershipResponse) FromModel(model repository.Membership) MembershipResponse {
	return MembershipResponse{
		ID:                 model.ID.String(),
		UserID:             model.UserID.String(),
		MembershipType:     model.MembershipType,
		StartDate:          model.StartDate.Time.Format(constant.DateFormat),
		EndDate:            model.EndDate.Time.Format(constant.DateFormat),
		DiscountPercentage: helper.PercentFromPg(model.DiscountPercentage),
		Status:             model.Status,
		CreatedAt:          model.CreatedAt.Time.Format(constant.DateFormat),
	}
}

type GetMembershipsResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
	TotalItems  int                  `json:"total_items"`
	TotalPages  int                  `json:"total_pages"`
}

func (m *GetMembershipsResponse) FromModel(memberships []repository.Membership, totalItems, limit int) {
	m.TotalItems = totalItems
	m.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(memberships) == 0 {
		m.Memberships = []MembershipResponse{}

		return
	}

	m.Memberships = make([]MembershipResponse, len(memberships))

	for i, membership := range memberships {
		m.Memberships[i] = MembershipResponse{}.FromModel(membership)
	}
}
