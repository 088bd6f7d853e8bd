package dto

import "github.com/google/uuid"

type MembershipCreateRequest struct {
	UserID             uuid.UUID `json:"user_id" validate:"required,uuid"`
	MembershipType     string    `json:"membership_type" validate:"required,oneof=regular premium vip"`
	StartDate          string    `json:"start_date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	EndDate            string    `json:"end_date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	DiscountPercentage int64     `json:"discount_percentage" validate:"numeric,min=0,max=10000"`
}

type MembershipUpdateRequest struct {
	MembershipType     string `json:"membership_type" validate:"omitempty,oneof=regular premium vip"`
	StartDate          string `json:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2006-01-02"`
	EndDate            string `json:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2006-01-02"`
	DiscountPercentage int64  `json:"discount_percentage" validate:"omitempty,numeric,min=0,max=10000"`
	Status             string `json:"status" validate:"omitempty,oneof=active expired"`
}
