package dto

import "github.com/google/uuid"

type FieldCreateRequest struct {
	FieldTypeID  uuid.UUID `json:"field_type_id" validate:"required,uuid"`
	Name         string    `json:"name" validate:"required,min=3,max=255"`
	Description  string    `json:"description" validate:"omitempty,max=1000"`
	PricePerHour int64     `json:"price_per_hour" validate:"numeric,required,min=1000"`
	Status       string    `json:"status" validate:"omitempty,oneof=available maintenance unavailable"`
	ImageURL     string    `json:"image_url" validate:"omitempty,url"`
}

type FieldUpdateRequest struct {
	FieldTypeID  uuid.UUID `json:"field_type_id" validate:"omitempty,uuid"`
	Name         string    `json:"name" validate:"omitempty,min=3,max=255"`
	Description  string    `json:"description" validate:"omitempty,max=1000"`
	PricePerHour int64     `json:"price_per_hour" validate:"omitempty,numeric,min=1000"`
	Status       string    `json:"status" validate:"omitempty,oneof=available maintenance unavailable"`
	ImageURL     string    `json:"image_url" validate:"omitempty,url"`
}

type GetAvailableFieldsRequest struct {
	Date      string `json:"date" query:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	StartTime string `json:"start_time" query:"start_time" validate:"required,datetime=15:04" example:"15:04"`
	EndTime   string `json:"end_time" query:"end_time" validate:"required,datetime=15:04" example:"15:04"`
}
