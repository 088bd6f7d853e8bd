package dto

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

type FieldResponse struct {
	ID           string `json:"id"`
	FieldTypeID  string `json:"field_type_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PricePerHour int64  `json:"price_per_hour"`
	Status       string `json:"status"`
	ImageURL     string `json:"image_url"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (f FieldResponse) FromModel(model repository.Field) FieldResponse {
	return FieldResponse{
		ID:           model.ID.String(),
		FieldTypeID:  model.FieldTypeID.String(),
		Name:         model.Name,
		Description:  model.Description.String,
		PricePerHour: helper.Int64FromPg(model.PricePerHour),
		Status:       model.Status,
		ImageURL:     model.ImageURL.String,
		CreatedAt:    model.CreatedAt.Time.Format(constant.DateFormat),
		UpdatedAt:    model.UpdatedAt.Time.Format(constant.DateFormat),
	}
}

type GetFieldsResponse struct {
	Fields     []FieldResponse `json:"fields"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (f *GetFieldsResponse) FromModel(fields []repository.Field, totalItems, limit int) {
	f.TotalItems = totalItems
	f.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(fields) == 0 {
		f.Fields = []FieldResponse{}

		return
	}

	f.Fields = make([]FieldResponse, len(fields))

	for i, field := range fields {
		f.Fields[i] = FieldResponse{}.FromModel(field)
	}
}

type GetAvailableFieldsResponse struct {
	Date      string          `json:"date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Fields    []FieldResponse `json:"fields"`
}

func (f *GetAvailableFieldsResponse) FromModel(fields []repository.Field, date, startTime, endTime string) {
	f.Date = date
	f.StartTime = startTime
	f.EndTime = endTime
	f.Fields = make([]FieldResponse, 0, len(fields))

	for _, field := range fields {
		f.Fields = append(f.Fields, FieldResponse{}.FromModel(field))
	}
}
