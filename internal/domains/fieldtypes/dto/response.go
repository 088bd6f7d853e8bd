package dto

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

type FieldTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func (f FieldTypeResponse) FromModel(model repository.FieldType) FieldTypeResponse {
	return FieldTypeResponse{
		ID:          model.ID.String(),
		Name:        model.Name,
		Description: model.Description.String,
		CreatedAt:   model.CreatedAt.Time.Format(constant.DateFormat),
	}
}

type GetFieldTypesResponse struct {
	FieldTypes []FieldTypeResponse `json:"field_types"`
	TotalItems int                 `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
}

func (f *GetFieldTypesResponse) FromModel(fieldTypes []repository.FieldType, totalItems, limit int) {
	f.TotalItems = totalItems
	f.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(fieldTypes) == 0 {
		f.FieldTypes = []FieldTypeResponse{}

		return
	}

	f.FieldTypes = make([]FieldTypeResponse, len(fieldTypes))

	for i, fieldType := range fieldTypes {
		f.FieldTypes[i] = FieldTypeResponse{}.FromModel(fieldType)
	}
}
