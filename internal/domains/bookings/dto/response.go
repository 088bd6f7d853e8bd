package dto

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

type BookingResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	FieldID        string `json:"field_id"`
	FieldName      string `json:"field_name,omitempty"`
	BookingDate    string `json:"booking_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	DurationHours  int    `json:"duration_hours"`
	TotalPrice     int64  `json:"total_price"`
	DiscountAmount int64  `json:"discount_amount"`
	FinalPrice     int64  `json:"final_price"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func (b BookingResponse) FromModel(model repository.Booking) BookingResponse {
	return BookingResponse{
		ID:             model.ID.String(),
		UserID:         model.UserID.String(),
		FieldID:        model.FieldID.String(),
		BookingDate:    model.BookingDate.Time.Format(constant.DateFormat),
		StartTime:      helper.PgTimeToString(model.StartTime),
		EndTime:        helper.PgTimeToString(model.EndTime),
		DurationHours:  int(model.DurationHours),
		TotalPrice:     helper.Int64FromPg(model.TotalPrice),
		DiscountAmount: helper.Int64FromPg(model.DiscountAmount),
		FinalPrice:     helper.Int64FromPg(model.FinalPrice),
		Status:         model.Status,
		Notes:          model.Notes.String,
		CreatedAt:      model.CreatedAt.Time.Format(constant.FullDateFormat),
		UpdatedAt:      model.UpdatedAt.Time.Format(constant.FullDateFormat),
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

func (b *GetBookingsResponse) FromModel(bookings []repository.Booking, totalItems, limit int) {
	b.TotalItems = totalItems
	b.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(bookings) == 0 {
		b.Bookings = []BookingResponse{}

		return
	}

	b.Bookings = make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		b.Bookings[i] = BookingResponse{}.FromModel(booking)
	}
}

// EnrichWithFieldNames adds field names to the booking responses
func (b *GetBookingsResponse) EnrichWithFieldNames(fieldNames map[string]string) {
	for i := range b.Bookings {
		if name, exists := fieldNames[b.Bookings[i].FieldID]; exists {
			b.Bookings[i].FieldName = name
		}
	}
}

type BookedSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type GetBookedSlotsResponse struct {
	FieldID     string       `json:"field_id"`
	BookedSlots []BookedSlot `json:"booked_slots"`
	TotalItems  int          `json:"total_items"`
}

func (b *GetBookedSlotsResponse) FromModel(bookedSlots []repository.GetBookedTimeSlotsRow, fieldID string) {
	b.FieldID = fieldID

	if len(bookedSlots) == 0 {
		b.BookedSlots = []BookedSlot{}
		b.TotalItems = 0

		return
	}

	b.BookedSlots = make([]BookedSlot, len(bookedSlots))
	b.TotalItems = len(bookedSlots)

	for i, slot := range bookedSlots {
		b.BookedSlots[i] = BookedSlot{
			StartTime: helper.PgTimeToString(slot.StartTime),
			EndTime:   helper.PgTimeToString(slot.EndTime),
		}
	}
}
