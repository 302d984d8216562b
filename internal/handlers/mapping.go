package handlers

import (
	"TRIPVANA_BACK-END/internal/dto"
	"TRIPVANA_BACK-END/internal/models"
	"TRIPVANA_BACK-END/internal/utils"
)

func toTripResponse(t *models.Trip) dto.TripResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.TripResponse{
		ID:            t.ID.String(),
		OrganizerID:   t.OrganizerID.String(),
		Slug:          t.Slug,
		Title:         t.Title,
		Description:   t.Description,
		Destination:   t.Destination,
		Price:         t.Price,
		StartDate:     utils.FormatDate(t.StartDate),
		EndDate:       utils.FormatDate(t.EndDate),
		TotalSeats:    t.TotalSeats,
		Status:        string(t.Status),
		Tags:          tags,
		CoverImageURL: t.CoverImageURL,
		Itinerary:     t.Itinerary,
		IsActive:      t.IsActive,
		CreatedAt:     utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:     utils.FormatTimestamp(t.UpdatedAt),
	}
}

func toTripListResponse(trips []models.Trip, limit, offset int) dto.TripListResponse {
	items := make([]dto.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, toTripResponse(&trips[i]))
	}
	return dto.TripListResponse{Trips: items, Limit: limit, Offset: offset}
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	var userID *string
	if b.UserID != nil {
		s := b.UserID.String()
		userID = &s
	}
	var travelers []dto.Traveler
	for _, t := range b.TravelerDetails {
		travelers = append(travelers, dto.Traveler(t))
	}
	return dto.BookingResponse{
		ID:             b.ID.String(),
		TripID:         b.TripID.String(),
		UserID:         userID,
		SeatsBooked:    b.SeatsBooked,
		Source:         b.Source,
		Status:         string(b.Status),
		NumTravelers:   b.NumTravelers,
		Travelers:      travelers,
		ContactName:    b.ContactName,
		ContactPhone:   b.ContactPhone,
		ContactEmail:   b.ContactEmail,
		PricePerPerson: b.PricePerPerson,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		CreatedAt:      utils.FormatTimestamp(b.CreatedAt),
	}
}

func toBookingListResponse(bookings []models.Booking, limit, offset int) dto.BookingListResponse {
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingResponse(&bookings[i]))
	}
	return dto.BookingListResponse{Bookings: items, Limit: limit, Offset: offset}
}

func toTravelers(in []dto.Traveler) []models.Traveler {
	out := make([]models.Traveler, 0, len(in))
	for _, t := range in {
		out = append(out, models.Traveler(t))
	}
	return out
}

func toImageResponse(img *models.TripImage) dto.TripImageResponse {
	return dto.TripImageResponse{
		ID:       img.ID.String(),
		TripID:   img.TripID.String(),
		ImageURL: img.ImageURL,
		Position: img.Position,
	}
}
