package room

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AddRoom handles the creation of a new room.
func (handler *Handler) AddRoom(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	var req dto.CreateRoomRequest

	err := session.Fields(
		console.Field{Label: "Enter hotelid:", Value: &req.HotelID},
		console.Field{Label: "Enter roomno:", Value: &req.RoomNo},
		console.Field{Label: "Enter roomtype:", Value: &req.RoomType},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "add room")

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add room")
		response.WithError(session, err, "add room")

		return
	}

	response.WithMessage(session, "Successfully added room.")
}

// AvailableRooms prints how many rooms of a hotel have never been booked.
func (handler *Handler) AvailableRooms(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableRooms")
	defer scope.End()

	var req dto.HotelRequest

	if err := session.Fields(console.Field{Label: "Enter hotel id:", Value: &req.HotelID}); err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get number of available rooms")

		return
	}

	count, err := handler.service.CountAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count available rooms")
		response.WithError(session, err, "get number of available rooms")

		return
	}

	response.WithCount(session, "Available rooms", count)
}

// BookedRooms prints how many rooms of a hotel have at least one booking.
func (handler *Handler) BookedRooms(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookedRooms")
	defer scope.End()

	var req dto.HotelRequest

	if err := session.Fields(console.Field{Label: "Enter hotel id:", Value: &req.HotelID}); err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get number of booked rooms")

		return
	}

	count, err := handler.service.CountBooked(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count booked rooms")
		response.WithError(session, err, "get number of booked rooms")

		return
	}

	response.WithCount(session, "Booked rooms", count)
}

// AvailableForWeek lists the rooms of a hotel free for the week starting at the given date.
func (handler *Handler) AvailableForWeek(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableForWeek")
	defer scope.End()

	var req dto.WeeklyAvailabilityRequest

	err := session.Fields(
		console.Field{Label: "Enter hotel id:", Value: &req.HotelID},
		console.Field{Label: "Enter date:", Value: &req.Date},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get hotel bookings for a week")

		return
	}

	rooms, err := handler.service.AvailableForWeek(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms available for a week")
		response.WithError(session, err, "get hotel bookings for a week")

		return
	}

	response.WithResultOrNotice(session, rooms)
}
