package booking

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// BookRoom books a room for an existing customer looked up by name.
func (handler *Handler) BookRoom(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	var req dto.CreateBookingRequest

	err := session.Fields(
		console.Field{Label: "Enter hotelid:", Value: &req.HotelID},
		console.Field{Label: "Enter roomno:", Value: &req.RoomNo},
		console.Field{Label: "Enter customer first name:", Value: &req.FirstName},
		console.Field{Label: "Enter customer last name:", Value: &req.LastName},
		console.Field{Label: "Enter booking date:", Value: &req.BookingDate},
		console.Field{Label: "Enter number of people:", Value: &req.NoOfPeople},
		console.Field{Label: "Enter price:", Value: &req.Price},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "add booking")

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add booking")
		response.WithError(session, err, "add booking")

		return
	}

	response.WithMessage(session, "Successfully added booking.")
}

// TopPrices lists the K most expensive bookings inside a date range.
func (handler *Handler) TopPrices(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TopPrices")
	defer scope.End()

	var req dto.TopPriceRequest

	err := session.Fields(
		console.Field{Label: "Enter start date:", Value: &req.StartDate},
		console.Field{Label: "Enter end date:", Value: &req.EndDate},
		console.Field{Label: "Enter K:", Value: &req.K},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get top room prices")

		return
	}

	bookings, err := handler.service.TopByPrice(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get top room prices")
		response.WithError(session, err, "get top room prices")

		return
	}

	response.WithResult(session, bookings)
}

// TopForCustomer lists the K most expensive bookings of one customer.
func (handler *Handler) TopForCustomer(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TopForCustomer")
	defer scope.End()

	var req dto.CustomerTopRequest

	err := session.Fields(
		console.Field{Label: "Enter customer first name:", Value: &req.FirstName},
		console.Field{Label: "Enter customer last name:", Value: &req.LastName},
		console.Field{Label: "Enter K:", Value: &req.K},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get top bookings for customer")

		return
	}

	bookings, err := handler.service.TopForCustomer(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get top bookings for customer")
		response.WithError(session, err, "get top bookings for customer")

		return
	}

	response.WithResultOrNotice(session, bookings)
}

func (handler *Handler) TotalCost(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TotalCost")
	defer scope.End()

	var req dto.TotalCostRequest

	err := session.Fields(
		console.Field{Label: "Enter hotel id:", Value: &req.HotelID},
		console.Field{Label: "Enter customer first name:", Value: &req.FirstName},
		console.Field{Label: "Enter customer last name:", Value: &req.LastName},
		console.Field{Label: "Enter start date:", Value: &req.StartDate},
		console.Field{Label: "Enter end date:", Value: &req.EndDate},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get customer total cost")

		return
	}

	total, err := handler.service.TotalCost(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer total cost")
		response.WithError(session, err, "get customer total cost")

		return
	}

	response.WithTotal(session, "Total cost", total)
}
