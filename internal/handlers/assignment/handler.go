package assignment

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/assignment/model/dto"
	"hotel/internal/domains/assignment/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assignment
	otel    otel.Otel
}

func New(service service.Assignment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AssignCleaning assigns a house cleaning staff member to a room.
func (handler *Handler) AssignCleaning(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignCleaning")
	defer scope.End()

	var req dto.CreateAssignmentRequest

	err := session.Fields(
		console.Field{Label: "Enter staff ssn:", Value: &req.StaffID},
		console.Field{Label: "Enter hotel id:", Value: &req.HotelID},
		console.Field{Label: "Enter room no:", Value: &req.RoomNo},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "assign cleaning staff")

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign cleaning staff")
		response.WithError(session, err, "assign cleaning staff")

		return
	}

	response.WithMessage(session, "Successfully assigned cleaning staff to room.")
}
