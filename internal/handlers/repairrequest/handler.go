package repairrequest

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/repairrequest/model/dto"
	"hotel/internal/domains/repairrequest/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// RaiseRequest records a manager's request for an existing repair.
func (handler *Handler) RaiseRequest(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RaiseRequest")
	defer scope.End()

	var req dto.CreateRequestRequest

	err := session.Fields(
		console.Field{Label: "Enter manager ssn:", Value: &req.ManagerID},
		console.Field{Label: "Enter repair id:", Value: &req.RepairID},
		console.Field{Label: "Enter request date:", Value: &req.RequestDate},
		console.Field{Label: "Enter description:", Value: &req.Description},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "raise repair request")

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to raise repair request")
		response.WithError(session, err, "raise repair request")

		return
	}

	response.WithMessage(session, "Successfully added repair request.")
}
