package repair

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Repair
	otel    otel.Otel
}

func New(service service.Repair, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AddRepair(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRepair")
	defer scope.End()

	var req dto.CreateRepairRequest

	err := session.Fields(
		console.Field{Label: "Enter rid:", Value: &req.ID},
		console.Field{Label: "Enter hotelid:", Value: &req.HotelID},
		console.Field{Label: "Enter roomno:", Value: &req.RoomNo},
		console.Field{Label: "Enter maintenance company id:", Value: &req.CompanyID},
		console.Field{Label: "Enter repair date:", Value: &req.RepairDate},
		console.Field{Label: "Enter description:", Value: &req.Description},
		console.Field{Label: "Enter repair type (Small/Medium/Large):", Value: &req.RepairType},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "add repair")

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add repair")
		response.WithError(session, err, "add repair")

		return
	}

	response.WithMessage(session, "Successfully added repair.")
}

// RepairsByCompany lists every repair made by the named maintenance company.
func (handler *Handler) RepairsByCompany(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairsByCompany")
	defer scope.End()

	var req dto.CompanyRepairsRequest

	if err := session.Fields(console.Field{Label: "Enter maintenance company name:", Value: &req.CompanyName}); err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "list repairs")

		return
	}

	repairs, err := handler.service.ListByCompany(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list repairs by company")
		response.WithError(session, err, "list repairs")

		return
	}

	response.WithResultOrNotice(session, repairs)
}

// RepairsPerYear prints the repair count per year for one room.
func (handler *Handler) RepairsPerYear(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairsPerYear")
	defer scope.End()

	var req dto.RoomRepairsRequest

	err := session.Fields(
		console.Field{Label: "Enter hotel id:", Value: &req.HotelID},
		console.Field{Label: "Enter room no:", Value: &req.RoomNo},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get number of repairs per year")

		return
	}

	counts, err := handler.service.CountPerYear(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count repairs per year")
		response.WithError(session, err, "get number of repairs per year")

		return
	}

	response.WithResult(session, counts)
}
