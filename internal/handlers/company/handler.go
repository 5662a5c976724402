package company

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/company/model/dto"
	"hotel/internal/domains/company/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AddCompany(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCompany")
	defer scope.End()

	var req dto.CreateCompanyRequest

	err := session.Fields(
		console.Field{Label: "Enter cmpid:", Value: &req.ID},
		console.Field{Label: "Enter name:", Value: &req.Name},
		console.Field{Label: "Enter address:", Value: &req.Address},
		console.Field{Label: "Is this company certified? (y/n)", Value: &req.IsCertified},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "add maintenance company")

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add maintenance company")
		response.WithError(session, err, "add maintenance company")

		return
	}

	response.WithMessage(session, "Successfully added maintenance company.")
}

// TopCompanies lists the K companies with the most repairs.
func (handler *Handler) TopCompanies(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TopCompanies")
	defer scope.End()

	var req dto.TopCompaniesRequest

	if err := session.Fields(console.Field{Label: "Enter K:", Value: &req.K}); err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "get top maintenance companies")

		return
	}

	companies, err := handler.service.TopByRepairCount(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get top maintenance companies")
		response.WithError(session, err, "get top maintenance companies")

		return
	}

	response.WithResult(session, companies)
}
