package customer

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	"hotel/shared/constant"
	"hotel/transport/console"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AddCustomer prompts for the customer details and inserts a new customer.
// The customer id is assigned by the service.
func (handler *Handler) AddCustomer(ctx context.Context, session *console.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCustomer")
	defer scope.End()

	var req dto.CreateCustomerRequest

	err := session.Fields(
		console.Field{Label: "Enter first name:", Value: &req.FirstName},
		console.Field{Label: "Enter last name:", Value: &req.LastName},
		console.Field{Label: "Enter address:", Value: &req.Address},
		console.Field{Label: "Enter phone number:", Value: &req.Phone},
		console.Field{Label: "Enter date of birth:", Value: &req.DateOfBirth},
		console.Field{Label: "Enter gender type:", Value: &req.Gender},
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(session, err, "add customer")

		return
	}

	customer, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add customer")
		response.WithError(session, err, "add customer")

		return
	}

	log.Debug().Int("customerID", customer.ID).Msg("customer added")

	response.WithMessage(session, "Successfully added customer.")
}
