package dto

import (
	"strings"

	"hotel/internal/domains/repairrequest/model"
	"hotel/shared"
	gModel "hotel/shared/model"
)

type CreateRequestRequest struct {
	ManagerID   string `validate:"required"`
	RepairID    string `validate:"required"`
	RequestDate string `validate:"required,date"`
	Description string `validate:"omitempty,max=500"`
}

func (c *CreateRequestRequest) ToModel() (model.Request, error) {
	managerID, err := shared.ConvertStringToInt("manager ssn", c.ManagerID)
	if err != nil {
		return model.Request{}, err
	}

	repairID, err := shared.ConvertStringToInt("repair id", c.RepairID)
	if err != nil {
		return model.Request{}, err
	}

	requestDate, err := shared.ConvertStringToDate("request date", c.RequestDate)
	if err != nil {
		return model.Request{}, err
	}

	return model.Request{
		ManagerID:   managerID,
		RepairID:    repairID,
		RequestDate: gModel.NewDate(requestDate),
		Description: strings.TrimSpace(c.Description),
	}, nil
}
