package dto

import (
	"hotel/internal/domains/assignment/model"
	"hotel/shared"
)

type CreateAssignmentRequest struct {
	StaffID string `validate:"required"`
	HotelID string `validate:"required"`
	RoomNo  string `validate:"required"`
}

func (c *CreateAssignmentRequest) ToModel() (model.Assignment, error) {
	staffID, err := shared.ConvertStringToInt("staff ssn", c.StaffID)
	if err != nil {
		return model.Assignment{}, err
	}

	hotelID, err := shared.ConvertStringToInt("hotel id", c.HotelID)
	if err != nil {
		return model.Assignment{}, err
	}

	roomNo, err := shared.ConvertStringToInt("room number", c.RoomNo)
	if err != nil {
		return model.Assignment{}, err
	}

	return model.Assignment{
		StaffID: staffID,
		HotelID: hotelID,
		RoomNo:  roomNo,
	}, nil
}
