package dto

import (
	"strings"

	"hotel/internal/domains/repair/model"
	"hotel/shared"
	gModel "hotel/shared/model"
)

type CreateRepairRequest struct {
	ID          string `validate:"required"`
	HotelID     string `validate:"required"`
	RoomNo      string `validate:"required"`
	CompanyID   string `validate:"required"`
	RepairDate  string `validate:"required,date"`
	Description string `validate:"omitempty,max=500"`
	RepairType  string `validate:"required,oneof=Small Medium Large"`
}

func (c *CreateRepairRequest) ToModel() (model.Repair, error) {
	id, err := shared.ConvertStringToInt("repair id", c.ID)
	if err != nil {
		return model.Repair{}, err
	}

	hotelID, err := shared.ConvertStringToInt("hotel id", c.HotelID)
	if err != nil {
		return model.Repair{}, err
	}

	roomNo, err := shared.ConvertStringToInt("room number", c.RoomNo)
	if err != nil {
		return model.Repair{}, err
	}

	companyID, err := shared.ConvertStringToInt("company id", c.CompanyID)
	if err != nil {
		return model.Repair{}, err
	}

	repairDate, err := shared.ConvertStringToDate("repair date", c.RepairDate)
	if err != nil {
		return model.Repair{}, err
	}

	return model.Repair{
		ID:          id,
		HotelID:     hotelID,
		RoomNo:      roomNo,
		CompanyID:   companyID,
		RepairDate:  gModel.NewDate(repairDate),
		Description: strings.TrimSpace(c.Description),
		RepairType:  strings.TrimSpace(c.RepairType),
	}, nil
}

type CompanyRepairsRequest struct {
	CompanyName string `validate:"required"`
}

type RoomRepairsRequest struct {
	HotelID string `validate:"required"`
	RoomNo  string `validate:"required"`
}

func (r *RoomRepairsRequest) Parse() (hotelID, roomNo int, err error) {
	hotelID, err = shared.ConvertStringToInt("hotel id", r.HotelID)
	if err != nil {
		return 0, 0, err
	}

	roomNo, err = shared.ConvertStringToInt("room number", r.RoomNo)
	if err != nil {
		return 0, 0, err
	}

	return hotelID, roomNo, nil
}
