package dto

import (
	"strings"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
)

type CreateRoomRequest struct {
	HotelID  string `validate:"required"`
	RoomNo   string `validate:"required"`
	RoomType string `validate:"required,max=10"`
}

func (c *CreateRoomRequest) ToModel() (model.Room, error) {
	hotelID, err := shared.ConvertStringToInt("hotel id", c.HotelID)
	if err != nil {
		return model.Room{}, err
	}

	roomNo, err := shared.ConvertStringToInt("room number", c.RoomNo)
	if err != nil {
		return model.Room{}, err
	}

	return model.Room{
		HotelID:  hotelID,
		RoomNo:   roomNo,
		RoomType: strings.TrimSpace(c.RoomType),
	}, nil
}

type HotelRequest struct {
	HotelID string `validate:"required"`
}

func (h *HotelRequest) Parse() (int, error) {
	return shared.ConvertStringToInt("hotel id", h.HotelID)
}

type WeeklyAvailabilityRequest struct {
	HotelID string `validate:"required"`
	Date    string `validate:"required,date"`
}

// Week is an inclusive window of WeekLength days after From.
type Week struct {
	HotelID int
	From    gModel.Date
	To      gModel.Date
}

func (w *WeeklyAvailabilityRequest) Parse() (Week, error) {
	hotelID, err := shared.ConvertStringToInt("hotel id", w.HotelID)
	if err != nil {
		return Week{}, err
	}

	from, err := shared.ConvertStringToDate("date", w.Date)
	if err != nil {
		return Week{}, err
	}

	start := gModel.NewDate(from)

	return Week{
		HotelID: hotelID,
		From:    start,
		To:      start.AddDays(constant.WeekLength),
	}, nil
}
