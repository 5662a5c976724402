package dto

import (
	"hotel/internal/domains/booking/model"
	customerDto "hotel/internal/domains/customer/model/dto"
	"hotel/shared"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
)

type CreateBookingRequest struct {
	HotelID     string `validate:"required"`
	RoomNo      string `validate:"required"`
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	BookingDate string `validate:"required,date"`
	NoOfPeople  string `validate:"required"`
	Price       string `validate:"required"`
}

func (c *CreateBookingRequest) Customer() customerDto.NameRequest {
	return customerDto.NameRequest{FirstName: c.FirstName, LastName: c.LastName}
}

// ToModel converts the typed-in values. Booking id and customer id are
// resolved by the service.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	hotelID, err := shared.ConvertStringToInt("hotel id", c.HotelID)
	if err != nil {
		return model.Booking{}, err
	}

	roomNo, err := shared.ConvertStringToInt("room number", c.RoomNo)
	if err != nil {
		return model.Booking{}, err
	}

	bookingDate, err := shared.ConvertStringToDate("booking date", c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	people, err := shared.ConvertStringToInt("number of people", c.NoOfPeople)
	if err != nil {
		return model.Booking{}, err
	}

	price, err := shared.ConvertStringToFloat("price", c.Price)
	if err != nil {
		return model.Booking{}, err
	}

	if price < 0 {
		return model.Booking{}, failure.Invalid("price must not be negative") //nolint:wrapcheck
	}

	return model.Booking{
		HotelID:     hotelID,
		RoomNo:      roomNo,
		BookingDate: gModel.NewDate(bookingDate),
		NoOfPeople:  people,
		Price:       price,
	}, nil
}

// Limit is the parsed K of a top-K report.
type Limit struct {
	K int `validate:"gt=0"`
}

func parseLimit(value string) (Limit, error) {
	k, err := shared.ConvertStringToInt("K", value)
	if err != nil {
		return Limit{}, err
	}

	return Limit{K: k}, nil
}

type TopPriceRequest struct {
	StartDate string `validate:"required,date"`
	EndDate   string `validate:"required,date"`
	K         string `validate:"required"`
}

type PriceRange struct {
	Start gModel.Date
	End   gModel.Date
	Limit
}

func (t *TopPriceRequest) Parse() (PriceRange, error) {
	start, end, err := shared.DateRange(t.StartDate, t.EndDate)
	if err != nil {
		return PriceRange{}, err
	}

	limit, err := parseLimit(t.K)
	if err != nil {
		return PriceRange{}, err
	}

	return PriceRange{
		Start: gModel.NewDate(start),
		End:   gModel.NewDate(end),
		Limit: limit,
	}, nil
}

type CustomerTopRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	K         string `validate:"required"`
}

func (c *CustomerTopRequest) Customer() customerDto.NameRequest {
	return customerDto.NameRequest{FirstName: c.FirstName, LastName: c.LastName}
}

func (c *CustomerTopRequest) Parse() (Limit, error) {
	return parseLimit(c.K)
}

type TotalCostRequest struct {
	HotelID   string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	StartDate string `validate:"required,date"`
	EndDate   string `validate:"required,date"`
}

type CostQuery struct {
	HotelID int
	Start   gModel.Date
	End     gModel.Date
}

func (t *TotalCostRequest) Customer() customerDto.NameRequest {
	return customerDto.NameRequest{FirstName: t.FirstName, LastName: t.LastName}
}

func (t *TotalCostRequest) Parse() (CostQuery, error) {
	hotelID, err := shared.ConvertStringToInt("hotel id", t.HotelID)
	if err != nil {
		return CostQuery{}, err
	}

	start, end, err := shared.DateRange(t.StartDate, t.EndDate)
	if err != nil {
		return CostQuery{}, err
	}

	return CostQuery{
		HotelID: hotelID,
		Start:   gModel.NewDate(start),
		End:     gModel.NewDate(end),
	}, nil
}
