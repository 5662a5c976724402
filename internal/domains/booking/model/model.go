package model

import (
	gModel "hotel/shared/model"
)

const (
	TableName  = "booking"
	EntityName = "booking"

	FieldID          = "bid"
	FieldCustomerID  = "customer"
	FieldHotelID     = "hotelid"
	FieldRoomNo      = "roomno"
	FieldBookingDate = "bookingdate"
	FieldNoOfPeople  = "noofpeople"
	FieldPrice       = "price"
)

type Booking struct {
	ID          int         `db:"bid"         json:"bid"`
	CustomerID  int         `db:"customer"    json:"customer"`
	HotelID     int         `db:"hotelid"     json:"hotelid"`
	RoomNo      int         `db:"roomno"      json:"roomno"`
	BookingDate gModel.Date `db:"bookingdate" json:"bookingdate"`
	NoOfPeople  int         `db:"noofpeople"  json:"noofpeople"`
	Price       float64     `db:"price"       json:"price"`
}
