package model

import (
	gModel "hotel/shared/model"
)

const (
	TableName  = "repair"
	EntityName = "repair"

	FieldID          = "rid"
	FieldHotelID     = "hotelid"
	FieldRoomNo      = "roomno"
	FieldCompanyID   = "mcompany"
	FieldRepairDate  = "repairdate"
	FieldDescription = "description"
	FieldRepairType  = "repairtype"
)

const (
	TypeSmall  = "Small"
	TypeMedium = "Medium"
	TypeLarge  = "Large"
)

type Repair struct {
	ID          int         `db:"rid"         json:"rid"`
	HotelID     int         `db:"hotelid"     json:"hotelid"`
	RoomNo      int         `db:"roomno"      json:"roomno"`
	CompanyID   int         `db:"mcompany"    json:"mcompany"`
	RepairDate  gModel.Date `db:"repairdate"  json:"repairdate"`
	Description string      `db:"description" json:"description"`
	RepairType  string      `db:"repairtype"  json:"repairtype"`
}
