package model

const (
	TableName  = "assigned"
	EntityName = "assignment"

	FieldID      = "asgid"
	FieldStaffID = "staffid"
	FieldHotelID = "hotelid"
	FieldRoomNo  = "roomno"
)

// Assignment puts a house cleaning staff member on a room.
type Assignment struct {
	ID      int `db:"asgid"   json:"asgid"`
	StaffID int `db:"staffid" json:"staffid"`
	HotelID int `db:"hotelid" json:"hotelid"`
	RoomNo  int `db:"roomno"  json:"roomno"`
}
