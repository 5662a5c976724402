package model

const (
	TableName  = "room"
	EntityName = "room"

	FieldHotelID  = "hotelid"
	FieldRoomNo   = "roomno"
	FieldRoomType = "roomtype"
)

// Room is keyed by (hotelid, roomno); both are typed in by the user.
type Room struct {
	HotelID  int    `db:"hotelid"  json:"hotelid"`
	RoomNo   int    `db:"roomno"   json:"roomno"`
	RoomType string `db:"roomtype" json:"roomtype"`
}
