package model

import (
	gModel "hotel/shared/model"
)

const (
	TableName  = "request"
	EntityName = "repair request"

	FieldID          = "reqid"
	FieldManagerID   = "managerid"
	FieldRepairID    = "repairid"
	FieldRequestDate = "requestdate"
	FieldDescription = "description"
)

type Request struct {
	ID          int         `db:"reqid"       json:"reqid"`
	ManagerID   int         `db:"managerid"   json:"managerid"`
	RepairID    int         `db:"repairid"    json:"repairid"`
	RequestDate gModel.Date `db:"requestdate" json:"requestdate"`
	Description string      `db:"description" json:"description"`
}
