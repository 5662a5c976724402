package model

const (
	TableName  = "maintenancecompany"
	EntityName = "maintenance company"

	FieldID          = "cmpid"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldIsCertified = "iscertified"
)

type Company struct {
	ID          int    `db:"cmpid"       json:"cmpid"`
	Name        string `db:"name"        json:"name"`
	Address     string `db:"address"     json:"address"`
	IsCertified bool   `db:"iscertified" json:"iscertified"`
}
