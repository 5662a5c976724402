package model

import (
	gModel "hotel/shared/model"
)

const (
	TableName  = "customer"
	EntityName = "customer"

	FieldID          = "customerid"
	FieldFirstName   = "fname"
	FieldLastName    = "lname"
	FieldAddress     = "address"
	FieldPhone       = "phno"
	FieldDateOfBirth = "dob"
	FieldGender      = "gender"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type Customer struct {
	ID          int         `db:"customerid" json:"customerid"`
	FirstName   string      `db:"fname"      json:"fname"`
	LastName    string      `db:"lname"      json:"lname"`
	Address     string      `db:"address"    json:"address"`
	Phone       int64       `db:"phno"       json:"phno"`
	DateOfBirth gModel.Date `db:"dob"        json:"dob"`
	Gender      string      `db:"gender"     json:"gender"`
}
