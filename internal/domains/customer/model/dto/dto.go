package dto

import (
	"strings"

	"hotel/internal/domains/customer/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type CreateCustomerRequest struct {
	FirstName   string `validate:"required,max=30"`
	LastName    string `validate:"required,max=30"`
	Address     string `validate:"omitempty,max=200"`
	Phone       string `validate:"required"`
	DateOfBirth string `validate:"required,date"`
	Gender      string `validate:"required,oneof=Male Female Other"`
}

// ToModel converts the typed-in values; the id is assigned by the service.
func (c *CreateCustomerRequest) ToModel() (model.Customer, error) {
	phone, err := shared.ConvertStringToInt64("phone number", c.Phone)
	if err != nil {
		return model.Customer{}, err
	}

	dob, err := shared.ConvertStringToDate("date of birth", c.DateOfBirth)
	if err != nil {
		return model.Customer{}, err
	}

	return model.Customer{
		FirstName:   strings.TrimSpace(c.FirstName),
		LastName:    strings.TrimSpace(c.LastName),
		Address:     strings.TrimSpace(c.Address),
		Phone:       phone,
		DateOfBirth: gModel.NewDate(dob),
		Gender:      strings.TrimSpace(c.Gender),
	}, nil
}

// NameRequest identifies a customer by first and last name.
type NameRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

func (n NameRequest) Filter() gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.FieldFirstName, strings.TrimSpace(n.FirstName)),
		gDto.Eq(model.FieldLastName, strings.TrimSpace(n.LastName)),
	)
}

func (n NameRequest) String() string {
	return strings.TrimSpace(n.FirstName) + " " + strings.TrimSpace(n.LastName)
}
