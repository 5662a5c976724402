package dto

import (
	"strings"

	"hotel/internal/domains/company/model"
	"hotel/shared"
)

type CreateCompanyRequest struct {
	ID          string `validate:"required"`
	Name        string `validate:"required,max=30"`
	Address     string `validate:"omitempty,max=200"`
	IsCertified string `validate:"required,yesno"`
}

func (c *CreateCompanyRequest) ToModel() (model.Company, error) {
	id, err := shared.ConvertStringToInt("company id", c.ID)
	if err != nil {
		return model.Company{}, err
	}

	certified, err := shared.ConvertStringToBool("certified", c.IsCertified)
	if err != nil {
		return model.Company{}, err
	}

	return model.Company{
		ID:          id,
		Name:        strings.TrimSpace(c.Name),
		Address:     strings.TrimSpace(c.Address),
		IsCertified: certified,
	}, nil
}

type TopCompaniesRequest struct {
	K string `validate:"required"`
}

// Limit is the parsed K of a top-K report.
type Limit struct {
	K int `validate:"gt=0"`
}

func (t *TopCompaniesRequest) Parse() (Limit, error) {
	k, err := shared.ConvertStringToInt("K", t.K)
	if err != nil {
		return Limit{}, err
	}

	return Limit{K: k}, nil
}
