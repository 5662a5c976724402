package dto_test

import (
	"testing"

	"hotel/internal/domains/company/model"
	"hotel/internal/domains/company/model/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompanyRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateCompanyRequest
		expected model.Company
		wantKind failure.Kind
	}{
		{
			name:     "certified",
			req:      dto.CreateCompanyRequest{ID: "3", Name: "FixIt", Address: "2 Side St", IsCertified: "y"},
			expected: model.Company{ID: 3, Name: "FixIt", Address: "2 Side St", IsCertified: true},
		},
		{
			name:     "not certified",
			req:      dto.CreateCompanyRequest{ID: "4", Name: "Patch", IsCertified: "N"},
			expected: model.Company{ID: 4, Name: "Patch"},
		},
		{
			name:     "bad id",
			req:      dto.CreateCompanyRequest{ID: "x", Name: "Patch", IsCertified: "y"},
			wantKind: failure.KindInputParse,
		},
		{
			name:     "bad flag",
			req:      dto.CreateCompanyRequest{ID: "4", Name: "Patch", IsCertified: "sometimes"},
			wantKind: failure.KindInputParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToModel()

			if tt.wantKind != failure.KindUnknown {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTopCompaniesRequest_Parse(t *testing.T) {
	req := dto.TopCompaniesRequest{K: "3"}

	limit, err := req.Parse()

	require.NoError(t, err)
	assert.Equal(t, 3, limit.K)
}
