package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printshop/catalog-api/internal/domain"
)

func validProduct() domain.Product {
	return domain.Product{
		ID:          domain.NewID(),
		Description: "blue and black abstract artwork",
		ImgThumb:    "https://images.example.com/thumb/abstract.jpg",
		Img:         "https://images.example.com/full/abstract.jpg",
		Link:        "https://example.com/photos/abstract",
		UserID:      "user-1",
		UserName:    "Test User",
		Tags:        []string{"abstract", "blue"},
	}
}

func TestValidateProduct_Valid(t *testing.T) {
	assert.NoError(t, domain.ValidateProduct(validProduct()))
}

func TestValidateProduct_CollectsEveryFailingField(t *testing.T) {
	p := validProduct()
	p.Description = ""
	p.Img = "not a url"
	p.UserName = ""

	err := domain.ValidateProduct(p)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Product validation failed", verr.Message)
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "img")
	assert.Contains(t, verr.Fields, "userName")
	assert.Len(t, verr.Fields, 3)
}

func TestValidateProduct_OptionalURLFields(t *testing.T) {
	p := validProduct()
	p.Link = ""
	p.UserLink = ""
	assert.NoError(t, domain.ValidateProduct(p), "absent optional URLs are fine")

	p.UserLink = "://broken"
	err := domain.ValidateProduct(p)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "userLink")
}

func TestProductPatch_OnlySuppliedFieldsChange(t *testing.T) {
	p := validProduct()
	original := p

	patch := domain.ProductPatch{
		Description: domain.SetField("a new description"),
		Tags:        domain.SetField([]string{"dog"}),
	}
	patch.ApplyTo(&p)

	assert.Equal(t, "a new description", p.Description)
	assert.Equal(t, []string{"dog"}, p.Tags)
	assert.Equal(t, original.Img, p.Img)
	assert.Equal(t, original.UserName, p.UserName)
	assert.Equal(t, original.ID, p.ID)
}

func TestProductPatch_NullClearsAndFailsValidation(t *testing.T) {
	p := validProduct()

	patch := domain.ProductPatch{UserName: domain.NullField[string]()}
	patch.ApplyTo(&p)

	err := domain.ValidateProduct(p)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "userName")
}
