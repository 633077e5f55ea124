package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printshop/catalog-api/internal/domain"
)

func validOrder() domain.Order {
	return domain.Order{
		ID:       domain.NewID(),
		Username: "a@b.com",
		Products: []string{"p1", "p2"},
		Status:   domain.StatusCreated,
	}
}

func TestValidateOrder_Valid(t *testing.T) {
	assert.NoError(t, domain.ValidateOrder(validOrder()))
}

func TestValidateOrder_EmptyProducts(t *testing.T) {
	o := validOrder()
	o.Products = []string{}

	err := domain.ValidateOrder(o)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "products")

	o.Products = nil
	err = domain.ValidateOrder(o)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "products")
}

func TestValidateOrder_StatusOutsideEnum(t *testing.T) {
	o := validOrder()
	o.Status = "SHIPPED"

	err := domain.ValidateOrder(o)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestValidateOrder_MissingUsername(t *testing.T) {
	o := validOrder()
	o.Username = ""

	err := domain.ValidateOrder(o)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
}

func TestOrderPatch_MergesSuppliedFields(t *testing.T) {
	o := validOrder()

	patch := domain.OrderPatch{Status: domain.SetField(domain.StatusPending)}
	patch.ApplyTo(&o)

	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, "a@b.com", o.Username)
	assert.Equal(t, []string{"p1", "p2"}, o.Products)
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, domain.StatusCreated.IsValid())
	assert.True(t, domain.StatusPending.IsValid())
	assert.True(t, domain.StatusCompleted.IsValid())
	assert.False(t, domain.Status("SHIPPED").IsValid())
	assert.False(t, domain.Status("").IsValid())
}

func TestStatus_AnyInEnumTransitionIsLegal(t *testing.T) {
	all := []domain.Status{domain.StatusCreated, domain.StatusPending, domain.StatusCompleted}
	for _, from := range all {
		for _, to := range all {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, domain.StatusCreated.CanTransitionTo("SHIPPED"))
}
