package resource

import (
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []domain.Resource {
	return []domain.Resource{
		{ResourceID: "R-1", ResourceName: "Alice", Type: domain.ResourceLabor, CostUnit: domain.CostPerHour, UnitPrice: 85},
		{ResourceID: "R-2", ResourceName: "Crane", Type: domain.ResourceEquipment, CostUnit: domain.CostPerDay, UnitPrice: 1200},
	}
}

func TestNewResource(t *testing.T) {
	now := time.UnixMilli(1736942400123)
	r := NewResource(now)

	assert.Equal(t, "R-1736942400123", r.ResourceID)
	assert.Equal(t, domain.ResourceLabor, r.Type)
	assert.Equal(t, domain.CostPerHour, r.CostUnit)
	assert.Zero(t, r.UnitPrice)
	assert.NoError(t, Validate(r))
}

func TestAdd(t *testing.T) {
	list := sample()
	out, err := Add(list, NewResource(time.UnixMilli(5)))
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Len(t, list, 2)

	_, err = Add(list, domain.Resource{Type: "robot", CostUnit: domain.CostPerDay})
	assert.ErrorIs(t, err, ErrInvalidResource)
}

func TestUpdateField(t *testing.T) {
	list := sample()

	out, err := UpdateField(list, 1, FieldUnitPrice, "950.5")
	require.NoError(t, err)
	assert.InDelta(t, 950.5, out[1].UnitPrice, 1e-9)
	assert.InDelta(t, 1200.0, list[1].UnitPrice, 1e-9, "input must not change")

	out, err = UpdateField(out, 0, FieldType, " Material ")
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceMaterial, out[0].Type)

	out, err = UpdateField(out, 0, FieldUnitPrice, "")
	require.NoError(t, err)
	assert.Zero(t, out[0].UnitPrice)
}

func TestUpdateField_Errors(t *testing.T) {
	list := sample()

	tests := []struct {
		name  string
		index int
		field Field
		raw   string
		want  error
	}{
		{"index too big", 2, FieldName, "x", ErrIndexOutOfRange},
		{"negative index", -1, FieldName, "x", ErrIndexOutOfRange},
		{"bad unit", 0, FieldCostUnit, "fortnight", ErrInvalidResource},
		{"negative price", 0, FieldUnitPrice, "-3", ErrInvalidResource},
		{"non-numeric price", 0, FieldUnitPrice, "cheap", ErrInvalidResource},
		{"NaN price", 0, FieldUnitPrice, "NaN", ErrInvalidResource},
		{"infinite price", 0, FieldUnitPrice, "+Inf", ErrInvalidResource},
		{"unknown field", 0, Field("owner"), "x", ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := UpdateField(list, tt.index, tt.field, tt.raw)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, list, out)
		})
	}
}

func TestDelete(t *testing.T) {
	list := sample()

	out, err := Delete(list, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "R-2", out[0].ResourceID)
	assert.Len(t, list, 2)

	_, err = Delete(list, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestParseFieldAndIndexOf(t *testing.T) {
	f, err := ParseField("price")
	require.NoError(t, err)
	assert.Equal(t, FieldUnitPrice, f)

	f, err = ParseField("COSTUNIT")
	require.NoError(t, err)
	assert.Equal(t, FieldCostUnit, f)

	_, err = ParseField("color")
	assert.ErrorIs(t, err, ErrUnknownField)

	assert.Equal(t, 1, IndexOf(sample(), "R-2"))
	assert.Equal(t, -1, IndexOf(sample(), "R-9"))
}
