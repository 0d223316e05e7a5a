package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-web/internal/domain/inventory"
)

func TestLineValue(t *testing.T) {
	assert.True(t, decimal.NewFromInt(16100).Equal(inventory.LineValue(decimal.NewFromInt(2300), 7)))
	assert.True(t, inventory.LineValue(decimal.NewFromInt(2300), 0).IsZero())
	assert.True(t, inventory.LineValue(decimal.NewFromInt(2300), -3).IsZero())
}

func TestTotals_CatalogoInicial(t *testing.T) {
	var tot inventory.Totals
	tot.Add(decimal.NewFromInt(2300), 7)
	tot.Add(decimal.NewFromInt(5670), 35)
	tot.Add(decimal.NewFromInt(11250), 17)

	assert.Equal(t, 3, tot.Products)
	assert.Equal(t, 59, tot.Units)
	// 16100 + 198450 + 191250
	assert.Equal(t, "405800", tot.Value.String())
}
