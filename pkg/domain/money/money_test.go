package money_test

import (
	"encoding/json"
	"testing"

	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundsToTwoFractionDigits(t *testing.T) {
	assert.Equal(t, "500.00", money.New(500).String())
	assert.Equal(t, "0.01", money.New(0.01).String())
	assert.Equal(t, "10.56", money.New(10.555).String())
}

func TestFromDecimalRoundsToTwoFractionDigits(t *testing.T) {
	assert.Equal(t, "10.56", money.FromDecimal(decimal.NewFromFloat(10.555)).String())
	assert.Equal(t, "500.00", money.FromDecimal(decimal.NewFromInt(500)).String())
}

func TestParse(t *testing.T) {
	a, err := money.Parse("9999999.00")
	require.NoError(t, err)
	assert.Equal(t, "9999999.00", a.String())

	_, err = money.Parse("not-a-number")
	require.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := money.New(500.00)
	b := money.New(200.50)

	assert.Equal(t, "700.50", a.Add(b).String())
	assert.Equal(t, "299.50", a.Sub(b).String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Equal(money.New(500)))
	assert.True(t, a.IsPositive())
	assert.False(t, money.Zero().IsPositive())
}

func TestMarshalJSONKeepsTwoFractionDigits(t *testing.T) {
	data, err := json.Marshal(money.New(500))
	require.NoError(t, err)
	assert.Equal(t, "500.00", string(data))

	data, err = json.Marshal(money.Zero())
	require.NoError(t, err)
	assert.Equal(t, "0.00", string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var a money.Amount
	require.NoError(t, json.Unmarshal([]byte(`500`), &a))
	assert.Equal(t, "500.00", a.String())

	require.NoError(t, json.Unmarshal([]byte(`"123.45"`), &a))
	assert.Equal(t, "123.45", a.String())

	require.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
}

func TestValueAndScan(t *testing.T) {
	v, err := money.New(42.10).Value()
	require.NoError(t, err)
	assert.Equal(t, "42.10", v)

	var a money.Amount
	require.NoError(t, a.Scan("42.10"))
	assert.Equal(t, "42.10", a.String())
}
