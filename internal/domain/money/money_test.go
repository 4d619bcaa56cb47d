package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercore/ledger-core/internal/domain/money"
)

func TestNewFromString(t *testing.T) {
	m, err := money.NewFromString("10.005")
	require.NoError(t, err)
	assert.Equal(t, "10.01", m.String())
}

func TestNewFromString_Invalid(t *testing.T) {
	_, err := money.NewFromString("not-a-number")
	require.Error(t, err)
}

func TestMinorRoundTrip(t *testing.T) {
	m := money.NewFromMinor(1050)
	assert.Equal(t, "10.50", m.String())
	assert.Equal(t, int64(1050), m.Minor())
}

func TestAddSubNeg(t *testing.T) {
	a := money.MustFromString("10.00")
	b := money.MustFromString("3.50")

	assert.Equal(t, "13.50", a.Add(b).String())
	assert.Equal(t, "6.50", a.Sub(b).String())
	assert.Equal(t, "-10.00", a.Neg().String())
}

func TestCmpAndSign(t *testing.T) {
	a := money.MustFromString("5.00")
	b := money.MustFromString("5.00")
	c := money.MustFromString("6.00")

	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(c))
	assert.True(t, a.GreaterThanOrEqual(b))
	assert.True(t, a.LessThan(c))
	assert.False(t, a.IsNegative())
	assert.True(t, money.Zero.IsZero())
}

func TestSum(t *testing.T) {
	total := money.Sum(
		money.MustFromString("10.00"),
		money.MustFromString("-10.00"),
	)
	assert.True(t, total.IsZero())
}

func TestScanValue(t *testing.T) {
	var m money.Money
	require.NoError(t, m.Scan("42.10"))
	assert.Equal(t, "42.10", m.String())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "42.10", v)

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())
}

func TestNewRoundsHalfUp(t *testing.T) {
	m := money.New(decimal.NewFromFloat(2.005))
	assert.Equal(t, "2.01", m.String())
}
