package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/testutil"
)

func newTestStandardizer(t *testing.T) *Standardizer {
	t.Helper()
	s, err := NewStandardizer(DefaultPrecision, DefaultMoneyRound)
	require.NoError(t, err)
	return s
}

func option(name, notation string) domain.RateOption {
	r := testutil.MustParseRate(notation)
	return domain.RateOption{Name: name, Rate: &r}
}

func TestNewStandardizer_Validation(t *testing.T) {
	_, err := NewStandardizer(-1, 2)
	assert.ErrorIs(t, err, domain.ErrNegativePrecision)

	_, err = NewStandardizer(6, -1)
	assert.ErrorIs(t, err, domain.ErrNegativePrecision)
}

func TestValidateAmountPeriods(t *testing.T) {
	assert.NoError(t, ValidateAmountPeriods(0, 0))
	assert.ErrorIs(t, ValidateAmountPeriods(-1, 1), domain.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmountPeriods(1, -1), domain.ErrInvalidPeriods)
}

func TestStandardizer_StandardizeOptions(t *testing.T) {
	s := newTestStandardizer(t)

	items, err := s.StandardizeOptions([]domain.RateOption{
		option("Banco A", "24% NA/MV"),
		option("", "10% EA"),
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Banco A", items[0].Name)
	assert.InDelta(t, 0.268242, items[0].EA, 1e-9)
	assert.Equal(t, domain.DefaultOptionName, items[1].Name)
	assert.InDelta(t, 0.10, items[1].EA, 1e-9)
}

func TestStandardizer_StandardizeOptions_MissingRate(t *testing.T) {
	s := newTestStandardizer(t)

	_, err := s.StandardizeOptions([]domain.RateOption{{Name: "Banco X"}})
	assert.ErrorIs(t, err, domain.ErrOptionMissingRate)
}

func TestStandardizer_FutureValue(t *testing.T) {
	s := newTestStandardizer(t)

	fv, err := s.FutureValue(5_000_000, 24, testutil.MustParseRate("6% TV"))
	require.NoError(t, err)
	assert.InDelta(t, 20_244_673.21, fv, 0.011)

	fv, err = s.FutureValue(1000, 0, testutil.MustParseRate("6% TV"))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, fv)

	_, err = s.FutureValue(-5, 1, testutil.MustParseRate("6% TV"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.EqualError(t, err, "invalid amount: must be >= 0")
}

func TestStandardizer_Overflow(t *testing.T) {
	s := newTestStandardizer(t)

	_, err := s.FutureValue(1000, 100_000, testutil.MustParseRate("10% MV"))
	assert.ErrorIs(t, err, domain.ErrResultOverflow)

	_, err = s.CompoundSeries(1000, testutil.MustParseRate("900% MV"), 1200)
	assert.ErrorIs(t, err, domain.ErrResultOverflow)

	points, err := s.SimpleSeries(1000, testutil.MustParseRate("900% MV"), 1200)
	require.NoError(t, err)
	assert.Len(t, points, 1201)
}

func TestStandardizer_SimpleSeries(t *testing.T) {
	s := newTestStandardizer(t)

	points, err := s.SimpleSeries(1_000_000, testutil.MustParseRate("6% TV"), 12)
	require.NoError(t, err)
	require.Len(t, points, 13)
	assert.Equal(t, domain.SeriesPoint{Period: 0, Value: 1_000_000}, points[0])
	assert.Equal(t, 1, points[1].Period)
	assert.InDelta(t, 1_060_000, points[1].Value, 1e-6)
	assert.InDelta(t, 1_720_000, points[12].Value, 1e-6)
}

func TestStandardizer_CompoundSeries(t *testing.T) {
	s := newTestStandardizer(t)

	points, err := s.CompoundSeries(1_000_000, testutil.MustParseRate("6% TV"), 2)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 1_000_000, points[0].Value, 1e-6)
	assert.InDelta(t, 1_060_000, points[1].Value, 1e-6)
	assert.InDelta(t, 1_123_600, points[2].Value, 1e-6)

	_, err = s.CompoundSeries(1000, testutil.MustParseRate("6% TV"), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriods)
}

func TestStandardizer_BestRate(t *testing.T) {
	s := newTestStandardizer(t)

	credit := []domain.RateOption{
		option("Banco C", "30% NA/MV"),
		option("Banco A", "24% NA/MV"),
		option("Banco B", "2% MV"),
	}
	best, err := s.BestRate(credit, domain.ModeCredit)
	require.NoError(t, err)
	require.NotNil(t, best)
	// A and B tie on EA; input order decides.
	assert.Equal(t, "Banco A", best.Name)

	investments := []domain.RateOption{
		option("CDT X", "10% EA"),
		option("Fondo Y", "0.8% MV"),
	}
	best, err = s.BestRate(investments, domain.ModeInvestment)
	require.NoError(t, err)
	assert.Equal(t, "Fondo Y", best.Name)
	assert.InDelta(t, 0.100339, best.EA, 1e-9)
}

func TestStandardizer_BestRate_EdgeCases(t *testing.T) {
	s := newTestStandardizer(t)

	best, err := s.BestRate(nil, domain.ModeCredit)
	assert.NoError(t, err)
	assert.Nil(t, best)

	_, err = s.BestRate(nil, domain.ComparisonMode("savings"))
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}
