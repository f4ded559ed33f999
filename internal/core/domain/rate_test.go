package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate_Nominal(t *testing.T) {
	r, err := ParseRate("24% NA/MV")
	require.NoError(t, err)

	assert.InDelta(t, 0.24, r.Value, 1e-12)
	assert.Equal(t, 1, r.Period)
	assert.Equal(t, RateKindNominal, r.Kind)
	assert.Equal(t, 12, r.NominalPeriod)
	assert.False(t, r.Anticipated)
	assert.Equal(t, "24% NA/MV", r.String())
}

func TestParseRate_Effective(t *testing.T) {
	cases := []struct {
		in     string
		value  float64
		period int
		out    string
	}{
		{"6% TV", 0.06, 3, "6% TV"},
		{"10% EA", 0.10, 12, "10% EA"},
		{"10EA", 0.10, 12, "10% EA"},
		{"10% AV", 0.10, 12, "10% EA"},
		{" 2,5 % mv ", 0.025, 1, "2.5% MV"},
		{"4.75%SV", 0.0475, 6, "4.75% SV"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := ParseRate(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.value, r.Value, 1e-12)
			assert.Equal(t, tc.period, r.Period)
			assert.Equal(t, RateKindEffective, r.Kind)
			assert.False(t, r.Anticipated)
			assert.Equal(t, tc.out, r.String())
		})
	}
}

func TestParseRate_NominalVariants(t *testing.T) {
	r, err := ParseRate("18.5% NS/SV")
	require.NoError(t, err)
	assert.Equal(t, 6, r.Period)
	assert.Equal(t, 6, r.NominalPeriod)
	assert.Equal(t, "18.5% NS/SV", r.String())

	r, err = ParseRate("12% na/ta")
	require.NoError(t, err)
	assert.True(t, r.Anticipated)
	assert.Equal(t, 3, r.Period)
	assert.Equal(t, "12% NA/TA", r.String())
}

func TestParseRate_Errors(t *testing.T) {
	_, err := ParseRate("   ")
	assert.ErrorIs(t, err, ErrEmptyRate)

	_, err = ParseRate("abc")
	assert.ErrorIs(t, err, ErrUnrecognizedRate)

	_, err = ParseRate("24% XX")
	assert.ErrorIs(t, err, ErrUnrecognizedRate)

	// Nominal period shorter than the compounding period.
	_, err = ParseRate("24% NM/AV")
	assert.ErrorIs(t, err, ErrInvalidNominalPeriod)
}

func TestNewRate_Validation(t *testing.T) {
	_, err := NewRate(-1, 1, "effective", false, 0)
	assert.ErrorIs(t, err, ErrRateBelowFloor)

	_, err = NewRate(0.1, 0, "effective", false, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewRate(0.1, 1, "compuesta", false, 0)
	assert.ErrorIs(t, err, ErrInvalidRateKind)

	_, err = NewRate(0.1, 1, "nominal", false, 0)
	assert.ErrorIs(t, err, ErrInvalidNominalPeriod)

	r, err := NewRate(0.1, 1, " Efectiva ", false, 12)
	require.NoError(t, err)
	assert.Equal(t, RateKindEffective, r.Kind)
	assert.Zero(t, r.NominalPeriod)
}

func TestRate_FormatUnknownPeriod(t *testing.T) {
	r, err := NewRate(0.05, 2, "effective", false, 0)
	require.NoError(t, err)
	assert.Equal(t, "5% 2", r.String())

	r, err = NewRate(0.123456789, 1, "effective", false, 0)
	require.NoError(t, err)
	assert.Equal(t, "12.35% MV", r.Format(2))
}

func TestRate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(mustParse(t, "24% NA/MV"))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "nominal", got["kind"])
	assert.Equal(t, "24% NA/MV", got["notation"])
	assert.EqualValues(t, 12, got["nominal_period"])
}

func TestParseComparisonMode(t *testing.T) {
	m, err := ParseComparisonMode("credito")
	require.NoError(t, err)
	assert.Equal(t, ModeCredit, m)

	m, err = ParseComparisonMode("investment")
	require.NoError(t, err)
	assert.Equal(t, ModeInvestment, m)

	_, err = ParseComparisonMode("savings")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestRanking_Best(t *testing.T) {
	var nilRanking *Ranking
	assert.Nil(t, nilRanking.Best())
	assert.Nil(t, (&Ranking{}).Best())

	r := &Ranking{Entries: []RankingEntry{{Name: "A", EA: 0.1, Position: 1}, {Name: "B", EA: 0.2, Position: 2}}}
	assert.Equal(t, "A", r.Best().Name)
}

func mustParse(t *testing.T, text string) Rate {
	t.Helper()
	r, err := ParseRate(text)
	require.NoError(t, err)
	return r
}
