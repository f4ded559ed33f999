package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RateKind distinguishes effective rates from nominal ones.
type RateKind string

const (
	RateKindEffective RateKind = "effective"
	RateKindNominal   RateKind = "nominal"
)

// Months per period for each letter code of the notation.
var periodByLetter = map[string]int{"M": 1, "T": 3, "S": 6, "A": 12}

var effectiveByCode = map[string]int{"MV": 1, "TV": 3, "SV": 6, "EA": 12, "AV": 12}

var (
	effectiveCodeByPeriod = map[int]string{1: "MV", 3: "TV", 6: "SV", 12: "EA"}
	letterByPeriod        = map[int]string{1: "M", 3: "T", 6: "S", 12: "A"}
)

var (
	nominalPattern   = regexp.MustCompile(`^([0-9]+(?:[.,][0-9]+)?)%?N([MTSA])/([MTSA])([VA])$`)
	effectivePattern = regexp.MustCompile(`^([0-9]+(?:[.,][0-9]+)?)%?(MV|TV|SV|EA|AV)$`)
)

// Rate is an interest rate in uniform form.
//
// Value is a decimal (24% is 0.24). Period is the number of months per
// period: for effective rates the effective period, for nominal rates the
// compounding period. NominalPeriod is the nominal reference period in
// months and is only set for nominal rates.
type Rate struct {
	Value         float64
	Period        int
	Kind          RateKind
	Anticipated   bool
	NominalPeriod int
}

// NewRate validates the components and returns a Rate.
func NewRate(value float64, period int, kind string, anticipated bool, nominalPeriod int) (Rate, error) {
	k, err := parseKind(kind)
	if err != nil {
		return Rate{}, err
	}

	r := Rate{
		Value:         value,
		Period:        period,
		Kind:          k,
		Anticipated:   anticipated,
		NominalPeriod: nominalPeriod,
	}
	if err := r.Validate(); err != nil {
		return Rate{}, err
	}
	if k == RateKindEffective {
		r.NominalPeriod = 0
	}
	return r, nil
}

func parseKind(kind string) (RateKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "effective", "efectiva":
		return RateKindEffective, nil
	case "nominal":
		return RateKindNominal, nil
	default:
		return "", ErrInvalidRateKind
	}
}

// Validate checks the rate invariants.
func (r Rate) Validate() error {
	if r.Value <= -1 {
		return ErrRateBelowFloor
	}
	if r.Period <= 0 {
		return ErrInvalidPeriod
	}
	switch r.Kind {
	case RateKindEffective:
	case RateKindNominal:
		if r.NominalPeriod <= 0 || r.NominalPeriod < r.Period {
			return ErrInvalidNominalPeriod
		}
	default:
		return ErrInvalidRateKind
	}
	return nil
}

// IsNominal reports whether the rate is quoted as nominal.
func (r Rate) IsNominal() bool {
	return r.Kind == RateKindNominal
}

// ParseRate reads rate notation such as "24% NA/MV", "18.5% NS/SV",
// "6% TV", "10EA" or "2,5% MV". Spaces and letter case are ignored.
func ParseRate(text string) (Rate, error) {
	raw := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if raw == "" {
		return Rate{}, ErrEmptyRate
	}

	if m := nominalPattern.FindStringSubmatch(raw); m != nil {
		value, err := percentToDecimal(m[1])
		if err != nil {
			return Rate{}, err
		}
		return NewRate(value, periodByLetter[m[3]], string(RateKindNominal), m[4] == "A", periodByLetter[m[2]])
	}

	if m := effectivePattern.FindStringSubmatch(raw); m != nil {
		value, err := percentToDecimal(m[1])
		if err != nil {
			return Rate{}, err
		}
		return NewRate(value, effectiveByCode[m[2]], string(RateKindEffective), false, 0)
	}

	return Rate{}, fmt.Errorf("%w: %q", ErrUnrecognizedRate, text)
}

func percentToDecimal(pct string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(pct, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnrecognizedRate, err)
	}
	return v / 100.0, nil
}

// Format renders the rate back to notation with the percentage rounded
// to precision decimals.
func (r Rate) Format(precision int) string {
	pct := strconv.FormatFloat(Round(r.Value*100.0, precision), 'f', -1, 64)

	if r.Kind == RateKindEffective {
		code, ok := effectiveCodeByPeriod[r.Period]
		if !ok {
			code = strconv.Itoa(r.Period)
		}
		return fmt.Sprintf("%s%% %s", pct, code)
	}

	suffix := "V"
	if r.Anticipated {
		suffix = "A"
	}
	return fmt.Sprintf("%s%% N%s/%s%s", pct, periodLetter(r.NominalPeriod), periodLetter(r.Period), suffix)
}

func (r Rate) String() string {
	return r.Format(6)
}

func periodLetter(months int) string {
	if l, ok := letterByPeriod[months]; ok {
		return l
	}
	return strconv.Itoa(months)
}

type rateJSON struct {
	Value         float64  `json:"value"`
	Period        int      `json:"period"`
	Kind          RateKind `json:"kind"`
	Anticipated   bool     `json:"anticipated"`
	NominalPeriod int      `json:"nominal_period,omitempty"`
	Notation      string   `json:"notation"`
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(rateJSON{
		Value:         r.Value,
		Period:        r.Period,
		Kind:          r.Kind,
		Anticipated:   r.Anticipated,
		NominalPeriod: r.NominalPeriod,
		Notation:      r.String(),
	})
}

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	if decimals < 0 {
		return x
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
