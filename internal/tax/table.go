// Package tax estimates sales tax from the state a zip code belongs to.
package tax

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/kirinyoku/adslot-go/internal/domain"
)

var ErrUnknownZone = errors.New("zip code maps to no known state")

type zipRange struct {
	lo, hi int
	state  string
}

// zip3 prefixes per state.
var zipRanges = []zipRange{
	{350, 369, "AL"}, {995, 999, "AK"}, {850, 865, "AZ"}, {716, 729, "AR"},
	{900, 961, "CA"}, {800, 816, "CO"}, {60, 69, "CT"}, {197, 199, "DE"},
	{320, 347, "FL"}, {300, 319, "GA"}, {967, 968, "HI"}, {832, 838, "ID"},
	{600, 629, "IL"}, {460, 479, "IN"}, {500, 528, "IA"}, {660, 679, "KS"},
	{400, 427, "KY"}, {700, 714, "LA"}, {39, 49, "ME"}, {206, 219, "MD"},
	{10, 27, "MA"}, {480, 499, "MI"}, {550, 567, "MN"}, {386, 397, "MS"},
	{630, 658, "MO"}, {590, 599, "MT"}, {680, 693, "NE"}, {889, 898, "NV"},
	{30, 38, "NH"}, {70, 89, "NJ"}, {870, 884, "NM"}, {100, 149, "NY"},
	{270, 289, "NC"}, {580, 588, "ND"}, {430, 458, "OH"}, {730, 749, "OK"},
	{970, 979, "OR"}, {150, 196, "PA"}, {28, 29, "RI"}, {290, 299, "SC"},
	{570, 577, "SD"}, {370, 385, "TN"}, {750, 799, "TX"}, {840, 847, "UT"},
	{50, 59, "VT"}, {220, 246, "VA"}, {980, 994, "WA"}, {247, 268, "WV"},
	{530, 549, "WI"}, {820, 831, "WY"}, {200, 205, "DC"},
}

var stateRates = map[string]float64{
	"AL": 0.04, "AK": 0, "AZ": 0.056, "AR": 0.065, "CA": 0.0725, "CO": 0.029,
	"CT": 0.0635, "DE": 0, "FL": 0.06, "GA": 0.04, "HI": 0.04, "ID": 0.06,
	"IL": 0.0625, "IN": 0.07, "IA": 0.06, "KS": 0.065, "KY": 0.06, "LA": 0.0445,
	"ME": 0.055, "MD": 0.06, "MA": 0.0625, "MI": 0.06, "MN": 0.06875, "MS": 0.07,
	"MO": 0.04225, "MT": 0, "NE": 0.055, "NV": 0.0685, "NH": 0, "NJ": 0.06625,
	"NM": 0.05125, "NY": 0.04, "NC": 0.0475, "ND": 0.05, "OH": 0.0575, "OK": 0.045,
	"OR": 0, "PA": 0.06, "RI": 0.07, "SC": 0.06, "SD": 0.045, "TN": 0.07,
	"TX": 0.0625, "UT": 0.0485, "VT": 0.06, "VA": 0.053, "WA": 0.065, "WV": 0.06,
	"WI": 0.05, "WY": 0.04, "DC": 0.06,
}

// StateTable applies state-level sales tax rates. County and city rates are not modelled.
type StateTable struct{}

func NewStateTable() *StateTable {
	return &StateTable{}
}

// StateOf returns the two-letter state for a zip code.
func (t *StateTable) StateOf(zone domain.Zone) (string, error) {
	s := string(zone)
	if len(s) < 3 {
		return "", ErrUnknownZone
	}

	prefix, err := strconv.Atoi(s[:3])
	if err != nil {
		return "", ErrUnknownZone
	}

	for _, r := range zipRanges {
		if prefix >= r.lo && prefix <= r.hi {
			return r.state, nil
		}
	}

	return "", ErrUnknownZone
}

func (t *StateTable) Rate(zone domain.Zone) (float64, error) {
	state, err := t.StateOf(zone)
	if err != nil {
		return 0, err
	}

	return stateRates[state], nil
}

// EstimateTax returns round(amount * rate) for the zone's state.
func (t *StateTable) EstimateTax(_ context.Context, zone domain.Zone, amountCents int64) (int64, error) {
	rate, err := t.Rate(zone)
	if err != nil {
		return 0, err
	}

	if amountCents <= 0 {
		return 0, nil
	}

	return int64(math.Round(float64(amountCents) * rate)), nil
}
