package era

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision is the granularity a date is rendered at. Higher ranks are finer.
type Precision uint8

const (
	PrecisionMillennium Precision = 6
	PrecisionCentury    Precision = 7
	PrecisionDecade     Precision = 8
	PrecisionYear       Precision = 9
	PrecisionMonth      Precision = 10
	PrecisionDay        Precision = 11
)

const (
	minPrecisionRank = int(PrecisionMillennium)
	maxPrecisionRank = int(PrecisionDay)
)

var precisionNames = map[Precision]string{
	PrecisionMillennium: "millennium",
	PrecisionCentury:    "century",
	PrecisionDecade:     "decade",
	PrecisionYear:       "year",
	PrecisionMonth:      "month",
	PrecisionDay:        "day",
}

// Precisions returns every supported precision ordered from coarse to fine.
func Precisions() []Precision {
	return []Precision{
		PrecisionMillennium,
		PrecisionCentury,
		PrecisionDecade,
		PrecisionYear,
		PrecisionMonth,
		PrecisionDay,
	}
}

// PrecisionFromRank converts a numeric rank into a Precision.
// Ranks outside 6-11 fail with an *InvalidPrecisionError.
func PrecisionFromRank(rank int) (Precision, error) {
	if rank < minPrecisionRank || rank > maxPrecisionRank {
		return 0, &InvalidPrecisionError{Value: rank}
	}
	return Precision(rank), nil
}

// Rank returns the stable numeric rank of p.
func (p Precision) Rank() int {
	return int(p)
}

// Valid reports whether p is one of the supported precisions.
func (p Precision) Valid() bool {
	_, ok := precisionNames[p]
	return ok
}

// Name returns the lower case word for p, e.g. "century".
func (p Precision) Name() string {
	if name, ok := precisionNames[p]; ok {
		return name
	}
	return "precision(" + strconv.Itoa(int(p)) + ")"
}

// String renders the numeric rank.
func (p Precision) String() string {
	return strconv.Itoa(p.Rank())
}

func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &InvalidPrecisionError{Value: p.Rank()}
	}
	return []byte(p.String()), nil
}

func (p *Precision) UnmarshalText(text []byte) error {
	rank, err := strconv.Atoi(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("era: parse precision %q: %w", text, err)
	}
	parsed, err := PrecisionFromRank(rank)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
