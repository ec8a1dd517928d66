package domain

import "time"

// Quarter identifies one of the four 15-minute buckets of a clock hour.
type Quarter int

const (
	FirstQuarter  Quarter = 1
	FourthQuarter Quarter = 4
)

// QuarterOf returns the quarter of the hour t falls in, using UTC.
func QuarterOf(t time.Time) Quarter {
	return Quarter(t.UTC().Minute()/15 + 1)
}

// Valid reports whether q is within 1..4.
func (q Quarter) Valid() bool {
	return q >= FirstQuarter && q <= FourthQuarter
}
