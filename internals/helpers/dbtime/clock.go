// file: internals/helpers/dbtime/clock.go
package dbtime

import (
	"time"

	"gorm.io/datatypes"
)

// Clock disuntik ke service supaya "hari ini" bisa dipatok di test.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewClock memakai timezone aplikasi; nama tak dikenal → UTC.
func NewClock(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }

// FixedClock selalu mengembalikan waktu yang sama.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// Today: tanggal kalender sekarang (tengah malam UTC), format kolom date.
func Today(c Clock) datatypes.Date {
	y, m, d := c.Now().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Location dari clock, dipakai untuk filter bulan pada kolom timestamp.
func Location(c Clock) *time.Location {
	return c.Now().Location()
}
