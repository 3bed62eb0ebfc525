package helper

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate membaca "YYYY-MM-DD". String kosong berarti tidak diisi (nil).
// label dipakai di pesan error, mis. "入住日期" → "入住日期格式不正确".
func ParseDate(raw, label string) (*datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		e := Validation(CodeInvalidDateFormat, label+"格式不正确")
		e.Fields = map[string]string{label: raw}
		return nil, e.Wrap(err)
	}
	d := datatypes.Date(t)
	return &d, nil
}

// DateOf memotong t ke tengah malam UTC pada tanggal kalender t.
// Semua kolom date disimpan dalam bentuk ini.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func DatePtr(d datatypes.Date) *datatypes.Date { return &d }

// FormatDate → "2006-01-02" atau "" kalau nil.
func FormatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(DateLayout)
}

// DaysBetween menghitung selisih hari kalender (to - from).
func DaysBetween(from, to datatypes.Date) int {
	a := time.Time(DateOf(time.Time(from)))
	b := time.Time(DateOf(time.Time(to)))
	return int(b.Sub(a).Hours() / 24)
}

// MonthRange mengembalikan [awal bulan, awal bulan berikutnya) di lokasi loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
