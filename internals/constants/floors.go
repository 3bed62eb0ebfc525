package constants

import (
	"fmt"
	"strings"
)

type Floor string

const (
	FloorOld Floor = "old"
	FloorNew Floor = "new"
)

// AllFloors urut sesuai tampilan dashboard.
var AllFloors = []Floor{FloorOld, FloorNew}

// FloorPolicy menyimpan perbedaan perilaku antar lantai.
// Semua layanan membaca flag di sini, bukan membandingkan nama lantai.
type FloorPolicy struct {
	Floor Floor
	Label string

	// mark_paid ikut menandai RentalInfo sebagai lunas
	MirrorOccupancyOnPaid bool

	// update kontak memeriksa ulang keunikan nomor telepon
	RecheckContactPhoneOnUpdate bool
}

var floorPolicies = map[Floor]FloorPolicy{
	FloorOld: {
		Floor:                       FloorOld,
		Label:                       "五楼",
		MirrorOccupancyOnPaid:       false,
		RecheckContactPhoneOnUpdate: true,
	},
	FloorNew: {
		Floor:                       FloorNew,
		Label:                       "六楼",
		MirrorOccupancyOnPaid:       true,
		RecheckContactPhoneOnUpdate: false,
	},
}

func ParseFloor(raw string) (Floor, error) {
	f := Floor(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := floorPolicies[f]; !ok {
		return "", fmt.Errorf("unknown floor %q", raw)
	}
	return f, nil
}

// Policy mengembalikan policy untuk lantai; lantai tak dikenal dapat policy kosong.
func (f Floor) Policy() FloorPolicy {
	return floorPolicies[f]
}

func (f Floor) Valid() bool {
	_, ok := floorPolicies[f]
	return ok
}

func (f Floor) String() string { return string(f) }
