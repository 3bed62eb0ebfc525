package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentbook_backend/internals/seeds/admins"
	"rentbook_backend/internals/seeds/rooms"
)

// Files: path kosong berarti bagian itu dilewati.
type Files struct {
	Admins string
	Rooms  string
}

type Result struct {
	Admins int
	Rooms  int
}

func RunAllSeeds(ctx context.Context, db *gorm.DB, files Files, log *zap.Logger) (Result, error) {
	var res Result
	var err error

	if files.Admins != "" {
		if res.Admins, err = admins.SeedAdminsFromJSON(ctx, db, files.Admins, log); err != nil {
			return res, err
		}
	}
	if files.Rooms != "" {
		if res.Rooms, err = rooms.SeedRoomsFromJSON(ctx, db, files.Rooms, log); err != nil {
			return res, err
		}
	}
	return res, nil
}
