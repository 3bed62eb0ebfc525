package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rooms/dto"
	"rentbook_backend/internals/features/property/rooms/service"
)

// RoomSeed: satu baris file seed, floor "old" atau "new".
type RoomSeed struct {
	Floor string `json:"floor"`
	dto.RoomRequest
}

func SeedRoomsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) (int, error) {
	log.Info("membaca file kamar", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []RoomSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	svc := service.NewRoomService(db)
	created := 0
	for _, data := range inputs {
		floor, err := constants.ParseFloor(data.Floor)
		if err != nil {
			return created, fmt.Errorf("room %q: %w", data.RoomNumber, err)
		}
		_, err = svc.Create(ctx, floor, data.RoomRequest)
		switch {
		case err == nil:
			created++
			log.Info("kamar dibuat", zap.String("floor", floor.String()), zap.String("room_number", data.RoomNumber))
		case errors.Is(err, service.ErrDuplicateRoom):
			log.Info("kamar sudah ada, dilewati", zap.String("floor", floor.String()), zap.String("room_number", data.RoomNumber))
		default:
			return created, fmt.Errorf("room %s/%q: %w", floor, data.RoomNumber, err)
		}
	}
	return created, nil
}
