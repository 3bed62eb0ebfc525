package admins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentbook_backend/internals/features/users/admins/dto"
	"rentbook_backend/internals/features/users/admins/service"
)

type AdminSeed struct {
	AdminName string `json:"admin_name"`
	Password  string `json:"password"`
}

// SeedAdminsFromJSON membuat admin dari file; nama yang sudah ada dilewati.
// Password di-hash oleh AdminService.Create.
func SeedAdminsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) (int, error) {
	log.Info("membaca file admin", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	svc := service.NewAdminService(db)
	created := 0
	for _, data := range inputs {
		_, err := svc.Create(ctx, dto.AdminCreateRequest{AdminName: data.AdminName, Password: data.Password})
		switch {
		case err == nil:
			created++
			log.Info("admin dibuat", zap.String("admin_name", data.AdminName))
		case errors.Is(err, service.ErrDuplicateAdmin):
			log.Info("admin sudah ada, dilewati", zap.String("admin_name", data.AdminName))
		default:
			return created, fmt.Errorf("admin %q: %w", data.AdminName, err)
		}
	}
	return created, nil
}
