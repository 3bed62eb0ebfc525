package details

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentbook_backend/internals/configs"
	"rentbook_backend/internals/features/property/contracts/service/pdf"
	rentalService "rentbook_backend/internals/features/property/rentals/service"
	authService "rentbook_backend/internals/features/users/auth/service"
	"rentbook_backend/internals/helpers/dbtime"
)

// Deps dibangun sekali di serve lalu dibagikan ke semua kelompok route.
type Deps struct {
	DB       *gorm.DB
	Config   *configs.Config
	Log      *zap.Logger
	Clock    dbtime.Clock
	Auth     *authService.AuthService
	Rates    rentalService.Rates
	Renderer *pdf.Renderer
}

func NewDeps(db *gorm.DB, cfg *configs.Config, log *zap.Logger, clock dbtime.Clock, auth *authService.AuthService) Deps {
	return Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Clock:  clock,
		Auth:   auth,
		Rates: rentalService.Rates{
			Water:       cfg.WaterUnitRate,
			Electricity: cfg.ElectricityUnitRate,
		},
		Renderer: pdf.NewRenderer(cfg.ContractFontPath, clock, log),
	}
}
