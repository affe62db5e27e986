package handlers

import (
	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MigrationHandler struct {
	db *gorm.DB
}

func NewMigrationHandler(db *gorm.DB) *MigrationHandler {
	return &MigrationHandler{db: db}
}

func (h *MigrationHandler) Migrate(ctx *gin.Context) {

	models := []interface{}{
		&model.PlatformAccount{},
		&model.SaasUser{},
		&model.KewenDailyReport{},
		&model.PromotionDailyReport{},
		&model.StoreStats{},
	}
	for _, m := range models {
		err := h.db.AutoMigrate(m)
		if err != nil {
			_ = ctx.Error(err)
			return
		}
	}
}
