package route

import (
	"github.com/Kewen526/jx-data-api/conf"
	"github.com/Kewen526/jx-data-api/pkg/handlers"
	"github.com/Kewen526/jx-data-api/pkg/repo"
	service2 "github.com/Kewen526/jx-data-api/pkg/service"
	"github.com/Kewen526/jx-data-api/pkg/taskqueue"
	"github.com/gin-contrib/cors"

	"github.com/caarlos0/env/v6"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"
)

type extraSetting struct {
	DbDebugEnable bool `env:"DB_DEBUG_ENABLE" envDefault:"true"`
}

type Service struct {
	*service.BaseApp
	setting *extraSetting
}

func NewService() *Service {
	s := &Service{
		service.NewApp("JX Data API", "v1.0"),
		&extraSetting{},
	}

	// repo
	_ = env.Parse(s.setting)
	db := s.GetDB()
	if s.setting.DbDebugEnable {
		db = db.Debug()
	}
	repoPG := repo.NewPGRepo(db)
	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"PUT", "PATCH", "GET", "DELETE", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	queue := taskqueue.New(conf.LoadEnv().MaxReportWorkers)
	reportService := service2.NewReportService(repoPG, queue)
	reportHandle := handlers.NewReportHandlers(reportService)

	v1Api := s.Router.Group("/api/v1")

	v1Api.POST("/report/daily", ginext.WrapHandler(reportHandle.GenerateDailyReport))
	v1Api.POST("/report/weekly", ginext.WrapHandler(reportHandle.GenerateWeeklyReport))
	v1Api.POST("/report/monthly", ginext.WrapHandler(reportHandle.GenerateMonthlyReport))
	v1Api.POST("/report/custom", ginext.WrapHandler(reportHandle.GenerateCustomReport))

	// Migrate
	migrateHandler := handlers.NewMigrationHandler(db)
	s.Router.POST("/internal/migrate", migrateHandler.Migrate)

	return s
}
