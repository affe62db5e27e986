package main

import (
	"context"
	"os"

	"github.com/Kewen526/jx-data-api/conf"
	"github.com/Kewen526/jx-data-api/pkg/route"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"gitlab.com/goxp/cloud0/logger"
)

const (
	APPNAME = "Report"
)

func main() {
	conf.SetEnv()
	logger.Init(APPNAME)
	utils.LoadMessageError()

	// TO DEBUG - No need config when deploy
	_ = os.Setenv("PORT", conf.LoadEnv().Port)
	_ = os.Setenv("DB_HOST", conf.LoadEnv().DBHost)
	_ = os.Setenv("DB_PORT", conf.LoadEnv().DBPort)
	_ = os.Setenv("DB_USER", conf.LoadEnv().DBUser)
	_ = os.Setenv("DB_PASS", conf.LoadEnv().DBPass)
	_ = os.Setenv("DB_NAME", conf.LoadEnv().DBName)
	_ = os.Setenv("ENABLE_DB", conf.LoadEnv().EnableDB)

	if err := utils.EnsureTempDir(); err != nil {
		logger.Tag("main").Error(err)
	}

	app := route.NewService()
	ctx := context.Background()
	err := app.Start(ctx)
	if err != nil {
		logger.Tag("main").Error(err)
	}
	os.Clearenv()
}
