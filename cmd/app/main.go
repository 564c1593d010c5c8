package main

import (
	"os"

	"github.com/DRSN-tech/catalog-backend/internal/app"
	config "github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

//	@title						BSB Catalog API
//	@version					1.0
//	@description				Каталог продуктов и услуг банка: публичная витрина и админка.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				"Bearer <token>" из /auth/login
func main() {
	log := logger.NewZapLogger(config.LoggerOptions())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		_ = log.Sync()
		os.Exit(1)
	}
}
