package product

import (
	"database/sql"

	"go.uber.org/zap"

	"emporium/internal/product/repository"
	"emporium/internal/product/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)
	return NewController(svc, logger)
}
