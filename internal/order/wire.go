package order

import (
	"database/sql"

	"go.uber.org/zap"

	"emporium/internal/config"
	"emporium/internal/order/controller"
	orderrepo "emporium/internal/order/repository"
	"emporium/internal/order/service"
	"emporium/internal/order/usecase"
	productrepo "emporium/internal/product/repository"
	"emporium/internal/validation"
)

func NewModule(db *sql.DB, cfg *config.Config, gate *validation.Gate, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	productRepo := productrepo.NewMySQLRepository(db)
	numbers := service.NewOrderNumberGenerator()

	creationSvc := service.NewCreationService(
		db,
		orderRepo,
		orderItemRepo,
		productRepo,
		numbers,
		logger,
		cfg.Order.TxTimeout,
	)

	statusSvc := service.NewStatusService(
		orderRepo,
		orderItemRepo,
		logger,
		cfg.Order.StrictStatusTransitions,
	)

	createUC := usecase.NewCreateOrderUseCase(creationSvc, logger, cfg.Order.MaxRetryAttempts)
	getUC := usecase.NewGetOrderUseCase(orderRepo, orderItemRepo)
	statusUC := usecase.NewUpdateStatusUseCase(statusSvc, logger)

	return controller.NewOrderController(createUC, getUC, statusUC, gate, logger)
}
