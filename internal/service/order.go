package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golden-catering/internal/dto"
	"golden-catering/internal/model"
	"golden-catering/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (int64, error)
	GetOrder(ctx context.Context, orderID int64) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	packageRepo repository.PackageRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	packageRepo repository.PackageRepository,
) OrderService {
	return &orderServiceImpl{
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
	}
}

// CreateOrder stores the booking exactly as submitted. The total is the
// client's number and the package reference is never checked against the
// catalog; a mismatch against catalog pricing is logged but accepted.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (int64, error) {
	order := &model.Order{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		PackageID:       req.PackageID,
		TotalPrice:      req.TotalPrice,
		EventDate:       req.EventDate,
		GuestCount:      req.GuestCount,
		Status:          "pending",
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	s.checkPricing(ctx, order)

	return order.ID, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return order, nil
}

// checkPricing compares the submitted total against per-guest catalog
// pricing. Orphan package ids and mismatched totals are allowed through,
// they only get a warning in the log.
func (s *orderServiceImpl) checkPricing(ctx context.Context, order *model.Order) {
	if order.PackageID == nil || order.GuestCount <= 0 {
		return
	}

	pkg, err := s.packageRepo.FindByID(ctx, *order.PackageID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("pricing check skipped", "order_id", order.ID, "error", err)
		}
		return
	}

	expected := decimal.NewFromFloat(pkg.Price).Mul(decimal.NewFromInt(int64(order.GuestCount)))
	supplied := decimal.NewFromFloat(order.TotalPrice)
	if !expected.Equal(supplied) {
		slog.Warn("order total does not match catalog pricing",
			"order_id", order.ID,
			"package_id", pkg.ID,
			"supplied", supplied.StringFixed(2),
			"expected", expected.StringFixed(2),
		)
	}
}
