package service

import (
	"context"
	"strings"

	"github.com/tillworks/backdesk/internal/customer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	searchLimit        = 50
	recentEntriesLimit = 20
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) Search(ctx context.Context, req domain.SearchCustomersRequest) (domain.SearchCustomersResponse, error) {
	customers, err := s.repo.Search(ctx, s.db, strings.TrimSpace(req.Term), searchLimit)
	if err != nil {
		return domain.SearchCustomersResponse{}, err
	}
	return domain.SearchCustomersResponse{Customers: customers}, nil
}

func (s *Service) Get(ctx context.Context, req domain.GetCustomerRequest) (domain.GetCustomerResponse, error) {
	if req.ID <= 0 {
		return domain.GetCustomerResponse{}, domain.ErrInvalidID
	}

	customer, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.GetCustomerResponse{}, err
	}
	if customer == nil {
		return domain.GetCustomerResponse{}, domain.ErrNotFound
	}

	balance, err := s.repo.PointsBalance(ctx, s.db, customer.ID)
	if err != nil {
		return domain.GetCustomerResponse{}, err
	}

	entries, err := s.repo.RecentEntries(ctx, s.db, customer.ID, recentEntriesLimit)
	if err != nil {
		return domain.GetCustomerResponse{}, err
	}

	return domain.GetCustomerResponse{
		Customer:      *customer,
		PointsBalance: balance,
		RecentEntries: entries,
	}, nil
}
