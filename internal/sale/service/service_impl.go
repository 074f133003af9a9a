package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	returnsdomain "github.com/tillworks/backdesk/internal/returns/domain"
	"github.com/tillworks/backdesk/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const searchLimit = 50

const dateOnlyLayout = "2006-01-02"

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	ReturnsRepo returnsdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	returnsRepo returnsdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("sale.service"),
		repo:        p.Repo,
		returnsRepo: p.ReturnsRepo,
	}
}

func (s *Service) LookupReturnable(ctx context.Context, req domain.LookupReturnableRequest) (domain.LookupReturnableResponse, error) {
	if req.SaleID <= 0 {
		return domain.LookupReturnableResponse{}, domain.ErrInvalidSaleID
	}

	sale, err := s.repo.FindByID(ctx, s.db, req.SaleID)
	if err != nil {
		return domain.LookupReturnableResponse{}, err
	}
	if sale == nil {
		return domain.LookupReturnableResponse{}, domain.ErrSaleNotFound
	}

	lines, err := s.repo.FindLineItems(ctx, s.db, sale.ID, false)
	if err != nil {
		return domain.LookupReturnableResponse{}, err
	}

	returned, err := s.returnsRepo.ReturnedQuantityByLine(ctx, s.db, sale.ID)
	if err != nil {
		return domain.LookupReturnableResponse{}, err
	}

	items := make([]domain.ReturnableItem, 0, len(lines))
	for _, line := range lines {
		already := returned[line.ID]
		items = append(items, domain.ReturnableItem{
			SaleLineItemID:     line.ID,
			ProductName:        line.ProductName,
			SKU:                line.SKU,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			AlreadyReturned:    already,
			AvailableForReturn: line.Quantity - already,
		})
	}

	return domain.LookupReturnableResponse{
		Sale:          *sale,
		ReceiptNumber: domain.ReceiptNumber(sale.ID),
		Items:         items,
	}, nil
}

func (s *Service) Search(ctx context.Context, req domain.SearchSalesRequest) (domain.SearchSalesResponse, error) {
	filter := domain.SearchFilter{Limit: searchLimit}

	if term := strings.TrimSpace(req.Term); term != "" {
		filter.Term = term
		if id, ok := domain.ParseReceiptNumber(term); ok {
			filter.TermSaleID = &id
		}
	}
	if receipt := strings.TrimSpace(req.ReceiptNumber); receipt != "" {
		// Malformed receipt numbers fall out of the filter instead of
		// failing the whole search.
		if id, ok := domain.ParseReceiptNumber(receipt); ok {
			filter.SaleID = &id
		}
	}
	filter.DateFrom = parseFilterTime(req.DateFrom, false)
	filter.DateTo = parseFilterTime(req.DateTo, true)

	sales, err := s.repo.Search(ctx, s.db, filter)
	if err != nil {
		return domain.SearchSalesResponse{}, err
	}

	ids := make([]int64, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.ID)
	}
	totals, err := s.returnsRepo.TotalReturnedForSales(ctx, s.db, ids)
	if err != nil {
		return domain.SearchSalesResponse{}, err
	}

	summaries := make([]domain.SaleSummary, 0, len(sales))
	for _, sale := range sales {
		total, ok := totals[sale.ID]
		if !ok {
			total = decimal.Zero
		}
		summary := domain.SaleSummary{
			ID:            sale.ID,
			ReceiptNumber: domain.ReceiptNumber(sale.ID),
			CreatedAt:     sale.CreatedAt,
			CustomerName:  sale.CustomerName,
			CustomerPhone: sale.CustomerPhone,
			CustomerEmail: sale.CustomerEmail,
			FinalAmount:   sale.FinalAmount,
			TotalReturned: total,
		}
		if req.MaskCustomer {
			summary.CustomerPhone = maskTail(summary.CustomerPhone)
			summary.CustomerEmail = maskEmail(summary.CustomerEmail)
		}
		summaries = append(summaries, summary)
	}

	return domain.SearchSalesResponse{Sales: summaries}, nil
}

// parseFilterTime accepts RFC3339 or date-only values; anything else is
// treated as an absent filter.
func parseFilterTime(value string, endOfDay bool) *time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return &parsed
	}
	if parsed, err := time.Parse(dateOnlyLayout, trimmed); err == nil {
		if endOfDay {
			parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
		} else {
			parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		}
		return &parsed
	}
	return nil
}

func maskTail(value string) string {
	if len(value) <= 4 {
		return value
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

func maskEmail(value string) string {
	at := strings.Index(value, "@")
	if at <= 1 {
		return value
	}
	return value[:1] + strings.Repeat("*", at-1) + value[at:]
}
