package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/tillworks/backdesk/internal/returns/domain"
	saledomain "github.com/tillworks/backdesk/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	SaleRepo saledomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	saleRepo saledomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("returns.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		saleRepo: p.SaleRepo,
	}
}

// Submit validates the candidate return and commits it in one transaction.
// Availability is recomputed against locked sale lines inside the same
// transaction as the inserts, so two concurrent submissions against one sale
// cannot jointly over-return a line.
//
// Sale existence is checked before anything else about the request, so a
// submission against a missing sale reports not-found even when its header
// is also malformed.
func (s *Service) Submit(ctx context.Context, req domain.SubmitReturnRequest) (domain.SubmitReturnResponse, error) {
	if req.SaleID <= 0 {
		return domain.SubmitReturnResponse{}, saledomain.ErrInvalidSaleID
	}

	var resp domain.SubmitReturnResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := s.saleRepo.FindByID(ctx, tx, req.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return saledomain.ErrSaleNotFound
		}

		if err := s.validateHeader(req); err != nil {
			return err
		}

		lines, err := s.saleRepo.FindLineItems(ctx, tx, sale.ID, true)
		if err != nil {
			return err
		}
		returned, err := s.repo.ReturnedQuantityByLine(ctx, tx, sale.ID)
		if err != nil {
			return err
		}

		available := make(map[int64]int64, len(lines))
		unitPrice := make(map[int64]decimal.Decimal, len(lines))
		for _, line := range lines {
			available[line.ID] = line.Quantity - returned[line.ID]
			unitPrice[line.ID] = line.UnitPrice
		}

		now := time.Now().UTC()
		record := domain.ReturnRecord{
			ID:           s.genID.Generate(),
			SaleID:       sale.ID,
			ReturnType:   req.ReturnType,
			RefundMethod: req.RefundMethod,
			Reason:       strings.TrimSpace(req.Reason),
			Notes:        strings.TrimSpace(req.Notes),
			CreatedBy:    req.ActingUserID,
			CreatedAt:    now,
		}
		record.ReturnNumber = fmt.Sprintf("RTN-%d", record.ID)

		// Every item must belong to the sale before any quantity is judged.
		for i, item := range req.Items {
			if _, ok := unitPrice[item.SaleLineItemID]; !ok {
				return domain.NewItemError(i, item.SaleLineItemID, domain.ErrLineNotInSale)
			}
		}

		total := decimal.Zero
		items := make([]domain.ReturnLineItem, 0, len(req.Items))
		for i, item := range req.Items {
			price := unitPrice[item.SaleLineItemID]
			if item.Quantity <= 0 {
				return domain.NewItemError(i, item.SaleLineItemID, domain.ErrInvalidQuantity)
			}
			if !domain.ValidCondition(item.Condition) {
				return domain.NewItemError(i, item.SaleLineItemID, domain.ErrInvalidCondition)
			}
			if item.Quantity > available[item.SaleLineItemID] {
				return domain.NewItemError(i, item.SaleLineItemID, domain.ErrQuantityUnavailable)
			}
			// Guard against the same line appearing twice in one request.
			available[item.SaleLineItemID] -= item.Quantity

			amount := price.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
			total = total.Add(amount)

			items = append(items, domain.ReturnLineItem{
				ID:             s.genID.Generate(),
				ReturnID:       record.ID,
				SaleLineItemID: item.SaleLineItemID,
				Quantity:       item.Quantity,
				Condition:      item.Condition,
				ConditionNotes: strings.TrimSpace(item.ConditionNotes),
				Amount:         amount,
				CreatedAt:      now,
			})
		}

		record.TotalAmount = total
		if err := s.repo.InsertRecord(ctx, tx, &record); err != nil {
			return err
		}
		if err := s.repo.InsertLineItems(ctx, tx, items); err != nil {
			return err
		}

		resp = domain.SubmitReturnResponse{
			Record:      record,
			Lines:       items,
			TotalAmount: total,
		}
		return nil
	})
	if err != nil {
		return domain.SubmitReturnResponse{}, err
	}

	s.log.Info("return committed",
		zap.Int64("sale_id", req.SaleID),
		zap.String("return_number", resp.Record.ReturnNumber),
		zap.String("total_amount", resp.TotalAmount.StringFixed(2)),
		zap.Int("line_count", len(resp.Lines)),
	)

	return resp, nil
}

func (s *Service) validateHeader(req domain.SubmitReturnRequest) error {
	switch req.ReturnType {
	case domain.ReturnTypeRefund, domain.ReturnTypeExchange:
	default:
		return domain.ErrInvalidReturnType
	}
	if !domain.MethodAllowed(req.ReturnType, req.RefundMethod) {
		return domain.ErrInvalidRefundMethod
	}
	if strings.TrimSpace(req.Reason) == "" {
		return domain.ErrInvalidReason
	}
	if req.ActingUserID <= 0 {
		return domain.ErrInvalidActingUser
	}
	if len(req.Items) == 0 {
		return domain.ErrNoItemsSelected
	}
	return nil
}

func (s *Service) Get(ctx context.Context, req domain.GetReturnRequest) (domain.GetReturnResponse, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.GetReturnResponse{}, err
	}

	record, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.GetReturnResponse{}, err
	}
	if record == nil {
		return domain.GetReturnResponse{}, domain.ErrReturnNotFound
	}

	lines, err := s.repo.FindLineItems(ctx, s.db, record.ID)
	if err != nil {
		return domain.GetReturnResponse{}, err
	}

	return domain.GetReturnResponse{
		Record: *record,
		Lines:  lines,
	}, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidReturnID
	}
	return id, nil
}
