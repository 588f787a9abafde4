package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rkjewellers/billing-api/internal/config"
	"github.com/rkjewellers/billing-api/internal/domain/repository"
	"github.com/rkjewellers/billing-api/pkg/apperror"
	"github.com/rkjewellers/billing-api/pkg/invoice"
	"github.com/rkjewellers/billing-api/pkg/lineitem"
)

// InvoiceService renders estimation bills for a customer's latest visit
type InvoiceService struct {
	customerRepo repository.CustomerRepository
	visitRepo    repository.VisitRepository
	renderer     invoice.Renderer
	shop         invoice.Shop
	logger       *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(customerRepo repository.CustomerRepository, visitRepo repository.VisitRepository, renderer invoice.Renderer, shopCfg *config.ShopConfig, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		customerRepo: customerRepo,
		visitRepo:    visitRepo,
		renderer:     renderer,
		shop: invoice.Shop{
			Name:      shopCfg.Name,
			BillTitle: shopCfg.BillTitle,
			Address:   shopCfg.Address,
			Contacts:  shopCfg.Contacts,
		},
		logger: logger,
	}
}

// GenerateInvoice assembles and renders the PDF bill for the customer's most
// recent visit, returning the attachment filename and the PDF bytes. A visit
// with malformed items still renders; only a missing customer, a missing
// visit or a renderer failure is an error.
func (s *InvoiceService) GenerateInvoice(ctx context.Context, customerID uint) (string, []byte, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return "", nil, apperror.NewStoreError(err)
	}
	if customer == nil {
		return "", nil, apperror.NewNotFoundError("Customer not found")
	}

	visit, err := s.visitRepo.LatestByCustomer(ctx, customerID)
	if err != nil {
		return "", nil, apperror.NewStoreError(err)
	}
	if visit == nil {
		return "", nil, apperror.NewNotFoundError("No purchases found")
	}

	doc := invoice.Build(invoice.Details{
		Shop:            s.shop,
		CustomerName:    customer.Name,
		CustomerContact: customer.Contact,
		Date:            visit.Date,
		Items:           lineitem.SplitItems(visit.PurchasedItems),
		PaidAmount:      visit.PaidAmount,
		DueAmount:       visit.DueAmount,
	})

	pdf, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error("invoice render failed",
			zap.Uint("customer_id", customerID),
			zap.Uint("visit_id", visit.ID),
			zap.Error(err))
		return "", nil, apperror.NewAppError(500, "Failed to render invoice")
	}

	filename := fmt.Sprintf("invoice_%s.pdf", customer.Name)
	return filename, pdf, nil
}
