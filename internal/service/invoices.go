package service

import (
	"context"

	"go.uber.org/zap"

	"clienthub/internal/model"
	"clienthub/internal/payments"
	"clienthub/internal/repository"
)

// InvoiceService produces the enriched invoice view: client documents flagged
// as invoices, each joined with the matching records from the two payment
// providers.
type InvoiceService interface {
	// Data lists the client's invoice documents and enriches each row with
	// its Eukapay invoice and Stripe payment. Provider lookups run per field:
	// one provider failing leaves that field nil and never touches the other
	// field or the rest of the rows.
	Data(ctx context.Context, clientID string) ([]model.InvoiceRow, error)
}

type invoiceService struct {
	documents repository.DocumentRepository
	providers *payments.Client
	log       *zap.Logger
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(documents repository.DocumentRepository, providers *payments.Client, log *zap.Logger) InvoiceService {
	return &invoiceService{documents: documents, providers: providers, log: log}
}

func (s *invoiceService) Data(ctx context.Context, clientID string) ([]model.InvoiceRow, error) {
	if clientID == "" {
		return nil, nil
	}
	docs, err := s.documents.ListByClient(ctx, clientID)
	if err != nil {
		s.log.Error("failed to list invoice documents", zap.String("clientId", clientID), zap.Error(err))
		return nil, nil
	}

	rows := make([]model.InvoiceRow, 0, len(docs))
	for _, d := range docs {
		if !d.Invoice {
			continue
		}
		row := model.InvoiceRow{
			ID:        d.ID,
			CreatedAt: d.CreatedAt,
			Title:     d.Title,
		}
		if d.EukapayID != "" {
			inv, err := s.providers.EukapayInvoice(ctx, d.EukapayID)
			if err != nil {
				s.log.Error("failed to fetch eukapay invoice",
					zap.String("documentId", d.ID), zap.String("eukapayId", d.EukapayID), zap.Error(err))
			} else {
				row.EukapayInvoice = inv
			}
		}
		if d.StripeID != "" {
			payment, err := s.providers.StripePayment(ctx, d.StripeID)
			if err != nil {
				s.log.Error("failed to fetch stripe payment",
					zap.String("documentId", d.ID), zap.String("stripeId", d.StripeID), zap.Error(err))
			} else {
				row.StripePayment = payment
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
