package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// purchaseService implements the PurchaseSvcFacade interface.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierReaderRepository
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierReaderRepository) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, principal domain.Principal) (*domain.Purchase, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("a purchase needs at least one line item: %w", apperrors.ErrValidation)
	}

	items := make([]domain.PurchaseItem, len(req.Items))
	for i, it := range req.Items {
		name := strings.TrimSpace(it.MaterialName)
		if name == "" {
			return nil, fmt.Errorf("line item %d has a blank material name: %w", i+1, apperrors.ErrValidation)
		}
		if it.Weight.IsNegative() || it.PricePerKg.IsNegative() || it.TotalPrice.IsNegative() {
			return nil, fmt.Errorf("line item %d has a negative figure: %w", i+1, apperrors.ErrValidation)
		}
		unit := it.Unit
		if unit == "" {
			unit = domain.DefaultUnit
		}
		items[i] = domain.PurchaseItem{
			MaterialID:   it.MaterialID,
			MaterialName: name,
			Weight:       it.Weight,
			PricePerKg:   it.PricePerKg,
			TotalPrice:   it.TotalPrice,
			Unit:         unit,
		}
	}

	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		Items:      items,
		GrandTotal: req.GrandTotal,
		CreatedBy:  principal.Username,
		CreatedAt:  time.Now(),
	}

	// Snapshot the supplier's name and phone so later renames or deletion
	// never rewrite the ledger.
	if req.SupplierID != nil && *req.SupplierID != "" {
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("supplier %s does not exist: %w", *req.SupplierID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to resolve supplier: %w", err)
		}
		purchase.SupplierID = req.SupplierID
		purchase.SupplierName = &supplier.Name
		purchase.SupplierPhone = supplier.Phone
	}

	// The client's grand total wins (negotiated price), but a mismatch with
	// the line item sum is worth a trace in the logs.
	if itemsTotal := purchase.ItemsTotal(); !itemsTotal.Equal(purchase.GrandTotal) {
		s.LogWarn(ctx, "Purchase grand total differs from line item sum",
			slog.String("purchase_id", purchase.PurchaseID),
			slog.String("grand_total", purchase.GrandTotal.String()),
			slog.String("items_total", itemsTotal.String()))
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to record purchase")
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.Int("items", len(purchase.Items)),
		slog.String("grand_total", purchase.GrandTotal.String()))
	return &purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}
