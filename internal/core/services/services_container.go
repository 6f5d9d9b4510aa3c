package services

import (
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and the
// document renderers, returning the container the handlers consume.
func NewServiceContainer(cfg *config.AppConfig, repos portsrepo.RepositoryProvider, pdfRenderer, xlsxRenderer portssvc.ReportRenderer) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	reportingSvc := NewReportingService(repos.PurchaseRepo, repos.ExpenseRepo, repos.SupplierRepo, repos.MaterialRepo, repos.TagRepo)

	return &portssvc.ServiceContainer{
		Material:    NewMaterialService(repos.MaterialRepo),
		Supplier:    NewSupplierService(repos.SupplierRepo),
		Purchase:    NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo),
		Expense:     NewExpenseService(repos.ExpenseRepo, repos.TagRepo),
		Tag:         NewTagService(repos.TagRepo),
		User:        userSvc,
		Token:       NewTokenService(cfg, userSvc),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Reporting:   reportingSvc,
		Export:      NewExportService(reportingSvc, pdfRenderer, xlsxRenderer),
	}
}
