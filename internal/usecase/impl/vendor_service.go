package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "helppro/internal/delivery/context"
	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/repository"
	"helppro/internal/domain/service"
	"helppro/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager   repository.TransactionManager
	accountRepo repository.VendorAccountRepository
	vendorRepo  repository.VendorRepository
	hasher      service.PasswordHasher
	geocoder    service.Geocoder
	validate    *validator.Validate
	logger      *slog.Logger
}

// VendorServiceParams holds dependencies for vendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.VendorAccountRepository
	VendorRepo  repository.VendorRepository
	Hasher      service.PasswordHasher
	Geocoder    service.Geocoder
	Logger      *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		vendorRepo:  params.VendorRepo,
		hasher:      params.Hasher,
		geocoder:    params.Geocoder,
		validate:    validator.New(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterVendor geocodes the submitted address and persists the profile.
// Geocoding happens before, and never inside, the store transaction; a
// geocoding failure therefore aborts with nothing written.
func (srv *vendorService) RegisterVendor(ctx context.Context, input *usecase.RegisterVendorInput) (*entity.VendorProfile, error) {
	srv.log(ctx).Info("Starting vendor registration", slog.Int64("accountID", input.AccountID))

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown category %q", input.Category))
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrVendorAccountNotFound) {
			return nil, domainerrors.ErrVendorAccountNotFound.WrapMessage("account does not exist")
		}

		return nil, errors.Wrap(err, "failed to load vendor account")
	}

	if _, err := srv.vendorRepo.FindProfileByAccountID(ctx, input.AccountID); err == nil {
		return nil, domainerrors.ErrDuplicateVendorProfile.WrapMessage("account already has a profile")
	} else if !errors.Is(err, repository.ErrVendorProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check existing vendor profile")
	}

	location, err := srv.geocoder.Resolve(ctx, input.Country, input.City, input.Postcode, input.Address)
	if err != nil {
		srv.log(ctx).Warn("Geocoding failed during vendor registration",
			slog.Int64("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	profile := &entity.VendorProfile{
		AccountID: input.AccountID,
		VendorFields: entity.VendorFields{
			CompanyName: input.CompanyName,
			Category:    category,
			Country:     input.Country,
			City:        input.City,
			Postcode:    input.Postcode,
			Address:     input.Address,
		},
		Location: location,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewVendorRepository().CreateProfile(ctx, profile)
	})
	if err != nil {
		srv.log(ctx).Warn("Vendor registration failed",
			slog.Int64("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Vendor registered", slog.Int64("profileID", profile.ID))

	return profile, nil
}

// ImportAccounts creates vendor accounts from CSV rows. Each row commits
// independently; one row's failure is recorded and the next row proceeds.
func (srv *vendorService) ImportAccounts(ctx context.Context, rows []map[string]string) (*usecase.BulkResult, error) {
	result := &usecase.BulkResult{}

	for i, row := range rows {
		id, err := srv.importAccountRow(ctx, row)
		if err != nil {
			result.Errors = append(result.Errors, rowError(i+1, err))

			continue
		}
		result.Created = append(result.Created, id)
	}

	srv.log(ctx).Info("Account import finished",
		slog.Int("created", len(result.Created)), slog.Int("failed", len(result.Errors)))

	return result, nil
}

func (srv *vendorService) importAccountRow(ctx context.Context, row map[string]string) (int64, error) {
	email := strings.TrimSpace(row["email"])
	password := row["password"]

	if email == "" || password == "" {
		return 0, errors.New("email and password are required")
	}
	if err := srv.validate.Var(email, "email"); err != nil {
		return 0, errors.Errorf("invalid email %q", email)
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return 0, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.VendorAccount{
		Email:          email,
		HashedPassword: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewVendorAccountRepository().Create(ctx, account)
	})
	if err != nil {
		return 0, err
	}

	return account.ID, nil
}

// ImportProfiles creates vendor profiles from CSV rows, geocoding each row's
// address. Row independence and error reporting follow ImportAccounts.
func (srv *vendorService) ImportProfiles(ctx context.Context, rows []map[string]string) (*usecase.BulkResult, error) {
	result := &usecase.BulkResult{}

	for i, row := range rows {
		id, err := srv.importProfileRow(ctx, row)
		if err != nil {
			result.Errors = append(result.Errors, rowError(i+1, err))

			continue
		}
		result.Created = append(result.Created, id)
	}

	srv.log(ctx).Info("Profile import finished",
		slog.Int("created", len(result.Created)), slog.Int("failed", len(result.Errors)))

	return result, nil
}

func (srv *vendorService) importProfileRow(ctx context.Context, row map[string]string) (int64, error) {
	accountID, err := strconv.ParseInt(strings.TrimSpace(row["account_id"]), 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid account_id %q", row["account_id"])
	}

	input := &usecase.RegisterVendorInput{
		AccountID:   accountID,
		CompanyName: strings.TrimSpace(row["company_name"]),
		Category:    strings.TrimSpace(row["category"]),
		Country:     strings.TrimSpace(row["country"]),
		City:        strings.TrimSpace(row["city"]),
		Postcode:    strings.TrimSpace(row["postcode"]),
		Address:     strings.TrimSpace(row["address"]),
	}
	if input.CompanyName == "" || input.Country == "" || input.City == "" ||
		input.Postcode == "" || input.Address == "" {
		return 0, errors.New("company_name, country, city, postcode and address are required")
	}

	profile, err := srv.RegisterVendor(ctx, input)
	if err != nil {
		return 0, err
	}

	return profile.ID, nil
}

// rowError formats a per-row failure with its 1-based input position. The
// Italian prefix is part of the established API contract.
func rowError(rowNum int, err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message = fmt.Sprintf("%s (%s)", message, details)
		}

		return fmt.Sprintf("Riga %d: %s", rowNum, message)
	}

	return fmt.Sprintf("Riga %d: %s", rowNum, err.Error())
}
