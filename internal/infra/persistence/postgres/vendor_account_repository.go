package postgres

import (
	"context"

	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/repository"
	"helppro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorAccountRepository implements the domain.VendorAccountRepository interface using GORM.
type vendorAccountRepository struct {
	db *gorm.DB
}

// NewVendorAccountRepository is the constructor for vendorAccountRepository.
func NewVendorAccountRepository(db *gorm.DB) repository.VendorAccountRepository {
	return &vendorAccountRepository{db: db}
}

// Create persists a new vendor account entity to the database.
func (repo *vendorAccountRepository) Create(ctx context.Context, account *entity.VendorAccount) error {
	accountM := fromVendorAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("vendor email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor account")
	}

	account.ID = accountM.ID

	return nil
}

// FindByID retrieves a single vendor account by its unique ID.
func (repo *vendorAccountRepository) FindByID(ctx context.Context, id int64) (*entity.VendorAccount, error) {
	var accountM model.VendorAccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor account by id")
	}

	return toVendorAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single vendor account by its email address.
func (repo *vendorAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.VendorAccount, error) {
	var accountM model.VendorAccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor account by email")
	}

	return toVendorAccountDomain(&accountM), nil
}

// toVendorAccountDomain converts a GORM VendorAccountModel to a domain VendorAccount entity.
func toVendorAccountDomain(data *model.VendorAccountModel) *entity.VendorAccount {
	if data == nil {
		return nil
	}

	return &entity.VendorAccount{
		ID:             data.ID,
		Email:          data.Email,
		HashedPassword: data.HashedPassword,
	}
}

// fromVendorAccountDomain converts a domain VendorAccount entity to a GORM VendorAccountModel.
func fromVendorAccountDomain(data *entity.VendorAccount) *model.VendorAccountModel {
	if data == nil {
		return nil
	}

	return &model.VendorAccountModel{
		ID:             data.ID,
		Email:          data.Email,
		HashedPassword: data.HashedPassword,
	}
}
