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

// metersPerKilometer converts the API's radius unit to ST_DWithin's.
const metersPerKilometer = 1000.0

// vendorRepository implements the domain.VendorRepository interface using GORM
// with PostGIS for the geospatial queries.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// CreateProfile persists a new vendor profile entity to the database.
func (repo *vendorRepository) CreateProfile(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := fromVendorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateVendorProfile.WrapMessage("account already has a profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVendorAccountNotFound.WrapMessage("account does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	profile.ID = profileM.ID

	return nil
}

// FindProfileByAccountID retrieves the profile linked to a vendor account.
func (repo *vendorRepository) FindProfileByAccountID(ctx context.Context, accountID int64) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile by account id")
	}

	return toVendorProfileDomain(&profileM), nil
}

// SearchByText returns profiles matching the non-empty text filter fields.
// Each field is a case-insensitive substring match and all given fields must hold.
func (repo *vendorRepository) SearchByText(ctx context.Context, filter repository.TextSearchFilter) ([]*entity.VendorProfile, error) {
	query := repo.db.WithContext(ctx).Model(&model.VendorProfileModel{})

	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Postcode != "" {
		query = query.Where("postcode ILIKE ?", "%"+filter.Postcode+"%")
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", "%"+filter.Address+"%")
	}

	var profiles []*model.VendorProfileModel
	if err := query.Order("id").Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search vendors by text")
	}

	return toVendorProfileDomainSlice(profiles), nil
}

// SearchByRadius returns profiles whose location lies within the geodesic
// circle around the filter's center. ST_DWithin over geography measures real
// meters rather than degrees, and profiles without a location never match.
func (repo *vendorRepository) SearchByRadius(ctx context.Context, filter repository.RadiusSearchFilter) ([]*entity.VendorProfile, error) {
	var profiles []*model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("location IS NOT NULL").
		// ST_MakePoint takes longitude first.
		Where(
			"ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			filter.Longitude, filter.Latitude, filter.RadiusKm*metersPerKilometer,
		).
		Order("id").
		Find(&profiles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search vendors by radius")
	}

	return toVendorProfileDomainSlice(profiles), nil
}

// toVendorProfileDomain converts a GORM VendorProfileModel to a domain VendorProfile entity.
func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	profile := &entity.VendorProfile{
		ID:        data.ID,
		AccountID: data.AccountID,
		VendorFields: entity.VendorFields{
			CompanyName: data.CompanyName,
			Category:    entity.Category(data.Category),
			Country:     data.Country,
			City:        data.City,
			Postcode:    data.Postcode,
			Address:     data.Address,
		},
	}
	if data.Location != nil {
		profile.Location = &entity.GeoPoint{
			Latitude:  data.Location.Latitude(),
			Longitude: data.Location.Longitude(),
		}
	}

	return profile
}

// fromVendorProfileDomain converts a domain VendorProfile entity to a GORM VendorProfileModel.
func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.VendorProfileModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		CompanyName: data.CompanyName,
		Category:    string(data.Category),
		Country:     data.Country,
		City:        data.City,
		Postcode:    data.Postcode,
		Address:     data.Address,
	}
	if data.Location != nil {
		profileM.Location = model.NewGeoPoint(data.Location.Latitude, data.Location.Longitude)
	}

	return profileM
}

func toVendorProfileDomainSlice(data []*model.VendorProfileModel) []*entity.VendorProfile {
	profiles := make([]*entity.VendorProfile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toVendorProfileDomain(profileM))
	}

	return profiles
}
