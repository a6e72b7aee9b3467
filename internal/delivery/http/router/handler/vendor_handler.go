package handler

import (
	"encoding/csv"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"helppro/internal/delivery/http/response"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler holds dependencies for vendor account and profile handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerVendorRequest struct {
	AccountID   int64  `json:"account_id" validate:"required,gt=0"`
	CompanyName string `json:"company_name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Postcode    string `json:"postcode" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// Register handles the single vendor profile registration request.
func (h *VendorHandler) Register(c echo.Context) error {
	var req registerVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.RegisterVendor(c.Request().Context(), &usecase.RegisterVendorInput{
		AccountID:   req.AccountID,
		CompanyName: req.CompanyName,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Postcode:    req.Postcode,
		Address:     req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVendorResponse(profile), "Vendor registered successfully")
}

// BulkUploadAccounts handles the CSV upload that creates vendor accounts.
func (h *VendorHandler) BulkUploadAccounts(c echo.Context) error {
	rows, err := readCSVRows(c)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ImportAccounts(c.Request().Context(), rows)
	if err != nil {
		return errors.WithStack(err)
	}

	return bulkUploadResponse(c, result, "Account import completed")
}

// BulkUploadProfiles handles the CSV upload that creates vendor profiles.
func (h *VendorHandler) BulkUploadProfiles(c echo.Context) error {
	rows, err := readCSVRows(c)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ImportProfiles(c.Request().Context(), rows)
	if err != nil {
		return errors.WithStack(err)
	}

	return bulkUploadResponse(c, result, "Profile import completed")
}

// bulkUploadResponse renders an import outcome: 201 when every row landed,
// 207 when some rows were rejected.
func bulkUploadResponse(c echo.Context, result *usecase.BulkResult, message string) error {
	statusCode := http.StatusCreated
	if result.Partial() {
		statusCode = http.StatusMultiStatus
	}

	return response.Success(c, statusCode, &BulkUploadResponse{
		Created: result.Created,
		Errors:  result.Errors,
	}, message)
}

// readCSVRows pulls the uploaded file out of the multipart form and decodes
// it into one map per data row, keyed by the header line. Rows shorter than
// the header simply omit the trailing keys.
func readCSVRows(c echo.Context) ([]map[string]string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a multipart field named file is required")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the uploaded file must be a CSV")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("failed to open uploaded file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the CSV file is empty or unreadable")
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("malformed CSV: " + err.Error())
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
