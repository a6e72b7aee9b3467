package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helppro/internal/domain/entity"
	mocksusecase "helppro/internal/mocks/usecase"
	"helppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// csvUploadRequest builds a multipart request carrying the given content as
// the uploaded file.
func csvUploadRequest(t *testing.T, target, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestVendorHandler_Register_Created(t *testing.T) {
	lat, lon := 45.4642, 9.19
	uc := mocksusecase.NewMockVendorUsecase(t)
	uc.EXPECT().RegisterVendor(mock.Anything, &usecase.RegisterVendorInput{
		AccountID:   7,
		CompanyName: "Salone Verdi",
		Category:    "haircut",
		Country:     "Italy",
		City:        "Milano",
		Postcode:    "20121",
		Address:     "Via Roma 1",
	}).Return(&entity.VendorProfile{
		ID:        3,
		AccountID: 7,
		VendorFields: entity.VendorFields{
			CompanyName: "Salone Verdi",
			Category:    entity.CategoryHaircut,
			Country:     "Italy",
			City:        "Milano",
			Postcode:    "20121",
			Address:     "Via Roma 1",
		},
		Location: &entity.GeoPoint{Latitude: lat, Longitude: lon},
	}, nil)

	e := newTestEcho(t)
	e.POST("/vendors", NewVendorHandler(uc, testLogger()).Register)

	body := `{"account_id":7,"company_name":"Salone Verdi","category":"haircut",` +
		`"country":"Italy","city":"Milano","postcode":"20121","address":"Via Roma 1"}`
	req := httptest.NewRequest(http.MethodPost, "/vendors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"latitude":45.4642`)
	assert.Contains(t, rec.Body.String(), `"longitude":9.19`)
}

func TestVendorHandler_Register_MissingFields(t *testing.T) {
	uc := mocksusecase.NewMockVendorUsecase(t)

	e := newTestEcho(t)
	e.POST("/vendors", NewVendorHandler(uc, testLogger()).Register)

	req := httptest.NewRequest(http.MethodPost, "/vendors", strings.NewReader(`{"account_id":7}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVendorHandler_BulkUploadAccounts_ParsesRows(t *testing.T) {
	var captured []map[string]string
	uc := mocksusecase.NewMockVendorUsecase(t)
	uc.EXPECT().ImportAccounts(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rows []map[string]string) (*usecase.BulkResult, error) {
			captured = rows
			return &usecase.BulkResult{Created: []int64{1, 2}}, nil
		})

	e := newTestEcho(t)
	e.POST("/vendors/accounts/bulk-upload", NewVendorHandler(uc, testLogger()).BulkUploadAccounts)

	csv := "email,password\na@example.com,pw1\nb@example.com,pw2\n"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, csvUploadRequest(t, "/vendors/accounts/bulk-upload", "accounts.csv", csv))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, captured, 2)
	assert.Equal(t, "a@example.com", captured[0]["email"])
	assert.Equal(t, "pw2", captured[1]["password"])
	assert.Contains(t, rec.Body.String(), `"created":[1,2]`)
}

func TestVendorHandler_BulkUploadAccounts_PartialIsMultiStatus(t *testing.T) {
	uc := mocksusecase.NewMockVendorUsecase(t)
	uc.EXPECT().ImportAccounts(mock.Anything, mock.Anything).Return(&usecase.BulkResult{
		Created: []int64{1},
		Errors:  []string{"Riga 2: validation failed"},
	}, nil)

	e := newTestEcho(t)
	e.POST("/vendors/accounts/bulk-upload", NewVendorHandler(uc, testLogger()).BulkUploadAccounts)

	csv := "email,password\na@example.com,pw1\nbroken,\n"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, csvUploadRequest(t, "/vendors/accounts/bulk-upload", "accounts.csv", csv))

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), "Riga 2:")
}

func TestVendorHandler_BulkUpload_RejectsNonCSV(t *testing.T) {
	uc := mocksusecase.NewMockVendorUsecase(t)

	e := newTestEcho(t)
	e.POST("/vendors/bulk-upload", NewVendorHandler(uc, testLogger()).BulkUploadProfiles)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, csvUploadRequest(t, "/vendors/bulk-upload", "profiles.xlsx", "not,a,csv"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVendorHandler_BulkUpload_MissingFile(t *testing.T) {
	uc := mocksusecase.NewMockVendorUsecase(t)

	e := newTestEcho(t)
	e.POST("/vendors/bulk-upload", NewVendorHandler(uc, testLogger()).BulkUploadProfiles)

	req := httptest.NewRequest(http.MethodPost, "/vendors/bulk-upload", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVendorHandler_BulkUploadProfiles_ShortRowsOmitKeys(t *testing.T) {
	var captured []map[string]string
	uc := mocksusecase.NewMockVendorUsecase(t)
	uc.EXPECT().ImportProfiles(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rows []map[string]string) (*usecase.BulkResult, error) {
			captured = rows
			return &usecase.BulkResult{Created: []int64{9}}, nil
		})

	e := newTestEcho(t)
	e.POST("/vendors/bulk-upload", NewVendorHandler(uc, testLogger()).BulkUploadProfiles)

	csv := "account_id,company_name\n7\n"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, csvUploadRequest(t, "/vendors/bulk-upload", "profiles.csv", csv))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, captured, 1)
	assert.Equal(t, "7", captured[0]["account_id"])
	_, ok := captured[0]["company_name"]
	assert.False(t, ok)
}
