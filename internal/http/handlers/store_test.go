package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func uploadContext(t *testing.T, method, path string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("store_id", uuid.New())
	return c
}

// When the S3 environment is missing the services container leaves storage
// nil and the upload routes must answer 503 instead of panicking.
func TestUploadRoutesWithoutStorage(t *testing.T) {
	storeHandler := NewStoreHandler(nil, nil, nil)
	itemHandler := NewMenuItemHandler(nil, nil)

	tests := []struct {
		name    string
		handler func(echo.Context) error
		path    string
	}{
		{"store logo", storeHandler.UploadLogo, "/store/logo"},
		{"store qrcode", storeHandler.GenerateQRCode, "/store/qrcode"},
		{"item image", itemHandler.UploadImage, "/items/1/image"},
	}

	for _, test := range tests {
		c := uploadContext(t, http.MethodPost, test.path)
		if err := test.handler(c); err != nil {
			t.Errorf("%s: handler returned error: %v", test.name, err)
			continue
		}
		if status := c.Response().Status; status != http.StatusServiceUnavailable {
			t.Errorf("%s: status = %d, expected %d", test.name, status, http.StatusServiceUnavailable)
		}
	}
}
