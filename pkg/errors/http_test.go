package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "table-checkbox-sync/pkg/errors"
)

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
	}{
		{"not found", 404, http.StatusNotFound},
		{"conflict", 409, http.StatusConflict},
		{"domain code", 110001, http.StatusBadRequest},
		{"below range", 200, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := pkgErrors.NewHTTPError(tt.code, "msg")
			if e.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", e.StatusCode, tt.wantStatus)
			}
			if e.Error() != "msg" {
				t.Errorf("Error() = %q", e.Error())
			}
		})
	}
}

func TestHTTPErrorAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", pkgErrors.NewHTTPError(404, "window not found"))
	var he *pkgErrors.HTTPError
	if !errors.As(err, &he) || he.Code != 404 {
		t.Fatalf("errors.As = %v, %+v", errors.As(err, &he), he)
	}
}
