package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/internal/service/tenants"
)

type fakeResolver struct {
	tenants map[string]*domain.Tenant
	err     error
}

func (f *fakeResolver) Resolve(_ context.Context, subdomain string) (*domain.Tenant, error) {
	if f.err != nil {
		return nil, f.err
	}
	if tenant, ok := f.tenants[subdomain]; ok {
		return tenant, nil
	}
	return nil, tenants.ErrTenantNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestTenantMiddleware(t *testing.T) {
	resolver := &fakeResolver{tenants: map[string]*domain.Tenant{
		"boom": {ID: 7, Subdomain: "boom", Status: domain.TenantActive},
	}}

	var seen *domain.Tenant
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := TenantFromContext(r.Context())
		require.True(t, ok)
		seen = tenant
		w.WriteHeader(http.StatusOK)
	})

	handler := TenantMiddleware(resolver, nopLogger{})(next)

	tests := []struct {
		name       string
		header     string
		resolveErr error
		wantStatus int
	}{
		{"known tenant", "boom", nil, http.StatusOK},
		{"case and whitespace normalized", "  BOOM ", nil, http.StatusOK},
		{"missing header", "", nil, http.StatusBadRequest},
		{"unknown tenant", "ghost", nil, http.StatusNotFound},
		{"inactive tenant", "boom", tenants.ErrTenantInactive, http.StatusForbidden},
		{"resolver failure", "boom", tenants.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			resolver.err = tt.resolveErr

			req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
			if tt.header != "" {
				req.Header.Set(TenantHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, int64(7), seen.ID)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestTenantFromContext_Missing(t *testing.T) {
	_, ok := TenantFromContext(context.Background())
	assert.False(t, ok)
}
