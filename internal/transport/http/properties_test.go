package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hearthstay/api/internal/domain"
	"github.com/julienschmidt/httprouter"
)

func propertyRouter(svc PropertyReader) http.Handler {
	router := httprouter.New()
	router.GET("/api/properties", HandleListProperties(svc))
	router.GET("/api/properties/:id", HandleGetProperty(svc))
	return router
}

func TestHandleListProperties(t *testing.T) {
	t.Parallel()

	summaries := []domain.PropertySummary{
		{ID: 1, Name: "Modern Apartment in City Center", Location: "London, UK", PricePerNight: 120, Host: "Alice Johnson", FavouriteCount: 2, Images: []string{"https://example.com/images/modern_apartment_1.jpg"}},
	}

	tests := []struct {
		name           string
		target         string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
		expectedFilter *domain.PropertyFilter
	}{
		{
			name:           "plain listing",
			target:         "/api/properties",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"property_name":"Modern Apartment in City Center"`,
		},
		{
			name:           "filters are forwarded",
			target:         "/api/properties?host=3&minprice=50&maxprice=200&sort=price_per_night&order=desc",
			expectedStatus: http.StatusOK,
			expectedFilter: &domain.PropertyFilter{Sort: "price_per_night", Order: "desc"},
		},
		{
			name:           "non-numeric host filter",
			target:         "/api/properties?host=abc",
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"msg":"Bad request"`,
		},
		{
			name:           "non-numeric price filter",
			target:         "/api/properties?minprice=cheap",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown sort column",
			target:         "/api/properties?sort=surname",
			serviceErr:     domain.ErrInvalidSort,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"msg":"Invalid sorting criteria"`,
		},
		{
			name:           "host filter for a missing user",
			target:         "/api/properties?host=100000",
			serviceErr:     domain.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: `"msg":"User does not exist"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubPropertyService{summaries: summaries, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			propertyRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
			if tt.expectedFilter != nil {
				got := svc.lastFilter
				if got.HostID == nil || *got.HostID != 3 {
					t.Fatalf("expected host filter 3, got %+v", got.HostID)
				}
				if got.MinPrice == nil || *got.MinPrice != 50 {
					t.Fatalf("expected min price 50, got %+v", got.MinPrice)
				}
				if got.MaxPrice == nil || *got.MaxPrice != 200 {
					t.Fatalf("expected max price 200, got %+v", got.MaxPrice)
				}
				if got.Sort != tt.expectedFilter.Sort || got.Order != tt.expectedFilter.Order {
					t.Fatalf("expected sort %q/%q, got %q/%q", tt.expectedFilter.Sort, tt.expectedFilter.Order, got.Sort, got.Order)
				}
			}
		})
	}
}

func TestHandleGetProperty(t *testing.T) {
	t.Parallel()

	favourited := true
	detail := domain.PropertyDetail{
		ID: 1, Name: "Modern Apartment in City Center", Location: "London, UK",
		PricePerNight: 120, Description: "Bright two-bed with a balcony.",
		HostID: 3, Host: "Alice Johnson", FavouriteCount: 2, AverageRating: 4.5,
		Images: []string{"https://example.com/images/modern_apartment_1.jpg"},
	}

	t.Run("anonymous request omits favourited", func(t *testing.T) {
		t.Parallel()
		svc := &stubPropertyService{detail: detail}
		req := httptest.NewRequest(http.MethodGet, "/api/properties/1", nil)
		rec := httptest.NewRecorder()

		propertyRouter(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), `"favourited"`) {
			t.Fatalf("expected no favourited field, got %q", rec.Body.String())
		}
		if svc.lastUserID != nil {
			t.Fatalf("expected no user id forwarded, got %d", *svc.lastUserID)
		}
	})

	t.Run("user_id query reports favourited", func(t *testing.T) {
		t.Parallel()
		withFlag := detail
		withFlag.Favourited = &favourited
		svc := &stubPropertyService{detail: withFlag}
		req := httptest.NewRequest(http.MethodGet, "/api/properties/1?user_id=2", nil)
		rec := httptest.NewRecorder()

		propertyRouter(svc).ServeHTTP(rec, req)

		if !strings.Contains(rec.Body.String(), `"favourited":true`) {
			t.Fatalf("expected favourited flag, got %q", rec.Body.String())
		}
		if svc.lastUserID == nil || *svc.lastUserID != 2 {
			t.Fatalf("expected user id 2 forwarded, got %+v", svc.lastUserID)
		}
	})

	t.Run("missing property", func(t *testing.T) {
		t.Parallel()
		svc := &stubPropertyService{err: domain.ErrPropertyNotFound}
		req := httptest.NewRequest(http.MethodGet, "/api/properties/100000", nil)
		rec := httptest.NewRecorder()

		propertyRouter(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"msg":"Property does not exist"`) {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		t.Parallel()
		svc := &stubPropertyService{}
		req := httptest.NewRequest(http.MethodGet, "/api/properties/invalid", nil)
		rec := httptest.NewRecorder()

		propertyRouter(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

type stubPropertyService struct {
	summaries  []domain.PropertySummary
	detail     domain.PropertyDetail
	err        error
	lastFilter domain.PropertyFilter
	lastUserID *int64
}

func (s *stubPropertyService) ListProperties(_ context.Context, filter domain.PropertyFilter) ([]domain.PropertySummary, error) {
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.summaries, nil
}

func (s *stubPropertyService) GetProperty(_ context.Context, _ int64, userID *int64) (domain.PropertyDetail, error) {
	s.lastUserID = userID
	if s.err != nil {
		return domain.PropertyDetail{}, s.err
	}
	return s.detail, nil
}
