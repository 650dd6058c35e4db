package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/memory"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
)

type testServer struct {
	e        *echo.Echo
	store    *memory.Datastore
	band     domain.TravelBand
	folder   domain.Folder
	member   domain.Spotter
	outsider domain.Spotter
	activity domain.Activity
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.New()

	folder := domain.Folder{ID: uuid.New(), Name: domain.DefaultFolderName, IsDefault: true}
	band := domain.TravelBand{ID: uuid.New(), Name: "Lisbon trip", Folders: domain.Folders{folder}}
	member := domain.Spotter{ID: uuid.New(), Username: "ana", Email: "ana@example.com", TravelBands: []string{band.ID.String()}}
	band.Spotters = domain.SpotterRefs{member.Ref()}
	outsider := domain.Spotter{ID: uuid.New(), Username: "bruno", Email: "bruno@example.com"}
	activity := domain.Activity{ID: uuid.New(), Name: "Tram 28 tour", Price: 25, Location: &domain.Location{City: "Lisbon"}}

	store.PutTravelBand(band)
	store.PutSpotter(member)
	store.PutSpotter(outsider)
	store.PutActivity(activity)

	e, api := NewRouter(RouterConfig{AllowOrigins: []string{"*"}})
	authz := service.NewAuthorizationService(store.Spotters())
	bands := service.NewTravelBandService(store, nil, nil, service.TravelBandServiceConfig{})
	spotters := service.NewSpotterService(store)
	RegisterActivities(api, service.NewActivityService(store, nil), service.NewShareService(store))
	RegisterTravelBands(api, authz, bands, service.NewFolderService(store, service.FolderServiceConfig{}), spotters, TravelBandFeatures{})
	RegisterReactions(api, service.NewReactionService(store))
	RegisterSpotters(api, spotters, bands, service.NewBookingService(store))

	return &testServer{e: e, store: store, band: band, folder: folder, member: member, outsider: outsider, activity: activity}
}

// do sends a request as spotter (uuid.Nil for anonymous) and decodes the JSON
// response body.
func (s *testServer) do(t *testing.T, method, path string, spotter uuid.UUID, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if spotter != uuid.Nil {
		req.Header.Set("X-Spotter", spotter.String())
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	}
	return rec.Code, decoded
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, http.MethodGet, "/health", uuid.Nil, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["ok"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/health", uuid.Nil, "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "travelband_api_requests_total")
}
