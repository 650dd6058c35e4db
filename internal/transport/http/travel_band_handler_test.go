package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
)

func TestCreateTravelBandEndpoint(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodPost, "/api/v1/travel-bands", s.outsider.ID, `{"name":"Porto weekend","description":"wine"}`)
	require.Equal(t, http.StatusCreated, code)
	band := resp["travelBand"].(map[string]any)
	assert.Equal(t, "Porto weekend", band["name"])
	assert.EqualValues(t, 0, band["activityCount"])
	require.Len(t, band["folders"], 1)
	require.Len(t, band["spotters"], 1)

	spotter, _ := s.store.Spotter(s.outsider.ID)
	assert.Len(t, spotter.TravelBands, 1)
}

func TestCreateTravelBandEndpointValidation(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodPost, "/api/v1/travel-bands", s.member.ID, `{"name":"ab"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []any{"name must be at least 3 characters"}, resp["errors"])

	code, _ = s.do(t, http.MethodPost, "/api/v1/travel-bands", uuid.Nil, `{"name":"Porto weekend"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestTravelBandMembership(t *testing.T) {
	s := newTestServer(t)
	path := "/api/v1/travel-bands/" + s.band.ID.String()

	code, _ := s.do(t, http.MethodGet, path, s.member.ID, "")
	assert.Equal(t, http.StatusOK, code)

	code, resp := s.do(t, http.MethodGet, path, s.outsider.ID, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, service.ErrUnauthorizedOnTravelBand.Message, resp["message"])

	code, _ = s.do(t, http.MethodGet, path, uuid.Nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(t, http.MethodGet, "/api/v1/travel-bands/not-a-uuid", s.member.ID, "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestInvalidIdentityHeader(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/travel-bands/"+s.band.ID.String(), nil)
	req.Header.Set("X-Spotter", "ana")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInviteSpotterEndpoint(t *testing.T) {
	s := newTestServer(t)
	path := "/api/v1/travel-bands/" + s.band.ID.String() + "/spotters"
	body := `{"spotterId":"` + s.outsider.ID.String() + `"}`

	code, _ := s.do(t, http.MethodPost, path, s.outsider.ID, body)
	require.Equal(t, http.StatusUnauthorized, code, "only members may invite")

	code, resp := s.do(t, http.MethodPost, path, s.member.ID, body)
	require.Equal(t, http.StatusOK, code)
	spotter := resp["spotter"].(map[string]any)
	assert.Contains(t, spotter["travelBands"], s.band.ID.String())

	code, _ = s.do(t, http.MethodPost, path, s.member.ID, body)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodGet, path, s.outsider.ID, "")
	assert.Equal(t, http.StatusOK, code, "invited spotter is now a member")
}

func TestFolderEndpoints(t *testing.T) {
	s := newTestServer(t)
	path := "/api/v1/travel-bands/" + s.band.ID.String() + "/folders"

	code, resp := s.do(t, http.MethodPost, path, s.member.ID, `{"name":"Museums"}`)
	require.Equal(t, http.StatusCreated, code)
	folder := resp["folder"].(map[string]any)
	assert.Equal(t, "Museums", folder["name"])

	code, resp = s.do(t, http.MethodPost, path, s.member.ID, `{"name":"Museums"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, service.ErrFolderNameTaken.Message, resp["message"])

	code, resp = s.do(t, http.MethodGet, path, s.member.ID, "")
	require.Equal(t, http.StatusOK, code)
	folders := resp["folders"].([]any)
	require.Len(t, folders, 2)
	assert.EqualValues(t, 0, folders[0].(map[string]any)["nbActivities"])

	code, _ = s.do(t, http.MethodGet, path+"/"+uuid.NewString()+"/activities", s.member.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestThumbnailRouteDisabledWithoutStorage(t *testing.T) {
	s := newTestServer(t)
	code, _ := s.do(t, http.MethodPost, "/api/v1/travel-bands/"+s.band.ID.String()+"/thumbnail", s.member.ID, "")
	assert.NotEqual(t, http.StatusOK, code)
}
