package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"Backend-PlanujSmeny/src/controllers"
	"Backend-PlanujSmeny/src/middleware"
	"Backend-PlanujSmeny/src/models"
	"Backend-PlanujSmeny/src/services/auth"
	"Backend-PlanujSmeny/src/services/catalog"
	"Backend-PlanujSmeny/src/services/checkin"
	"Backend-PlanujSmeny/src/testutil"
	"Backend-PlanujSmeny/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app      *fiber.App
	sessions *checkin.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	utils.SetJWTSecret("router-test-secret")
	t.Cleanup(func() { utils.SetJWTSecret("") })

	loc, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	sessions := checkin.NewStore(nil)
	svc, err := auth.NewService(auth.DemoCredentials(), sessions, time.Hour)
	require.NoError(t, err)

	source := catalog.Default()
	app := NewApp(Controllers{
		Auth:      controllers.NewAuthController(svc, time.Hour),
		CheckIn:   controllers.NewCheckInController(sessions, source, loc, 12*time.Hour),
		Locations: controllers.NewLocationController(source),
		Clock:     controllers.NewClockController(loc),
	}, "*")
	return &testServer{app: app, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func (s *testServer) api(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	ct := ""
	if body != "" {
		r = strings.NewReader(body)
		ct = fiber.MIMEApplicationJSON
	}
	return s.do(t, method, path, token, r, ct)
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	resp := s.api(t, http.MethodPost, "/api/auth/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAuthAPI(t *testing.T) {
	suite := testutil.NewSuite("Auth API Tests")
	defer suite.Summary(t)

	s := newTestServer(t)

	suite.Run(t, "LoginSuccess", func(t *testing.T) {
		token := s.login(t, "admin", "admin")
		claims, err := utils.ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "Admin", claims.Role)
		assert.Equal(t, 1, s.sessions.Len())
	})

	suite.Run(t, "WrongPassword", func(t *testing.T) {
		resp := s.api(t, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decode[map[string]interface{}](t, resp)
		assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
		assert.Equal(t, "Invalid username or password.", body["error"])
	})

	suite.Run(t, "MissingFields", func(t *testing.T) {
		resp := s.api(t, http.MethodPost, "/api/auth/login", "", `{"username":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "LogoutDropsSession", func(t *testing.T) {
		token := s.login(t, "supervisor", "super")
		before := s.sessions.Len()

		resp := s.api(t, http.MethodPost, "/api/auth/logout", token, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, before-1, s.sessions.Len())
	})

	suite.Run(t, "ProtectedWithoutToken", func(t *testing.T) {
		resp := s.api(t, http.MethodGet, "/api/checkin", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCheckInAPIFlow(t *testing.T) {
	suite := testutil.NewSuite("Check-in API Tests")
	defer suite.Summary(t)

	s := newTestServer(t)
	token := s.login(t, "supervisor", "super")

	suite.Run(t, "StartWithoutLocation", func(t *testing.T) {
		resp := s.api(t, http.MethodPost, "/api/checkin/start", token, "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		body := decode[models.ErrorResponse](t, resp)
		assert.Equal(t, "NO_LOCATION_SELECTED", body.Code)
		assert.Equal(t, "Please pick a location before starting your shift.", body.Message)

		status := decode[models.CheckInStatus](t, s.api(t, http.MethodGet, "/api/checkin", token, ""))
		assert.Nil(t, status.StartedAt)
		assert.False(t, status.IsShiftRunning)
	})

	suite.Run(t, "SelectValidation", func(t *testing.T) {
		resp := s.api(t, http.MethodPost, "/api/checkin/select", token, `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = s.api(t, http.MethodPost, "/api/checkin/select", token, `{"locationId":"atlantis"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	suite.Run(t, "SelectConfirmStartEnd", func(t *testing.T) {
		status := decode[models.CheckInStatus](t, s.api(t, http.MethodPost, "/api/checkin/select", token, `{"locationId":"san-carlo-karlin"}`))
		assert.True(t, status.IsPopupOpen)
		require.NotNil(t, status.PendingLocationID)
		assert.Equal(t, "san-carlo-karlin", *status.PendingLocationID)

		status = decode[models.CheckInStatus](t, s.api(t, http.MethodPost, "/api/checkin/confirm", token, ""))
		assert.False(t, status.IsPopupOpen)
		require.NotNil(t, status.SelectedLocationID)
		assert.Equal(t, "san-carlo-karlin", *status.SelectedLocationID)
		assert.True(t, status.CanStart)

		status = decode[models.CheckInStatus](t, s.api(t, http.MethodPost, "/api/checkin/start", token, ""))
		assert.True(t, status.IsShiftRunning)
		assert.False(t, status.IsShiftFinished)
		assert.True(t, strings.HasPrefix(status.Message, "Shift running at San Carlo - Karlín."))

		resp := s.api(t, http.MethodPost, "/api/checkin/start", token, "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		status = decode[models.CheckInStatus](t, s.api(t, http.MethodPost, "/api/checkin/end", token, ""))
		assert.False(t, status.IsShiftRunning)
		assert.True(t, status.IsShiftFinished)
		assert.Nil(t, status.SelectedLocationID)
		assert.True(t, strings.HasPrefix(status.Message, "Shift finished at San Carlo - Karlín."))

		resp = s.api(t, http.MethodPost, "/api/checkin/end", token, "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	suite.Run(t, "ConfirmWithoutPending", func(t *testing.T) {
		resp := s.api(t, http.MethodPost, "/api/checkin/confirm", token, "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	suite.Run(t, "SessionsAreIsolated", func(t *testing.T) {
		other := s.login(t, "admin", "admin")
		status := decode[models.CheckInStatus](t, s.api(t, http.MethodGet, "/api/checkin", other, ""))
		assert.Nil(t, status.StartedAt)
		assert.Equal(t, "You have not started your shift yet.", status.Message)
	})
}

func TestLocationAndDashboardAPI(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin")

	locations := decode[[]models.Location](t, s.api(t, http.MethodGet, "/api/locations", token, ""))
	assert.Len(t, locations, 6)

	loc := decode[models.Location](t, s.api(t, http.MethodGet, "/api/locations/san-carlo-letna", token, ""))
	assert.Equal(t, "San Carlo - Letna", loc.Name)

	resp := s.api(t, http.MethodGet, "/api/locations/nowhere", token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	view := decode[models.DashboardView](t, s.api(t, http.MethodGet, "/api/dashboard", token, ""))
	assert.Equal(t, "admin", view.User.Username)
	assert.Len(t, view.Picker, 6)
	assert.Len(t, view.Rosters, 6)
	assert.Nil(t, view.Popup)
}

func pageCookie(t *testing.T, s *testServer, username, password string) *http.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}, "from": {"/"}}
	resp := s.do(t, http.MethodPost, "/login", "", strings.NewReader(form.Encode()), fiber.MIMEApplicationForm)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func (s *testServer) page(t *testing.T, method, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := s.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestPages(t *testing.T) {
	suite := testutil.NewSuite("Page Tests")
	defer suite.Summary(t)

	s := newTestServer(t)

	suite.Run(t, "DashboardRedirectsToLogin", func(t *testing.T) {
		resp := s.page(t, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login?from=%2F", resp.Header.Get("Location"))
	})

	suite.Run(t, "LoginPageShowsDemoAccounts", func(t *testing.T) {
		resp := s.page(t, http.MethodGet, "/login", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)
		assert.Contains(t, body, "supervisor / pass: super")
	})

	suite.Run(t, "LoginFormWrongPassword", func(t *testing.T) {
		form := url.Values{"username": {"admin"}, "password": {"x"}}
		resp := s.do(t, http.MethodPost, "/login", "", strings.NewReader(form.Encode()), fiber.MIMEApplicationForm)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Invalid username or password.")
	})

	suite.Run(t, "DashboardFlow", func(t *testing.T) {
		cookie := pageCookie(t, s, "supervisor", "super")

		body := readBody(t, s.page(t, http.MethodGet, "/", cookie))
		assert.Contains(t, body, "You have not started your shift yet.")
		assert.Contains(t, body, "Dittrichova")

		resp := s.page(t, http.MethodPost, "/shift/start", cookie)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/?notice=pick-location", resp.Header.Get("Location"))
		body = readBody(t, s.page(t, http.MethodGet, "/?notice=pick-location", cookie))
		assert.Contains(t, body, "Please pick a location before starting your shift.")

		resp = s.page(t, http.MethodPost, "/shift/end", cookie)
		assert.Equal(t, "/?notice=shift-not-running", resp.Header.Get("Location"))

		resp = s.page(t, http.MethodPost, "/shift/confirm", cookie)
		assert.Equal(t, "/?notice=nothing-pending", resp.Header.Get("Location"))

		resp = s.page(t, http.MethodPost, "/shift/select/atlantis", cookie)
		assert.Equal(t, "/?notice=location-not-found", resp.Header.Get("Location"))

		s.page(t, http.MethodPost, "/shift/select/san-carlo-vinohrady", cookie)
		body = readBody(t, s.page(t, http.MethodGet, "/", cookie))
		assert.Contains(t, body, "Confirm Location Shift as")

		s.page(t, http.MethodPost, "/shift/confirm", cookie)
		s.page(t, http.MethodPost, "/shift/start", cookie)
		body = readBody(t, s.page(t, http.MethodGet, "/", cookie))
		assert.Contains(t, body, "Shift running at San Carlo - Vinohrady.")
		assert.Contains(t, body, "Your shift")
	})

	suite.Run(t, "NoticeOnlyFromKnownKeys", func(t *testing.T) {
		cookie := pageCookie(t, s, "supervisor", "super")
		body := readBody(t, s.page(t, http.MethodGet, "/?notice=Call+0800+now", cookie))
		assert.NotContains(t, body, "Call 0800 now")
		assert.NotContains(t, body, `class="notice"`)
	})

	suite.Run(t, "AdminPageRoleGate", func(t *testing.T) {
		supervisor := pageCookie(t, s, "supervisor", "super")
		resp := s.page(t, http.MethodGet, "/admin", supervisor)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		admin := pageCookie(t, s, "admin", "admin")
		resp = s.page(t, http.MethodGet, "/admin", admin)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Admin Panel")
	})

	suite.Run(t, "LogoutClearsSession", func(t *testing.T) {
		cookie := pageCookie(t, s, "admin", "admin")
		before := s.sessions.Len()
		resp := s.page(t, http.MethodPost, "/logout", cookie)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Equal(t, before-1, s.sessions.Len())
	})
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp := s.api(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]interface{}](t, resp)
	assert.Equal(t, "ok", body["status"])
}
