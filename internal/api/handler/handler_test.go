package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhamadnurizanfakir/school-timetable/internal/dto"
	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.AdminResponse
	getCurrentErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentAdmin(_ context.Context, _ string) (*dto.AdminResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}

// ── Mock PersonService ──

type mockPersonService struct {
	listResult []dto.PersonResponse
	listErr    error
	getResult  *dto.PersonResponse
	getErr     error
}

func (m *mockPersonService) ListPersons(_ context.Context) ([]dto.PersonResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockPersonService) GetPerson(_ context.Context, _ string) (*dto.PersonResponse, error) {
	return m.getResult, m.getErr
}

// ── Mock SlotService ──

type mockSlotService struct {
	createResult *dto.SlotResponse
	createErr    error
	updateResult *dto.SlotResponse
	updateErr    error
	deleteErr    error
	listResult   []dto.SlotResponse
	listErr      error
}

func (m *mockSlotService) CreateSlot(_ context.Context, _ *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockSlotService) UpdateSlot(_ context.Context, _ string, _ *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockSlotService) DeleteSlot(_ context.Context, _ string) error {
	return m.deleteErr
}
func (m *mockSlotService) ListSlots(_ context.Context, _ string) ([]dto.SlotResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock TimetableService ──

type mockTimetableService struct {
	dayResult   *dto.DayViewResponse
	dayErr      error
	printResult *dto.PrintViewResponse
	printErr    error
}

func (m *mockTimetableService) DayView(_ context.Context, _ string) (*dto.DayViewResponse, error) {
	return m.dayResult, m.dayErr
}
func (m *mockTimetableService) PrintView(_ context.Context, _ string) (*dto.PrintViewResponse, error) {
	return m.printResult, m.printErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportExcel(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportICS(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func setAuth(c *gin.Context) {
	c.Set("admin_id", "test-admin-id")
	c.Set("admin_name", "Test Admin")
	c.Set("token_jti", "test-jti")
	c.Set("token_expires_at", time.Now().Add(15*time.Minute))
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "admin@school.edu.my",
		Password: "Test1234",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "admin@school.edu.my",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	mock := &mockAuthService{
		refreshResult: &dto.TokenResponse{AccessToken: "new-access-token"},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(dto.RefreshTokenRequest{
		RefreshToken: "valid-refresh-token",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/refresh", h.RefreshToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrInvalidRefresh})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(dto.RefreshTokenRequest{
		RefreshToken: "expired",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/refresh", h.RefreshToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	mock := &mockAuthService{
		getCurrentResult: &dto.AdminResponse{
			ID:    "test-admin-id",
			Email: "admin@school.edu.my",
			Name:  "Test Admin",
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) {
		setAuth(c)
		h.Me(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PersonHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPersonHandler_List_Success(t *testing.T) {
	mock := &mockPersonService{
		listResult: []dto.PersonResponse{
			{ID: "p1", Name: "Izan"},
			{ID: "p2", Name: "Mia"},
		},
	}
	h := NewPersonHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/persons", nil)

	r := gin.New()
	r.GET("/persons", h.List)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestPersonHandler_Get_NotFound(t *testing.T) {
	h := NewPersonHandler(&mockPersonService{getErr: service.ErrPersonNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/persons/missing", nil)

	r := gin.New()
	r.GET("/persons/:id", h.Get)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12001 {
		t.Errorf("expected error code 12001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SlotHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSlotHandler_Create_Success(t *testing.T) {
	mock := &mockSlotService{
		createResult: &dto.SlotResponse{ID: "s1", Subject: "Math"},
	}
	h := NewSlotHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/slots", jsonBody(dto.CreateSlotRequest{
		PersonID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		DayOfWeek: "Monday",
		StartTime: "08:00",
		EndTime:   "09:00",
		Subject:   "Math",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/slots", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestSlotHandler_Create_ValidationFailures(t *testing.T) {
	h := NewSlotHandler(&mockSlotService{})

	cases := []struct {
		name string
		req  dto.CreateSlotRequest
	}{
		{"非法星期", dto.CreateSlotRequest{
			PersonID: "7c9e6679-7425-40de-944b-e07fc1f90ae7", DayOfWeek: "Sunday",
			StartTime: "08:00", EndTime: "09:00", Subject: "Math",
		}},
		{"非法 UUID", dto.CreateSlotRequest{
			PersonID: "not-a-uuid", DayOfWeek: "Monday",
			StartTime: "08:00", EndTime: "09:00", Subject: "Math",
		}},
		{"缺少科目", dto.CreateSlotRequest{
			PersonID: "7c9e6679-7425-40de-944b-e07fc1f90ae7", DayOfWeek: "Monday",
			StartTime: "08:00", EndTime: "09:00",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/slots", jsonBody(tc.req))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/slots", h.Create)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestSlotHandler_Create_InvalidTime(t *testing.T) {
	h := NewSlotHandler(&mockSlotService{createErr: service.ErrSlotInvalidTime})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/slots", jsonBody(dto.CreateSlotRequest{
		PersonID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		DayOfWeek: "Monday",
		StartTime: "10:00",
		EndTime:   "09:00",
		Subject:   "Math",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/slots", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13001 {
		t.Errorf("expected error code 13001, got %d", resp.Code)
	}
}

func TestSlotHandler_Update_NotFound(t *testing.T) {
	h := NewSlotHandler(&mockSlotService{updateErr: service.ErrSlotNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/slots/missing", jsonBody(dto.UpdateSlotRequest{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/slots/:id", h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSlotHandler_Delete_Success(t *testing.T) {
	h := NewSlotHandler(&mockSlotService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/slots/s1", nil)

	r := gin.New()
	r.DELETE("/slots/:id", h.Delete)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TimetableHandler Tests
// ═══════════════════════════════════════════════════════════

func TestTimetableHandler_DayView_Success(t *testing.T) {
	mock := &mockTimetableService{
		dayResult: &dto.DayViewResponse{PersonID: "p1", PersonName: "Izan"},
	}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/persons/p1/timetable", nil)

	r := gin.New()
	r.GET("/persons/:id/timetable", h.DayView)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestTimetableHandler_PrintView_NotFound(t *testing.T) {
	h := NewTimetableHandler(&mockTimetableService{printErr: service.ErrPersonNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/persons/missing/timetable/print", nil)

	r := gin.New()
	r.GET("/persons/:id/timetable/print", h.PrintView)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Excel_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("fake-xlsx-bytes"),
		filename: "timetable_Izan.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/persons/p1/export/excel", nil)

	r := gin.New()
	r.GET("/persons/:id/export/excel", h.Excel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd != `attachment; filename="timetable_Izan.xlsx"` {
		t.Errorf("Content-Disposition 错误: %s", cd)
	}
}

func TestExportHandler_ICS_NotFound(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrPersonNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/persons/missing/export/ics", nil)

	r := gin.New()
	r.GET("/persons/:id/export/ics", h.ICS)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
