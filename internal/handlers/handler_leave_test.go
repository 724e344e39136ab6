package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/dto"
	"github.com/hrkit/leave_management_app/internal/handlers"
	"github.com/hrkit/leave_management_app/internal/middleware"
	"github.com/hrkit/leave_management_app/pkg/config"
)

// --- Mock LeaveService ---
type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) Submit(ctx context.Context, actor domain.Actor, req dto.SubmitLeaveRequest) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) Approve(ctx context.Context, actor domain.Actor, leaveID, comment string) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, leaveID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) Reject(ctx context.Context, actor domain.Actor, leaveID, comment string) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, leaveID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) Cancel(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, leaveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) GetApplication(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, leaveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) ListMyApplications(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) ListPendingForReviewer(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.LeaveApplication, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) CheckConflict(ctx context.Context, actor domain.Actor, start, end time.Time) (bool, error) {
	args := m.Called(ctx, actor, start, end)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LeaveSvcFacade = (*MockLeaveService)(nil)

// --- Test Suite ---
type LeaveHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockLeaveService *MockLeaveService
	jwtSecret        string
}

func (suite *LeaveHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLeaveService = new(MockLeaveService)

	cfg := &config.Config{
		JWTSecret: suite.jwtSecret,
		RateLimit: "1000-M",
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Leave: suite.mockLeaveService,
	})
}

// generateTestToken creates an identity token for testing.
func (suite *LeaveHandlerTestSuite) generateTestToken(employeeID string, role domain.Role) string {
	claims := middleware.IdentityClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employeeID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *LeaveHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LeaveHandlerTestSuite) TestSubmitLeave_Success() {
	employeeID := uuid.NewString()
	token := suite.generateTestToken(employeeID, domain.RoleEmployee)
	req := dto.SubmitLeaveRequest{
		LeaveTypeID: uuid.NewString(),
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-06",
		Reason:      "Family trip out of town",
	}
	expected := &domain.LeaveApplication{
		LeaveID:     uuid.NewString(),
		EmployeeID:  employeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		TotalDays:   5,
		Reason:      req.Reason,
		Status:      domain.StatusPending,
	}

	suite.mockLeaveService.On("Submit", mock.Anything, mock.MatchedBy(func(actor domain.Actor) bool {
		return actor.EmployeeID == employeeID && actor.Role == domain.RoleEmployee
	}), req).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leaves", token, req)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.LeaveApplicationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.LeaveID, got.LeaveID)
	suite.Equal("PENDING", got.Status)
	suite.Equal(5, got.TotalDays)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestSubmitLeave_MissingToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/leaves", "", dto.SubmitLeaveRequest{})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLeaveService.AssertNotCalled(suite.T(), "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveHandlerTestSuite) TestSubmitLeave_InsufficientBalance() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleEmployee)
	req := dto.SubmitLeaveRequest{
		LeaveTypeID: uuid.NewString(),
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-06",
		Reason:      "Family trip out of town",
	}

	suite.mockLeaveService.On("Submit", mock.Anything, mock.Anything, req).
		Return(nil, apperrors.NewInsufficientBalance("5", "2")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leaves", token, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestApproveLeave_AlreadyDecided() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleManager)
	leaveID := uuid.NewString()

	suite.mockLeaveService.On("Approve", mock.Anything, mock.Anything, leaveID, "").
		Return(nil, apperrors.NewInvalidTransition("APPROVED")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leaves/"+leaveID+"/approve", token, dto.DecisionRequest{})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestApproveLeave_Forbidden() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleManager)
	leaveID := uuid.NewString()

	suite.mockLeaveService.On("Approve", mock.Anything, mock.Anything, leaveID, "").
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leaves/"+leaveID+"/approve", token, dto.DecisionRequest{})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestGetLeave_NotFound() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleEmployee)
	leaveID := uuid.NewString()

	suite.mockLeaveService.On("GetApplication", mock.Anything, mock.Anything, leaveID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leaves/"+leaveID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestListMyLeaves_DefaultPagination() {
	employeeID := uuid.NewString()
	token := suite.generateTestToken(employeeID, domain.RoleEmployee)

	suite.mockLeaveService.On("ListMyApplications", mock.Anything, mock.Anything, 20, 0).
		Return([]domain.LeaveApplication{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leaves", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestCheckConflict_BadDate() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleEmployee)

	w := suite.doRequest(http.MethodPost, "/api/v1/leaves/conflict-check", token, dto.ConflictCheckRequest{
		StartDate: "02-03-2026",
		EndDate:   "2026-03-06",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeaveService.AssertNotCalled(suite.T(), "CheckConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveHandlerTestSuite) TestRegisterRoutes_InvalidRateLimitFallsBack() {
	router := gin.New()
	cfg := &config.Config{
		JWTSecret: suite.jwtSecret,
		RateLimit: "not-a-rate",
	}
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{
		Leave: suite.mockLeaveService,
	})

	suite.mockLeaveService.On("ListMyApplications", mock.Anything, mock.Anything, 20, 0).
		Return([]domain.LeaveApplication{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleEmployee))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func TestLeaveHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}
