package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/core/services"
	"github.com/hrkit/leave_management_app/internal/dto"
)

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	args := m.Called(ctx, name)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

// --- Mock BalanceProvisioner ---
type MockBalanceProvisioner struct {
	mock.Mock
}

func (m *MockBalanceProvisioner) EnsureBalance(ctx context.Context, employeeID, leaveTypeID, createdBy string) error {
	args := m.Called(ctx, employeeID, leaveTypeID, createdBy)
	return args.Error(0)
}

func (m *MockBalanceProvisioner) ProvisionForEmployee(ctx context.Context, employee domain.Employee, createdBy string) error {
	args := m.Called(ctx, employee, createdBy)
	return args.Error(0)
}

func (m *MockBalanceProvisioner) ProvisionForLeaveType(ctx context.Context, leaveType domain.LeaveType, createdBy string) error {
	args := m.Called(ctx, leaveType, createdBy)
	return args.Error(0)
}

func (m *MockBalanceProvisioner) AdjustEntitlement(ctx context.Context, leaveTypeID string, oldMax, newMax int, updatedBy string) (portsrepo.AdjustmentResult, error) {
	args := m.Called(ctx, leaveTypeID, oldMax, newMax, updatedBy)
	return args.Get(0).(portsrepo.AdjustmentResult), args.Error(1)
}

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo   *MockEmployeeRepository
	mockDepartmentRepo *MockDepartmentRepository
	mockBalanceSvc     *MockBalanceProvisioner
	service            portssvc.EmployeeSvcFacade

	adminActor   domain.Actor
	departmentID string
	department   *domain.Department
	manager      *domain.Employee
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockDepartmentRepo = new(MockDepartmentRepository)
	suite.mockBalanceSvc = new(MockBalanceProvisioner)
	suite.service = services.NewEmployeeService(
		suite.mockEmployeeRepo,
		suite.mockDepartmentRepo,
		suite.mockBalanceSvc,
	)

	suite.adminActor = domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.departmentID = uuid.NewString()
	suite.department = &domain.Department{DepartmentID: suite.departmentID, Name: "Engineering"}
	suite.manager = &domain.Employee{
		EmployeeID:   uuid.NewString(),
		Name:         "Robin Marsh",
		Role:         domain.RoleManager,
		DepartmentID: &suite.departmentID,
		IsActive:     true,
	}
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:         "Dana Field",
		Email:        "Dana.Field@Example.com",
		Role:         "EMPLOYEE",
		ManagerID:    &suite.manager.EmployeeID,
		DepartmentID: &suite.departmentID,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dana.field@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.manager.EmployeeID).Return(suite.manager, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, suite.departmentID).Return(suite.department, nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Email == "dana.field@example.com" && e.IsActive && e.Role == domain.RoleEmployee
	})).Return(nil).Once()
	suite.mockBalanceSvc.On("ProvisionForEmployee", ctx, mock.AnythingOfType("domain.Employee"), suite.adminActor.EmployeeID).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, suite.adminActor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.Equal("dana.field@example.com", employee.Email)
	suite.NotEmpty(employee.EmployeeID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NonAdminForbidden() {
	actor := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleManager}

	employee, err := suite.service.CreateEmployee(context.Background(), actor, dto.CreateEmployeeRequest{})

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.Employee{EmployeeID: uuid.NewString(), Email: "dana.field@example.com"}
	req := dto.CreateEmployeeRequest{Name: "Dana", Email: "dana.field@example.com", Role: "EMPLOYEE"}

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dana.field@example.com").Return(existing, nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, suite.adminActor, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ManagerWithManagerRejected() {
	ctx := context.Background()
	other := uuid.NewString()
	req := dto.CreateEmployeeRequest{
		Name:         "Robin Marsh",
		Email:        "robin@example.com",
		Role:         "MANAGER",
		ManagerID:    &other,
		DepartmentID: &suite.departmentID,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "robin@example.com").Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.CreateEmployee(ctx, suite.adminActor, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_AdminWithDepartmentRejected() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:         "Sam Admin",
		Email:        "sam@example.com",
		Role:         "ADMIN",
		DepartmentID: &suite.departmentID,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "sam@example.com").Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.CreateEmployee(ctx, suite.adminActor, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ManagerInOtherDepartment() {
	ctx := context.Background()
	otherDept := uuid.NewString()
	req := dto.CreateEmployeeRequest{
		Name:         "Dana Field",
		Email:        "dana@example.com",
		Role:         "EMPLOYEE",
		ManagerID:    &suite.manager.EmployeeID,
		DepartmentID: &otherDept,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.manager.EmployeeID).Return(suite.manager, nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, suite.adminActor, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_InactiveManagerRejected() {
	ctx := context.Background()
	inactive := *suite.manager
	inactive.IsActive = false
	req := dto.CreateEmployeeRequest{
		Name:         "Dana Field",
		Email:        "dana@example.com",
		Role:         "EMPLOYEE",
		ManagerID:    &suite.manager.EmployeeID,
		DepartmentID: &suite.departmentID,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.manager.EmployeeID).Return(&inactive, nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, suite.adminActor, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestSetEmployeeActive_SelfDeactivationBlocked() {
	err := suite.service.SetEmployeeActive(context.Background(), suite.adminActor, suite.adminActor.EmployeeID, false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SetEmployeeActive",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestSetEmployeeActive_LastAdminProtected() {
	ctx := context.Background()
	otherAdmin := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin, IsActive: true}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, otherAdmin.EmployeeID).Return(otherAdmin, nil).Once()
	suite.mockEmployeeRepo.On("CountActiveAdmins", ctx, otherAdmin.EmployeeID).Return(0, nil).Once()

	err := suite.service.SetEmployeeActive(ctx, suite.adminActor, otherAdmin.EmployeeID, false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SetEmployeeActive",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestSetEmployeeActive_DeactivateReport() {
	ctx := context.Background()
	report := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee, IsActive: true}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, report.EmployeeID).Return(report, nil).Once()
	suite.mockEmployeeRepo.On("SetEmployeeActive", ctx, report.EmployeeID, false, suite.adminActor.EmployeeID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetEmployeeActive(ctx, suite.adminActor, report.EmployeeID, false)

	suite.Require().NoError(err)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_AdminTargetBlocked() {
	ctx := context.Background()
	otherAdmin := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, otherAdmin.EmployeeID).Return(otherAdmin, nil).Once()

	err := suite.service.DeleteEmployee(ctx, suite.adminActor, otherAdmin.EmployeeID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "DeleteEmployeeCascade", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_Cascades() {
	ctx := context.Background()
	report := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, report.EmployeeID).Return(report, nil).Once()
	suite.mockEmployeeRepo.On("DeleteEmployeeCascade", ctx, report.EmployeeID).Return(nil).Once()

	err := suite.service.DeleteEmployee(ctx, suite.adminActor, report.EmployeeID)

	suite.Require().NoError(err)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_ManagerScope() {
	ctx := context.Background()
	managerActor := domain.Actor{EmployeeID: suite.manager.EmployeeID, Role: domain.RoleManager}
	report := &domain.Employee{
		EmployeeID: uuid.NewString(),
		Role:       domain.RoleEmployee,
		ManagerID:  &suite.manager.EmployeeID,
	}
	stranger := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, report.EmployeeID).Return(report, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, stranger.EmployeeID).Return(stranger, nil).Once()

	got, err := suite.service.GetEmployee(ctx, managerActor, report.EmployeeID)
	suite.Require().NoError(err)
	suite.Equal(report.EmployeeID, got.EmployeeID)

	got, err = suite.service.GetEmployee(ctx, managerActor, stranger.EmployeeID)
	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestListTeam_EmployeeForbidden() {
	actor := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}

	team, err := suite.service.ListTeam(context.Background(), actor)

	suite.Require().Error(err)
	suite.Nil(team)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_RoleChangeClearsManager() {
	ctx := context.Background()
	existing := &domain.Employee{
		EmployeeID:   uuid.NewString(),
		Name:         "Dana Field",
		Email:        "dana@example.com",
		Role:         domain.RoleEmployee,
		ManagerID:    &suite.manager.EmployeeID,
		DepartmentID: &suite.departmentID,
		IsActive:     true,
	}
	newRole := "MANAGER"
	req := dto.UpdateEmployeeRequest{Role: &newRole}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, existing.EmployeeID).Return(existing, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, suite.departmentID).Return(suite.department, nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Role == domain.RoleManager && e.ManagerID == nil && e.DepartmentID != nil
	})).Return(nil).Once()
	suite.mockBalanceSvc.On("ProvisionForEmployee", ctx, mock.AnythingOfType("domain.Employee"), suite.adminActor.EmployeeID).Return(nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, suite.adminActor, existing.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, updated.Role)
	suite.Nil(updated.ManagerID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
