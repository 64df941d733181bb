package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/employee"
	employeeerrors "github.com/nawamdisilvaaltitude1-collab/hris-project/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn        func(tx *sql.Tx) employee.Repository
	createFn        func(ctx context.Context, e *employee.Employee) error
	findAllFn       func(ctx context.Context, filter employee.Filter) ([]employee.Employee, error)
	findByIDFn      func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn        func(ctx context.Context, e *employee.Employee) error
	deleteFn        func(ctx context.Context, id string) error
	countByStatusFn func(ctx context.Context, status string) (int64, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, status)
	}
	return 0, nil
}

type fakeCounterRepository struct {
	next int64
	err  error
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	counter *fakeCounterRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	svc := employee.NewService(db, repo, counterRepo)

	return &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	validRequest := func() employee.CreateEmployeeRequest {
		return employee.CreateEmployeeRequest{
			FullName:    "Sahan Jayasuriya",
			Email:       "sahan@altitude1.com",
			Department:  "Engineering",
			Position:    "Backend Engineer",
			JoiningDate: "2026-02-01",
			Salary:      250000,
			Skills:      []string{"go", "postgres"},
		}
	}

	t.Run("success assigns sequential employee number", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.counter.next = 41
		expectTx(t, deps.sqlMock, true)
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP-000042", e.EmployeeNumber)
			assert.Equal(t, employee.StatusActive, e.Status)
			assert.Equal(t, []string{"go", "postgres"}, e.Skills)
			assert.NotNil(t, e.JoiningDate)
			return nil
		}

		resp, err := deps.service.Create(ctx, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", resp.EmployeeNumber)
		assert.Equal(t, "2026-02-01", resp.JoiningDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative bad joining date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		req := validRequest()
		req.JoiningDate = "01-02-2026"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})

	t.Run("negative bad manager id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		bad := "not-a-uuid"
		req := validRequest()
		req.ManagerID = &bad

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidManagerID)
	})

	t.Run("negative counter failure rolls back", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.counter.err = errors.New("counter unavailable")

		_, err := deps.service.Create(ctx, validRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	existing := func() *employee.Employee {
		joined := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		return &employee.Employee{
			ID:             employeeID,
			EmployeeNumber: "EMP-000007",
			FullName:       "Sahan Jayasuriya",
			Email:          "sahan@altitude1.com",
			Department:     "Engineering",
			Position:       "Backend Engineer",
			JoiningDate:    &joined,
			Salary:         250000,
			Status:         employee.StatusActive,
		}
	}

	t.Run("success updates only sent fields", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return existing(), nil
		}
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, "Platform", e.Department)
			// Untouched fields keep their values.
			assert.Equal(t, "Sahan Jayasuriya", e.FullName)
			assert.Equal(t, "EMP-000007", e.EmployeeNumber)
			return nil
		}

		dept := "Platform"
		resp, err := deps.service.Update(ctx, employeeID.String(), employee.UpdateEmployeeRequest{
			Department: &dept,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Platform", resp.Department)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid status", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return existing(), nil
		}

		status := "retired"
		_, err := deps.service.Update(ctx, employeeID.String(), employee.UpdateEmployeeRequest{
			Status: &status,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		name := "Someone Else"
		_, err := deps.service.Update(ctx, employeeID.String(), employee.UpdateEmployeeRequest{
			FullName: &name,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("clearing manager id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		managerID := uuid.New()
		withManager := existing()
		withManager.ManagerID = &managerID

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return withManager, nil
		}
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			assert.Nil(t, e.ManagerID)
			return nil
		}

		empty := ""
		resp, err := deps.service.Update(ctx, employeeID.String(), employee.UpdateEmployeeRequest{
			ManagerID: &empty,
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.ManagerID)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
			assert.Equal(t, "Engineering", filter.Department)
			assert.Equal(t, "active", filter.Status)
			assert.Equal(t, "sahan", filter.Query)
			return []employee.Employee{
				{ID: uuid.New(), EmployeeNumber: "EMP-000007", FullName: "Sahan Jayasuriya", Status: employee.StatusActive},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, employee.Filter{
			Department: "Engineering",
			Status:     "active",
			Query:      "sahan",
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "EMP-000007", resp[0].EmployeeNumber)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(id)}, nil
		}
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, gotID string) error {
			assert.Equal(t, id, gotID)
			deleted = true
			return nil
		}

		err := deps.service.Delete(ctx, id)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
