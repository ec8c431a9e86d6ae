package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/domain/settings"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	att.ID = uuid.NewString()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.records[f.key(att.EmployeeID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			return att, nil
		}
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := f.records[f.key(employeeID, date)]
	if !ok {
		return nil, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && len(out) < limit {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, att := range f.records {
		if att.Date.Equal(date) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	for _, att := range f.records {
		if att.ID == id {
			att.CheckOut = &checkOut
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	for _, att := range f.records {
		if att.ID == id {
			att.Status = status
			att.IsEarly = status == attendance.StatusEarly
			att.IsOnTime = status == attendance.StatusPresent
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CountByStatusAndDate(ctx context.Context, status string, date time.Time) (int64, error) {
	var count int64
	for _, att := range f.records {
		if att.Status == status && att.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

type fakeEmployeeRepo struct {
	employees  map[string]*employee.Employee
	pointCalls int
}

func newFakeEmployeeRepo(emps ...*employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
	for _, emp := range emps {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp *employee.Employee) error {
	emp.ID = uuid.NewString()
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]*employee.Employee, error) {
	var out []*employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp *employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.Email == email && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) AddPoints(ctx context.Context, id string, points int) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Points += points
	f.pointCalls++
	return nil
}

func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.PasswordHash = passwordHash
	emp.MustChangePassword = mustChange
	return nil
}

func (f *fakeEmployeeRepo) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, emp := range f.employees {
		if emp.DepartmentID != nil {
			counts[*emp.DepartmentID]++
		}
	}
	return counts, nil
}

type fakeSettingsRepo struct {
	settings *settings.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *settings.Settings) error {
	f.settings = s
	return nil
}

func testSettings() *settings.Settings {
	return &settings.Settings{
		RaiseAfterYears: 2,
		RaisePercentage: decimal.NewFromFloat(10.0),
		PointValue:      decimal.NewFromFloat(100.0),
		PaymentMethod:   "Bank Transfer",
		EarlyPoints:     5,
		OnTimePoints:    3,
	}
}

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:     uuid.NewString(),
		Name:   "Derrick Omondi",
		Email:  "derrickomondi@payflow.org",
		Points: 10,
	}
}

type serviceFixture struct {
	svc      *AttendanceServiceImpl
	attRepo  *fakeAttendanceRepo
	empRepo  *fakeEmployeeRepo
	mockPool pgxmock.PgxPoolIface
}

func newServiceFixture(t *testing.T, clock time.Time, emps ...*employee.Employee) *serviceFixture {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emps...)

	svc := &AttendanceServiceImpl{
		db:                   &database.DB{Pool: mockPool},
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
		SettingsRepository:   &fakeSettingsRepo{settings: testSettings()},
		loc:                  time.UTC,
		now:                  func() time.Time { return clock },
	}

	return &serviceFixture{svc: svc, attRepo: attRepo, empRepo: empRepo, mockPool: mockPool}
}

func TestCheckIn_Early(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 15), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	resp, err := fx.svc.CheckIn(context.Background(), emp.ID)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusEarly, resp.Status)
	assert.Equal(t, 5, resp.PointsEarned)
	assert.Equal(t, 15, resp.TotalPoints)
	assert.Equal(t, 15, emp.Points)
	assert.Equal(t, 1, fx.empRepo.pointCalls)
}

func TestCheckIn_OnTime(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 45), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	resp, err := fx.svc.CheckIn(context.Background(), emp.ID)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, 3, resp.PointsEarned)
	assert.Equal(t, 13, emp.Points)
}

func TestCheckIn_WindowClosed(t *testing.T) {
	emp := testEmployee()

	for _, clock := range []time.Time{at(9, 0), at(12, 0), at(15, 0)} {
		fx := newServiceFixture(t, clock, emp)

		_, err := fx.svc.CheckIn(context.Background(), emp.ID)

		assert.ErrorIs(t, err, attendance.ErrCheckInWindowClosed)
		assert.Empty(t, fx.attRepo.records)
	}
	assert.Equal(t, 10, emp.Points)
}

func TestCheckIn_Twice(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 0), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	_, err := fx.svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	_, err = fx.svc.CheckIn(context.Background(), emp.ID)

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Equal(t, 1, fx.empRepo.pointCalls)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	fx := newServiceFixture(t, at(8, 0))

	_, err := fx.svc.CheckIn(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOut_InsideWindow(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 0), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	_, err := fx.svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	fx.svc.now = func() time.Time { return at(17, 0) }
	resp, err := fx.svc.CheckOut(context.Background(), emp.ID)

	require.NoError(t, err)
	assert.Equal(t, "17:00:00", resp.CheckOut)
	assert.Equal(t, attendance.StatusEarly, resp.Status)
}

func TestCheckOut_OutsideWindow(t *testing.T) {
	emp := testEmployee()

	for _, clock := range []time.Time{at(16, 29), at(17, 31), at(12, 0)} {
		fx := newServiceFixture(t, at(8, 0), emp)
		fx.mockPool.ExpectBegin()
		fx.mockPool.ExpectCommit()

		_, err := fx.svc.CheckIn(context.Background(), emp.ID)
		require.NoError(t, err)

		fx.svc.now = func() time.Time { return clock }
		_, err = fx.svc.CheckOut(context.Background(), emp.ID)

		assert.ErrorIs(t, err, attendance.ErrCheckOutWindowClosed)
	}
}

func TestCheckOut_NotCheckedIn(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(17, 0), emp)

	_, err := fx.svc.CheckOut(context.Background(), emp.ID)

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 0), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	_, err := fx.svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	fx.svc.now = func() time.Time { return at(16, 45) }
	_, err = fx.svc.CheckOut(context.Background(), emp.ID)
	require.NoError(t, err)

	_, err = fx.svc.CheckOut(context.Background(), emp.ID)

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestTodayStatus_Progression(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 0), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	status, err := fx.svc.TodayStatus(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateNotMarked, status.DayState)
	assert.True(t, status.CanCheckIn)
	assert.False(t, status.CanCheckOut)

	_, err = fx.svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	status, err = fx.svc.TodayStatus(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateClockedIn, status.DayState)
	assert.False(t, status.CanCheckIn)
	assert.False(t, status.CanCheckOut)

	fx.svc.now = func() time.Time { return at(16, 30) }
	status, err = fx.svc.TodayStatus(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.True(t, status.CanCheckOut)

	_, err = fx.svc.CheckOut(context.Background(), emp.ID)
	require.NoError(t, err)

	status, err = fx.svc.TodayStatus(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateClockedOut, status.DayState)
	assert.False(t, status.CanCheckIn)
	assert.False(t, status.CanCheckOut)
}

func TestBulkMark(t *testing.T) {
	empA := testEmployee()
	empB := &employee.Employee{ID: uuid.NewString(), Name: "Jane Doe", Email: "janedoe@payflow.org"}
	fx := newServiceFixture(t, at(8, 0), empA, empB)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	_, err := fx.svc.CheckIn(context.Background(), empA.ID)
	require.NoError(t, err)

	resp, err := fx.svc.BulkMark(context.Background(), &attendance.BulkMarkRequest{
		Date: at(8, 0).Format("2006-01-02"),
		Entries: []attendance.BulkMarkEntry{
			{EmployeeID: empA.ID, Status: attendance.StatusPresent},
			{EmployeeID: empB.ID, Status: attendance.StatusLate},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Marked)
	assert.Equal(t, 1, resp.Updated)

	record, err := fx.attRepo.GetByEmployeeAndDate(context.Background(), empB.ID, dateOnly(at(8, 0)))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, record.Status)
	assert.Equal(t, 0, record.PointsEarned)
	assert.Equal(t, 0, empB.Points)
}

func TestBulkMark_UpdatesExistingWithoutPoints(t *testing.T) {
	emp := testEmployee()
	fx := newServiceFixture(t, at(8, 0), emp)
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()
	fx.mockPool.ExpectBegin()
	fx.mockPool.ExpectCommit()

	_, err := fx.svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)
	require.Equal(t, 15, emp.Points)

	resp, err := fx.svc.BulkMark(context.Background(), &attendance.BulkMarkRequest{
		Date: at(8, 0).Format("2006-01-02"),
		Entries: []attendance.BulkMarkEntry{
			{EmployeeID: emp.ID, Status: attendance.StatusLate},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Marked)
	assert.Equal(t, 1, resp.Updated)

	// The status is replaced but the balance stays as earned at check-in.
	record, err := fx.attRepo.GetByEmployeeAndDate(context.Background(), emp.ID, dateOnly(at(8, 0)))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, record.Status)
	assert.Equal(t, 15, emp.Points)
	assert.Equal(t, 1, fx.empRepo.pointCalls)
}

func TestBulkMark_InvalidStatus(t *testing.T) {
	fx := newServiceFixture(t, at(8, 0))

	_, err := fx.svc.BulkMark(context.Background(), &attendance.BulkMarkRequest{
		Date:    "2026-03-16",
		Entries: []attendance.BulkMarkEntry{{EmployeeID: uuid.NewString(), Status: "absent"}},
	})

	assert.Error(t, err)
}
