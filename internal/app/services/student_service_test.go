package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/credentials"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Records.PageSize = 10
	cfg.Records.StaffRoles = []string{"admin", "registrar"}
	cfg.Records.GPAMin = 0.0
	cfg.Records.GPAMax = 4.0
	return cfg
}

// A low-cost codec keeps the suite fast without changing behavior.
func testCodec() *credentials.Codec {
	return credentials.NewCodec(1000)
}

func newStudentService(store *fakeStore) *StudentService {
	return NewStudentService(&fakeStudentRepo{store: store}, testCodec(), testConfig())
}

func TestRegisterStudentThenList(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(newFakeStore())

	student, err := svc.Register(ctx, &dto.RegisterStudentRequest{
		StudentNumber: 1001,
		Name:          "Aya",
		Password:      "pw123",
		GPA:           3.5,
	})
	require.NoError(t, err)
	assert.NotZero(t, student.ID)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)

	got := students[0]
	assert.Equal(t, int64(1001), got.StudentNumber)
	assert.Equal(t, 3.5, got.GPA)
	assert.NotEqual(t, "pw123", got.PasswordHash)
	assert.NotEmpty(t, got.PasswordSalt)
}

func TestRegisterStudentDuplicateNumber(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(newFakeStore())

	_, err := svc.Register(ctx, &dto.RegisterStudentRequest{StudentNumber: 1001, Name: "Aya", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterStudentRequest{StudentNumber: 1001, Name: "Basel", Password: "pw456"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 1, "a colliding create must never overwrite")
}

func TestRegisterStudentValidation(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(newFakeStore())

	tests := []struct {
		name string
		req  *dto.RegisterStudentRequest
	}{
		{name: "missing name", req: &dto.RegisterStudentRequest{StudentNumber: 1, Name: "  ", Password: "pw"}},
		{name: "non-positive number", req: &dto.RegisterStudentRequest{StudentNumber: 0, Name: "Aya", Password: "pw"}},
		{name: "empty password", req: &dto.RegisterStudentRequest{StudentNumber: 1, Name: "Aya", Password: ""}},
		{name: "gpa above range", req: &dto.RegisterStudentRequest{StudentNumber: 1, Name: "Aya", Password: "pw", GPA: 4.5}},
		{name: "gpa below range", req: &dto.RegisterStudentRequest{StudentNumber: 1, Name: "Aya", Password: "pw", GPA: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	students, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestRemoveStudentTwice(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(newFakeStore())

	student, err := svc.Register(ctx, &dto.RegisterStudentRequest{StudentNumber: 1001, Name: "Aya", Password: "pw123"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, student.ID))

	err = svc.Remove(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "a second delete must distinguish already-gone from succeeded")
}

func TestSetSubjectsRejectsDanglingReference(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newStudentService(store)
	subjects := NewSubjectService(&fakeSubjectRepo{store: store})

	student, err := svc.Register(ctx, &dto.RegisterStudentRequest{StudentNumber: 1001, Name: "Aya", Password: "pw123"})
	require.NoError(t, err)

	subject, err := subjects.Create(ctx, &dto.CreateSubjectRequest{Code: "CS101", Name: "Intro", CreditHours: 3})
	require.NoError(t, err)

	_, err = svc.SetRequestedSubjects(ctx, student.ID, []int64{subject.ID, subject.ID + 100})
	assert.ErrorIs(t, err, apperrors.ErrDanglingReference)

	// No partial write
	got, err := svc.Get(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RequestedSubjectIDs)
}

func TestCompletedAndRequestedStayDisjoint(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newStudentService(store)
	subjects := NewSubjectService(&fakeSubjectRepo{store: store})

	student, err := svc.Register(ctx, &dto.RegisterStudentRequest{StudentNumber: 1001, Name: "Aya", Password: "pw123"})
	require.NoError(t, err)

	subject, err := subjects.Create(ctx, &dto.CreateSubjectRequest{Code: "CS101", Name: "Intro", CreditHours: 3})
	require.NoError(t, err)

	_, err = svc.SetCompletedSubjects(ctx, student.ID, []int64{subject.ID})
	require.NoError(t, err)

	_, err = svc.SetRequestedSubjects(ctx, student.ID, []int64{subject.ID})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "a completed subject cannot be requested")
}

func TestAssignDepartment(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newStudentService(store)
	departments := NewDepartmentService(&fakeDepartmentRepo{store: store})

	student, err := svc.Register(ctx, &dto.RegisterStudentRequest{StudentNumber: 1001, Name: "Aya", Password: "pw123"})
	require.NoError(t, err)

	department, err := departments.Create(ctx, &dto.CreateDepartmentRequest{Name: "Computer Engineering", Code: "CENG"})
	require.NoError(t, err)

	require.NoError(t, svc.AssignDepartment(ctx, student.ID, &department.ID))

	got, err := svc.Get(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DepartmentID)
	assert.Equal(t, department.ID, *got.DepartmentID)

	// Clearing membership is allowed
	require.NoError(t, svc.AssignDepartment(ctx, student.ID, nil))

	missing := department.ID + 99
	err = svc.AssignDepartment(ctx, student.ID, &missing)
	assert.ErrorIs(t, err, apperrors.ErrDanglingReference)
}
