package services

import (
	"context"
	"fmt"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/pkg/apperrors"
)

// fakeStore is the in-memory persistence fake the service tests run against.
// It mirrors the store contract: unique-key conflicts, dangling-reference
// rejection, NotFound on missing targets, and identifiers that are never
// reused.
type fakeStore struct {
	students    map[int64]*models.Student
	staff       map[int64]*models.Staff
	subjects    map[int64]*models.Subject
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students:    make(map[int64]*models.Student),
		staff:       make(map[int64]*models.Staff),
		subjects:    make(map[int64]*models.Subject),
		departments: make(map[int64]*models.Department),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

type fakeStudentRepo struct{ store *fakeStore }

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, existing := range r.store.students {
		if existing.StudentNumber == student.StudentNumber {
			return apperrors.NewConflictError("student number already exists")
		}
	}
	if student.DepartmentID != nil {
		if _, ok := r.store.departments[*student.DepartmentID]; !ok {
			return apperrors.NewDanglingReferenceError("department does not exist")
		}
	}
	student.ID = r.store.id()
	copied := *student
	r.store.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.store.students[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) GetByStudentNumber(_ context.Context, number int64) (*models.Student, error) {
	for _, student := range r.store.students {
		if student.StudentNumber == number {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range r.store.students {
		copied := *student
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.students[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.students, id)
	return nil
}

func (r *fakeStudentRepo) replaceSubjects(id int64, subjectIDs []int64, completed bool) error {
	student, ok := r.store.students[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	for _, subjectID := range subjectIDs {
		if _, ok := r.store.subjects[subjectID]; !ok {
			return apperrors.NewDanglingReferenceError(fmt.Sprintf("subject %d does not exist", subjectID))
		}
	}
	if completed {
		student.CompletedSubjectIDs = append([]int64(nil), subjectIDs...)
	} else {
		student.RequestedSubjectIDs = append([]int64(nil), subjectIDs...)
	}
	return nil
}

func (r *fakeStudentRepo) ReplaceCompletedSubjects(_ context.Context, id int64, subjectIDs []int64) error {
	return r.replaceSubjects(id, subjectIDs, true)
}

func (r *fakeStudentRepo) ReplaceRequestedSubjects(_ context.Context, id int64, subjectIDs []int64) error {
	return r.replaceSubjects(id, subjectIDs, false)
}

func (r *fakeStudentRepo) SetDepartment(_ context.Context, id int64, departmentID *int64) error {
	student, ok := r.store.students[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if departmentID != nil {
		if _, ok := r.store.departments[*departmentID]; !ok {
			return apperrors.NewDanglingReferenceError("department does not exist")
		}
	}
	student.DepartmentID = departmentID
	return nil
}

type fakeStaffRepo struct{ store *fakeStore }

func (r *fakeStaffRepo) Create(_ context.Context, staff *models.Staff) error {
	for _, existing := range r.store.staff {
		if existing.Email == staff.Email {
			return apperrors.NewConflictError("email already exists")
		}
	}
	staff.ID = r.store.id()
	copied := *staff
	r.store.staff[staff.ID] = &copied
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	staff, ok := r.store.staff[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *staff
	return &copied, nil
}

func (r *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	for _, staff := range r.store.staff {
		if staff.Email == email {
			copied := *staff
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeStaffRepo) GetAll(_ context.Context) ([]*models.Staff, error) {
	var out []*models.Staff
	for _, staff := range r.store.staff {
		copied := *staff
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.staff[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.staff, id)
	return nil
}

type fakeSubjectRepo struct{ store *fakeStore }

func (r *fakeSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	for _, existing := range r.store.subjects {
		if existing.Code == subject.Code {
			return apperrors.NewConflictError("subject code already exists")
		}
	}
	// All prerequisites are checked before anything is written, matching the
	// transactional no-partial-record guarantee.
	for _, prereqID := range subject.PrerequisiteIDs {
		if _, ok := r.store.subjects[prereqID]; !ok {
			return apperrors.NewDanglingReferenceError(fmt.Sprintf("prerequisite subject %d does not exist", prereqID))
		}
	}
	subject.ID = r.store.id()
	copied := *subject
	r.store.subjects[subject.ID] = &copied
	return nil
}

func (r *fakeSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	subject, ok := r.store.subjects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *subject
	return &copied, nil
}

func (r *fakeSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	var out []*models.Subject
	for _, subject := range r.store.subjects {
		copied := *subject
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSubjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.subjects[id]; !ok {
		return apperrors.ErrNotFound
	}
	for _, subject := range r.store.subjects {
		for _, prereqID := range subject.PrerequisiteIDs {
			if prereqID == id {
				return apperrors.NewConflictError("subject is still referenced and cannot be deleted")
			}
		}
	}
	for _, student := range r.store.students {
		for _, sets := range [][]int64{student.CompletedSubjectIDs, student.RequestedSubjectIDs} {
			for _, subjectID := range sets {
				if subjectID == id {
					return apperrors.NewConflictError("subject is still referenced and cannot be deleted")
				}
			}
		}
	}
	delete(r.store.subjects, id)
	return nil
}

type fakeDepartmentRepo struct{ store *fakeStore }

func (r *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	for _, existing := range r.store.departments {
		if existing.Code == department.Code {
			return apperrors.NewConflictError("department code already exists")
		}
	}
	department.ID = r.store.id()
	copied := *department
	r.store.departments[department.ID] = &copied
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := r.store.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *department
	return &copied, nil
}

func (r *fakeDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	var out []*models.Department
	for _, department := range r.store.departments {
		copied := *department
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.departments[id]; !ok {
		return apperrors.ErrNotFound
	}
	for _, student := range r.store.students {
		if student.DepartmentID != nil && *student.DepartmentID == id {
			return apperrors.NewConflictError("department has members and cannot be deleted")
		}
	}
	delete(r.store.departments, id)
	return nil
}
