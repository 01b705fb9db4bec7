package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/validation"
)

// In-memory gateway fakes. They mirror the persistence contracts closely
// enough for service-level tests: same error kinds, same ordering, same
// silent-success semantics on update/delete of generated ids.

type fakeStudentRepo struct {
	students map[string]*models.Student
	order    []string
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if _, exists := r.students[student.StudentID]; exists {
		return apperrors.NewDuplicateStudentError(student.StudentID)
	}
	copied := *student
	r.students[student.StudentID] = &copied
	r.order = append(r.order, student.StudentID)
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, studentID string) (*models.Student, error) {
	student, exists := r.students[studentID]
	if !exists {
		return nil, apperrors.NewStudentNotFoundError(studentID)
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, studentID string) (*models.Student, error) {
	student, exists := r.students[studentID]
	if !exists {
		return nil, nil
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, exists := r.students[student.StudentID]; !exists {
		return apperrors.NewStudentNotFoundError(student.StudentID)
	}
	copied := *student
	r.students[student.StudentID] = &copied
	return nil
}

func (r *fakeStudentRepo) UpdateEnrollmentStatus(_ context.Context, studentID string, status models.EnrollmentStatus) error {
	student, exists := r.students[studentID]
	if !exists {
		return apperrors.NewStudentNotFoundError(studentID)
	}
	student.EnrollmentStatus = status
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, studentID string) error {
	if _, exists := r.students[studentID]; !exists {
		return apperrors.NewStudentNotFoundError(studentID)
	}
	delete(r.students, studentID)
	for i, id := range r.order {
		if id == studentID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	result := make([]*models.Student, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.students[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeStudentRepo) GetAllSorted(ctx context.Context, criterion models.SortCriterion) ([]*models.Student, error) {
	result, _ := r.GetAll(ctx)
	sort.SliceStable(result, func(i, j int) bool {
		switch criterion {
		case models.SortByName:
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		case models.SortByAge:
			return result[i].Age < result[j].Age
		case models.SortByCourse:
			return strings.ToLower(result[i].Course) < strings.ToLower(result[j].Course)
		default:
			return result[i].StudentID < result[j].StudentID
		}
	})
	return result, nil
}

func (r *fakeStudentRepo) SearchByName(ctx context.Context, name string) ([]*models.Student, error) {
	all, _ := r.GetAll(ctx)
	var result []*models.Student
	for _, student := range all {
		if strings.Contains(strings.ToLower(student.Name), strings.ToLower(name)) {
			result = append(result, student)
		}
	}
	return result, nil
}

func (r *fakeStudentRepo) Exists(_ context.Context, studentID string) (bool, error) {
	_, exists := r.students[studentID]
	return exists, nil
}

func (r *fakeStudentRepo) MaxIDNumber(_ context.Context) (int, error) {
	max := 0
	for id := range r.students {
		m := validation.CompiledPatterns.StudentID.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err == nil && n > max {
			max = n
		}
	}
	return max, nil
}

type fakeAttendanceRepo struct {
	records []*models.AttendanceRecord
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{}
}

func (r *fakeAttendanceRepo) Insert(_ context.Context, studentID, date string, status models.AttendanceStatus) (int64, error) {
	r.nextID++
	r.records = append(r.records, &models.AttendanceRecord{
		ID:        r.nextID,
		StudentID: studentID,
		Date:      date,
		Status:    status,
	})
	return r.nextID, nil
}

func (r *fakeAttendanceRepo) GetByStudent(_ context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	var result []*models.AttendanceRecord
	for _, record := range r.records {
		if record.StudentID == studentID {
			copied := *record
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (r *fakeAttendanceRepo) GetAll(_ context.Context) ([]*models.AttendanceRecord, error) {
	result := make([]*models.AttendanceRecord, 0, len(r.records))
	for _, record := range r.records {
		copied := *record
		result = append(result, &copied)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (r *fakeAttendanceRepo) GetByDate(_ context.Context, date string) ([]*models.AttendanceRecord, error) {
	var result []*models.AttendanceRecord
	for _, record := range r.records {
		if record.Date == date {
			copied := *record
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) Counts(_ context.Context, studentID string) (int64, int64, error) {
	var present, total int64
	for _, record := range r.records {
		if record.StudentID != studentID {
			continue
		}
		total++
		if record.Status == models.AttendancePresent {
			present++
		}
	}
	return present, total, nil
}

func (r *fakeAttendanceRepo) UpdateStatus(_ context.Context, id int64, status models.AttendanceStatus) error {
	for _, record := range r.records {
		if record.ID == id {
			record.Status = status
			return nil
		}
	}
	// Missing ids succeed silently, matching the store
	return nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id int64) error {
	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePaymentRepo struct {
	payments []*models.PaymentRecord
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) Insert(_ context.Context, studentID string, amount float64, date, description string) (int64, error) {
	r.nextID++
	r.payments = append(r.payments, &models.PaymentRecord{
		ID:          r.nextID,
		StudentID:   studentID,
		Amount:      amount,
		Date:        date,
		Description: description,
	})
	return r.nextID, nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id int64) (*models.PaymentRecord, error) {
	for _, payment := range r.payments {
		if payment.ID == id {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, apperrors.NewPaymentNotFoundError(id)
}

func (r *fakePaymentRepo) GetByStudent(_ context.Context, studentID string) ([]*models.PaymentRecord, error) {
	var result []*models.PaymentRecord
	for _, payment := range r.payments {
		if payment.StudentID == studentID {
			copied := *payment
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (r *fakePaymentRepo) GetAll(_ context.Context) ([]*models.PaymentRecord, error) {
	result := make([]*models.PaymentRecord, 0, len(r.payments))
	for _, payment := range r.payments {
		copied := *payment
		result = append(result, &copied)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (r *fakePaymentRepo) TotalPaid(_ context.Context, studentID string) (float64, error) {
	var total float64
	for _, payment := range r.payments {
		if payment.StudentID == studentID {
			total += payment.Amount
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, id int64, amount float64, description string) error {
	for _, payment := range r.payments {
		if payment.ID == id {
			payment.Amount = amount
			payment.Description = description
			return nil
		}
	}
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id int64) error {
	for i, payment := range r.payments {
		if payment.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return nil
}
