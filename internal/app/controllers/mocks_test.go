package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/pkg/filestorage"
	"github.com/yigit/courseboard/internal/pkg/helpers"
	"github.com/yigit/courseboard/internal/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterGinValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// performRequest runs one request through r and returns the recorder.
func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type mockCourseStore struct {
	mock.Mock
}

func (m *mockCourseStore) List(ctx context.Context, p helpers.Pagination) ([]models.Course, error) {
	args := m.Called(ctx, p)
	courses, _ := args.Get(0).([]models.Course)
	return courses, args.Error(1)
}

func (m *mockCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseStore) Create(ctx context.Context, input dto.CreateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, input)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseStore) Patch(ctx context.Context, id uuid.UUID, input dto.PatchCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, id, input)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfessorStore struct {
	mock.Mock
}

func (m *mockProfessorStore) List(ctx context.Context, p helpers.Pagination) ([]models.Professor, error) {
	args := m.Called(ctx, p)
	professors, _ := args.Get(0).([]models.Professor)
	return professors, args.Error(1)
}

func (m *mockProfessorStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error) {
	args := m.Called(ctx, id)
	professor, _ := args.Get(0).(*models.Professor)
	return professor, args.Error(1)
}

func (m *mockProfessorStore) Create(ctx context.Context, input dto.CreateProfessorRequest) (*models.Professor, error) {
	args := m.Called(ctx, input)
	professor, _ := args.Get(0).(*models.Professor)
	return professor, args.Error(1)
}

func (m *mockProfessorStore) Patch(ctx context.Context, id uuid.UUID, input dto.PatchProfessorRequest) (*models.Professor, error) {
	args := m.Called(ctx, id, input)
	professor, _ := args.Get(0).(*models.Professor)
	return professor, args.Error(1)
}

func (m *mockProfessorStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockReviewStore struct {
	mock.Mock
}

func (m *mockReviewStore) List(ctx context.Context, p helpers.Pagination) ([]models.Review, error) {
	args := m.Called(ctx, p)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewStore) Create(ctx context.Context, input dto.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, input)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewStore) Patch(ctx context.Context, id uuid.UUID, input dto.PatchReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, id, input)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockThreadStore struct {
	mock.Mock
}

func (m *mockThreadStore) List(ctx context.Context, kind models.ReviewKind, reviewID uuid.UUID, p helpers.Pagination) ([]models.Thread, error) {
	args := m.Called(ctx, kind, reviewID, p)
	threads, _ := args.Get(0).([]models.Thread)
	return threads, args.Error(1)
}

func (m *mockThreadStore) Create(ctx context.Context, kind models.ReviewKind, reviewID uuid.UUID, input dto.CreateThreadRequest) (*models.Thread, error) {
	args := m.Called(ctx, kind, reviewID, input)
	thread, _ := args.Get(0).(*models.Thread)
	return thread, args.Error(1)
}

func (m *mockThreadStore) Patch(ctx context.Context, id uuid.UUID, input dto.PatchThreadRequest) (*models.Thread, error) {
	args := m.Called(ctx, id, input)
	thread, _ := args.Get(0).(*models.Thread)
	return thread, args.Error(1)
}

func (m *mockThreadStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockDepartmentStore struct {
	mock.Mock
}

func (m *mockDepartmentStore) List(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	departments, _ := args.Get(0).([]models.Department)
	return departments, args.Error(1)
}

func (m *mockDepartmentStore) GetByID(ctx context.Context, id int) (*models.Department, error) {
	args := m.Called(ctx, id)
	department, _ := args.Get(0).(*models.Department)
	return department, args.Error(1)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockDocumentStore struct {
	mock.Mock
}

func (m *mockDocumentStore) Upload(ctx context.Context, key string, body io.Reader, size int64) error {
	return m.Called(ctx, key, body, size).Error(0)
}

func (m *mockDocumentStore) Fetch(ctx context.Context, key string) (*filestorage.Document, error) {
	args := m.Called(ctx, key)
	doc, _ := args.Get(0).(*filestorage.Document)
	return doc, args.Error(1)
}
