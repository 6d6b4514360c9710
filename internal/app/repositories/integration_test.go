//go:build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/app/repositories"
	"github.com/yigit/courseboard/internal/db"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
	"github.com/yigit/courseboard/internal/pkg/helpers"
	"github.com/yigit/courseboard/internal/testinfra"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx          context.Context
	database     *db.PostgresDB
	repos        *repositories.Repositories
	departmentID int
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.database = testinfra.NewPostgres(s.T())
	s.repos = repositories.NewRepositories(s.database.Pool)

	departments, err := s.repos.DepartmentRepository.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(departments, 5)
	s.departmentID = departments[0].ID
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.database.Pool.Exec(s.ctx, `TRUNCATE threads, course_reviews, professor_reviews, reviews, courses, professors CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) count(table string) int {
	var n int
	s.Require().NoError(s.database.Pool.QueryRow(s.ctx, "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func (s *RepositoryIntegrationSuite) createCourse(code int) *models.Course {
	course, err := s.repos.CourseRepository.Create(s.ctx, dto.CreateCourseRequest{
		Name:         "Course",
		DepartmentID: s.departmentID,
		CourseCode:   code,
		Description:  "desc",
		NumCredits:   4,
		LectureType:  models.LectureTypeLecture,
	})
	s.Require().NoError(err)
	return course
}

func (s *RepositoryIntegrationSuite) createProfessor() *models.Professor {
	professor, err := s.repos.ProfessorRepository.Create(s.ctx, dto.CreateProfessorRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Tags:      []models.CampusTag{models.CampusBoston},
	})
	s.Require().NoError(err)
	return professor
}

func (s *RepositoryIntegrationSuite) createReview(req dto.CreateReviewRequest) *models.Review {
	review, err := s.repos.ReviewRepository.Create(s.ctx, req)
	s.Require().NoError(err)
	return review
}

func (s *RepositoryIntegrationSuite) TestCourseRoundTrip() {
	created := s.createCourse(1200)

	got, err := s.repos.CourseRepository.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal(s.departmentID, got.Department.ID)
	s.NotEmpty(got.Department.Name)
	s.Equal(1200, got.CourseCode)

	credits := 2
	patched, err := s.repos.CourseRepository.Patch(s.ctx, created.ID, dto.PatchCourseRequest{NumCredits: &credits})
	s.Require().NoError(err)
	s.Equal(2, patched.NumCredits)
	s.Equal("Course", patched.Name)
	s.False(patched.UpdatedAt.Before(created.UpdatedAt))

	s.Require().NoError(s.repos.CourseRepository.Delete(s.ctx, created.ID))
	_, err = s.repos.CourseRepository.GetByID(s.ctx, created.ID)
	s.True(dberrors.IsNotFound(err))

	// deleting again is not an error
	s.NoError(s.repos.CourseRepository.Delete(s.ctx, created.ID))
}

func (s *RepositoryIntegrationSuite) TestCourseUnknownDepartment() {
	_, err := s.repos.CourseRepository.Create(s.ctx, dto.CreateCourseRequest{
		Name:         "Orphan",
		DepartmentID: 9999,
		CourseCode:   1500,
		Description:  "desc",
		NumCredits:   3,
		LectureType:  models.LectureTypeLab,
	})

	s.ErrorIs(err, apperrors.ErrBadRequest)
	s.EqualError(err, "invalid reference")
}

func (s *RepositoryIntegrationSuite) TestCourseCheckConstraint() {
	_, err := s.repos.CourseRepository.Create(s.ctx, dto.CreateCourseRequest{
		Name:         "Too many credits",
		DepartmentID: s.departmentID,
		CourseCode:   1500,
		Description:  "desc",
		NumCredits:   9,
		LectureType:  models.LectureTypeOnline,
	})

	s.EqualError(err, "violated a check constraint")
}

func (s *RepositoryIntegrationSuite) TestCourseListPagination() {
	for code := 1000; code < 1005; code++ {
		s.createCourse(code)
	}

	page, err := s.repos.CourseRepository.List(s.ctx, helpers.Pagination{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Len(page, 2)

	past, err := s.repos.CourseRepository.List(s.ctx, helpers.Pagination{Page: 10, Limit: 2})
	s.Require().NoError(err)
	s.Empty(past)
}

func (s *RepositoryIntegrationSuite) TestCourseDeleteCascadesToReviewsAndThreads() {
	course := s.createCourse(2000)
	review := s.createReview(dto.CreateReviewRequest{CourseID: &course.ID, Rating: 5, ReviewText: "great"})
	_, err := s.repos.ThreadRepository.Create(s.ctx, models.ReviewKindCourse, review.ID,
		dto.CreateThreadRequest{StudentID: uuid.New(), Content: "agreed"})
	s.Require().NoError(err)

	s.Require().NoError(s.repos.CourseRepository.Delete(s.ctx, course.ID))

	s.Zero(s.count("reviews"))
	s.Zero(s.count("course_reviews"))
	s.Zero(s.count("threads"))
}

func (s *RepositoryIntegrationSuite) TestCourseDeleteWaitsForConcurrentReview() {
	course := s.createCourse(2100)

	// An open transaction holding a fresh course review keeps the course
	// row key-share locked until it commits.
	tx, err := s.database.Pool.Begin(s.ctx)
	s.Require().NoError(err)
	var reviewID uuid.UUID
	s.Require().NoError(tx.QueryRow(s.ctx, `INSERT INTO reviews DEFAULT VALUES RETURNING id`).Scan(&reviewID))
	_, err = tx.Exec(s.ctx,
		`INSERT INTO course_reviews (review_id, course_id, rating, review_text) VALUES ($1, $2, 4, 'racing')`,
		reviewID, course.ID)
	s.Require().NoError(err)

	done := make(chan error, 1)
	go func() {
		done <- s.repos.CourseRepository.Delete(s.ctx, course.ID)
	}()

	s.Require().Eventually(func() bool {
		var waiting int
		err := s.database.Pool.QueryRow(s.ctx,
			`SELECT count(*) FROM pg_stat_activity WHERE wait_event_type = 'Lock'`).Scan(&waiting)
		return err == nil && waiting > 0
	}, 10*time.Second, 50*time.Millisecond)

	s.Require().NoError(tx.Commit(s.ctx))
	s.Require().NoError(<-done)

	s.Zero(s.count("courses"))
	s.Zero(s.count("course_reviews"))
	s.Zero(s.count("reviews"), "review parent must not outlive its course child")
}

func (s *RepositoryIntegrationSuite) TestProfessorDeleteCascadesToReviews() {
	professor := s.createProfessor()
	s.createReview(dto.CreateReviewRequest{ProfessorID: &professor.ID, Rating: 3, ReviewText: "ok", Tags: []string{"caring"}})

	s.Require().NoError(s.repos.ProfessorRepository.Delete(s.ctx, professor.ID))

	s.Zero(s.count("reviews"))
	s.Zero(s.count("professor_reviews"))
}

func (s *RepositoryIntegrationSuite) TestProfessorTags() {
	professor := s.createProfessor()
	s.Equal([]models.CampusTag{models.CampusBoston}, professor.Tags)

	cleared := []models.CampusTag{}
	patched, err := s.repos.ProfessorRepository.Patch(s.ctx, professor.ID, dto.PatchProfessorRequest{Tags: &cleared})
	s.Require().NoError(err)
	s.Empty(patched.Tags)
}

func (s *RepositoryIntegrationSuite) TestReviewLifecycle() {
	course := s.createCourse(3000)
	professor := s.createProfessor()
	student := uuid.New()

	courseReview := s.createReview(dto.CreateReviewRequest{
		StudentID: &student, CourseID: &course.ID, Rating: 4, ReviewText: "fine", Tags: []string{"exam_heavy"},
	})
	professorReview := s.createReview(dto.CreateReviewRequest{
		ProfessorID: &professor.ID, Rating: 2, ReviewText: "meh",
	})

	s.Equal(models.ReviewKindCourse, courseReview.Kind)
	s.Equal(course.ID, courseReview.TargetID())
	s.Equal(&student, courseReview.StudentID)
	s.Nil(professorReview.StudentID)

	got, err := s.repos.ReviewRepository.GetByID(s.ctx, professorReview.ID)
	s.Require().NoError(err)
	s.Equal(models.ReviewKindProfessor, got.Kind)
	s.Equal(professor.ID, got.TargetID())

	all, err := s.repos.ReviewRepository.List(s.ctx, helpers.DefaultPagination())
	s.Require().NoError(err)
	s.Len(all, 2)

	rating := 1
	patched, err := s.repos.ReviewRepository.Patch(s.ctx, courseReview.ID, dto.PatchReviewRequest{Rating: &rating})
	s.Require().NoError(err)
	s.Equal(1, patched.Rating)
	s.Equal("fine", patched.ReviewText)
	s.Equal(models.ReviewKindCourse, patched.Kind)

	_, err = s.repos.ReviewRepository.Patch(s.ctx, uuid.New(), dto.PatchReviewRequest{Rating: &rating})
	s.True(dberrors.IsNotFound(err))

	professorTags := []string{"tough_grader"}
	_, err = s.repos.ReviewRepository.Patch(s.ctx, courseReview.ID, dto.PatchReviewRequest{Tags: &professorTags})
	s.ErrorIs(err, apperrors.ErrBadRequest)

	professorPatched, err := s.repos.ReviewRepository.Patch(s.ctx, professorReview.ID, dto.PatchReviewRequest{Tags: &professorTags})
	s.Require().NoError(err)
	s.Equal(professorTags, professorPatched.Tags)
}

func (s *RepositoryIntegrationSuite) TestReviewCreateRollsBackParent() {
	missingCourse := uuid.New()

	_, err := s.repos.ReviewRepository.Create(s.ctx, dto.CreateReviewRequest{
		CourseID: &missingCourse, Rating: 4, ReviewText: "ghost",
	})

	s.EqualError(err, "invalid reference")
	s.Zero(s.count("reviews"))
}

func (s *RepositoryIntegrationSuite) TestReviewDeleteRemovesThreads() {
	course := s.createCourse(4000)
	review := s.createReview(dto.CreateReviewRequest{CourseID: &course.ID, Rating: 5, ReviewText: "x"})
	for i := 0; i < 3; i++ {
		_, err := s.repos.ThreadRepository.Create(s.ctx, models.ReviewKindCourse, review.ID,
			dto.CreateThreadRequest{StudentID: uuid.New(), Content: "reply"})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.repos.ReviewRepository.Delete(s.ctx, review.ID))

	threads, err := s.repos.ThreadRepository.List(s.ctx, models.ReviewKindCourse, review.ID, helpers.DefaultPagination())
	s.Require().NoError(err)
	s.Empty(threads)
	s.Zero(s.count("threads"))

	err = s.repos.ReviewRepository.Delete(s.ctx, review.ID)
	s.True(dberrors.IsNotFound(err))
}

func (s *RepositoryIntegrationSuite) TestThreadsAreScopedToReviewKind() {
	professor := s.createProfessor()
	review := s.createReview(dto.CreateReviewRequest{ProfessorID: &professor.ID, Rating: 5, ReviewText: "x"})

	_, err := s.repos.ThreadRepository.Create(s.ctx, models.ReviewKindCourse, review.ID,
		dto.CreateThreadRequest{StudentID: uuid.New(), Content: "wrong place"})
	s.EqualError(err, "invalid reference")

	thread, err := s.repos.ThreadRepository.Create(s.ctx, models.ReviewKindProfessor, review.ID,
		dto.CreateThreadRequest{StudentID: uuid.New(), Content: "right place"})
	s.Require().NoError(err)

	viaCourse, err := s.repos.ThreadRepository.List(s.ctx, models.ReviewKindCourse, review.ID, helpers.DefaultPagination())
	s.Require().NoError(err)
	s.Empty(viaCourse)

	viaProfessor, err := s.repos.ThreadRepository.List(s.ctx, models.ReviewKindProfessor, review.ID, helpers.DefaultPagination())
	s.Require().NoError(err)
	s.Require().Len(viaProfessor, 1)
	s.Equal(thread.ID, viaProfessor[0].ID)

	content := "edited"
	patched, err := s.repos.ThreadRepository.Patch(s.ctx, thread.ID, dto.PatchThreadRequest{Content: &content})
	s.Require().NoError(err)
	s.Equal("edited", patched.Content)

	s.NoError(s.repos.ThreadRepository.Delete(s.ctx, thread.ID))
	s.NoError(s.repos.ThreadRepository.Delete(s.ctx, thread.ID))
}

func TestDepartmentsSeededOnce(t *testing.T) {
	database := testinfra.NewPostgres(t)
	repo := repositories.NewDepartmentRepository(database.Pool)

	inserted, err := repo.EnsureExists(context.Background(), "CS")
	require.NoError(t, err)
	assert.False(t, inserted)

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, departments, 5)
}
