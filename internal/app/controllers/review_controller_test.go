package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
)

type ReviewControllerSuite struct {
	suite.Suite
	store  *mockReviewStore
	router *gin.Engine
}

func (s *ReviewControllerSuite) SetupTest() {
	s.store = new(mockReviewStore)
	c := NewReviewController(s.store)

	s.router = gin.New()
	s.router.GET("/reviews", c.ListReviews)
	s.router.POST("/reviews", c.CreateReview)
	s.router.GET("/reviews/:id", c.GetReview)
	s.router.PATCH("/reviews/:id", c.PatchReview)
	s.router.DELETE("/reviews/:id", c.DeleteReview)
}

func TestReviewControllerSuite(t *testing.T) {
	suite.Run(t, new(ReviewControllerSuite))
}

func (s *ReviewControllerSuite) TestCreateCourseReview() {
	courseID := uuid.New()
	body := `{"course_id":"` + courseID.String() + `","rating":4,"review_text":"Solid course","tags":["exam_heavy"]}`

	s.store.On("Create", mock.Anything, mock.MatchedBy(func(in dto.CreateReviewRequest) bool {
		return in.CourseID != nil && *in.CourseID == courseID && in.ProfessorID == nil && in.Rating == 4
	})).Return(&models.Review{ID: uuid.New(), Kind: models.ReviewKindCourse, CourseID: &courseID, Rating: 4}, nil)

	w := performRequest(s.router, http.MethodPost, "/reviews", body)

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"type":"course"`)
	s.NotContains(w.Body.String(), "professor_id")
	s.store.AssertExpectations(s.T())
}

func (s *ReviewControllerSuite) TestCreateRejectsBothTargets() {
	body := `{"course_id":"` + uuid.NewString() + `","professor_id":"` + uuid.NewString() + `","rating":4,"review_text":"x"}`

	w := performRequest(s.router, http.MethodPost, "/reviews", body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("exactly one of course_id or professor_id is required", decodeError(s.T(), w.Body.Bytes()).Message)
	s.store.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ReviewControllerSuite) TestCreateRejectsMissingTarget() {
	w := performRequest(s.router, http.MethodPost, "/reviews", `{"rating":4,"review_text":"x"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.store.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ReviewControllerSuite) TestCreateRejectsTagsOfOtherKind() {
	// tough_grader belongs to the professor vocabulary only
	body := `{"course_id":"` + uuid.NewString() + `","rating":3,"review_text":"x","tags":["tough_grader"]}`

	w := performRequest(s.router, http.MethodPost, "/reviews", body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.store.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ReviewControllerSuite) TestCreateRejectsRatingOutOfRange() {
	for _, rating := range []string{"0", "6"} {
		body := `{"professor_id":"` + uuid.NewString() + `","rating":` + rating + `,"review_text":"x"}`

		w := performRequest(s.router, http.MethodPost, "/reviews", body)

		s.Equal(http.StatusBadRequest, w.Code, rating)
		s.Equal("unable to parse input for create review", decodeError(s.T(), w.Body.Bytes()).Message)
	}
	s.store.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ReviewControllerSuite) TestGetMissingReview() {
	id := uuid.New()
	s.store.On("GetByID", mock.Anything, id).Return(nil, dberrors.NewNotFound("review", "id", id.String()))

	w := performRequest(s.router, http.MethodGet, "/reviews/"+id.String(), "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReviewControllerSuite) TestPatchEmptyBody() {
	w := performRequest(s.router, http.MethodPatch, "/reviews/"+uuid.NewString(), `{}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.store.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReviewControllerSuite) TestPatchRating() {
	id := uuid.New()
	rating := 2
	s.store.On("Patch", mock.Anything, id, dto.PatchReviewRequest{Rating: &rating}).
		Return(&models.Review{ID: id, Kind: models.ReviewKindProfessor, Rating: 2}, nil)

	w := performRequest(s.router, http.MethodPatch, "/reviews/"+id.String(), `{"rating":2}`)

	s.Equal(http.StatusOK, w.Code)
	s.store.AssertExpectations(s.T())
}

func (s *ReviewControllerSuite) TestDeleteMissingReview() {
	id := uuid.New()
	s.store.On("Delete", mock.Anything, id).Return(dberrors.NewNotFound("review", "id", id.String()))

	w := performRequest(s.router, http.MethodDelete, "/reviews/"+id.String(), "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReviewControllerSuite) TestDeleteReview() {
	id := uuid.New()
	s.store.On("Delete", mock.Anything, id).Return(nil)

	w := performRequest(s.router, http.MethodDelete, "/reviews/"+id.String(), "")

	s.Equal(http.StatusNoContent, w.Code)
	assert.Empty(s.T(), w.Body.String())
}
