package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVocabularies(t *testing.T) {
	assert.True(t, LectureTypeOnline.Valid())
	assert.False(t, LectureType("Lecture").Valid())

	assert.True(t, SemesterSummer2.Valid())
	assert.False(t, Semester("winter").Valid())

	assert.True(t, CampusOakland.Valid())
	assert.False(t, CampusTag("").Valid())

	assert.Len(t, CourseTags, 25)
	assert.Len(t, ProfessorTags, 35)
	assert.True(t, IsReviewTag("easy_a"))
	assert.True(t, IsReviewTag("little_to_no_test"))
	assert.False(t, IsCourseTag("tough_grader"))
}

func TestValidReviewTags(t *testing.T) {
	assert.True(t, ValidReviewTags(ReviewKindCourse, nil))
	assert.True(t, ValidReviewTags(ReviewKindCourse, []string{"lab_required", "no_textbook"}))
	assert.False(t, ValidReviewTags(ReviewKindCourse, []string{"lab_required", "caring"}))
	assert.True(t, ValidReviewTags(ReviewKindProfessor, []string{"caring"}))
	assert.False(t, ValidReviewTags(ReviewKindProfessor, []string{"easy_a"}))
}

func TestReviewTarget(t *testing.T) {
	id := uuid.New()

	r := Review{Kind: ReviewKindProfessor}
	r.SetTarget(id)
	assert.Nil(t, r.CourseID)
	if assert.NotNil(t, r.ProfessorID) {
		assert.Equal(t, id, *r.ProfessorID)
	}
	assert.Equal(t, id, r.TargetID())

	r.Kind = ReviewKindCourse
	r.SetTarget(id)
	assert.Nil(t, r.ProfessorID)
	assert.Equal(t, id, r.TargetID())
}

func TestCampusTagConversion(t *testing.T) {
	assert.Nil(t, CampusTagStrings(nil))
	assert.Nil(t, CampusTagsFromStrings(nil))

	tags := []CampusTag{CampusBoston, CampusLondon}
	assert.Equal(t, []string{"boston", "london"}, CampusTagStrings(tags))
	assert.Equal(t, tags, CampusTagsFromStrings([]string{"boston", "london"}))
	assert.Equal(t, []string{}, CampusTagStrings([]CampusTag{}))
}
