package models

// CampusTag describes where a professor teaches.
type CampusTag string

const (
	CampusBoston  CampusTag = "boston"
	CampusOakland CampusTag = "oakland"
	CampusLondon  CampusTag = "london"
)

// CourseTags is the vocabulary for course review tags.
var CourseTags = []string{
	"easy_a", "challenging", "fast_paced", "slow_paced", "time_consuming",
	"exam_heavy", "project_heavy", "quiz_heavy", "participation_based",
	"presentation_heavy", "coding_heavy", "math_heavy", "reading_heavy",
	"writing_heavy", "group_projects", "solo_projects", "well_structured",
	"poorly_structured", "lecture_based", "discussion_based", "lab_required",
	"mandatory_attendance", "optional_attendance", "mandatory_textbook", "no_textbook",
}

// ProfessorTags is the vocabulary for professor review tags.
var ProfessorTags = []string{
	"clear_lectures", "confusing_lectures", "organized", "disorganized", "engaging",
	"boring", "reads_slides", "fair_grading", "tough_grader", "lenient_grader",
	"unclear_rubrics", "curve_based", "no_curve", "tricky_exams", "straightforward_exams",
	"heavy_workload", "manageable_workload", "busywork", "high_expectations",
	"low_expectations", "approachable", "unapproachable", "responsive", "slow_responder",
	"caring", "intimidating", "passionate", "monotone", "attendance_required",
	"attendance_optional", "strict_deadlines", "flexible_deadlines", "extra_credit",
	"no_extra_credit", "little_to_no_test",
}

var (
	courseTagSet    = toSet(CourseTags)
	professorTagSet = toSet(ProfessorTags)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (t CampusTag) Valid() bool {
	switch t {
	case CampusBoston, CampusOakland, CampusLondon:
		return true
	}
	return false
}

func IsCourseTag(tag string) bool {
	_, ok := courseTagSet[tag]
	return ok
}

func IsProfessorTag(tag string) bool {
	_, ok := professorTagSet[tag]
	return ok
}

// IsReviewTag reports whether tag belongs to either review vocabulary.
func IsReviewTag(tag string) bool {
	return IsCourseTag(tag) || IsProfessorTag(tag)
}

// ValidReviewTags reports whether every tag belongs to the vocabulary of kind.
func ValidReviewTags(kind ReviewKind, tags []string) bool {
	valid := IsCourseTag
	if kind == ReviewKindProfessor {
		valid = IsProfessorTag
	}
	for _, tag := range tags {
		if !valid(tag) {
			return false
		}
	}
	return true
}

// CampusTagStrings converts campus tags to their storage representation.
// A nil slice stays nil.
func CampusTagStrings(tags []CampusTag) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// CampusTagsFromStrings is the inverse of CampusTagStrings.
func CampusTagsFromStrings(tags []string) []CampusTag {
	if tags == nil {
		return nil
	}
	out := make([]CampusTag, len(tags))
	for i, t := range tags {
		out[i] = CampusTag(t)
	}
	return out
}
