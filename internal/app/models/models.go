package models

// LectureType is the delivery format of a course.
type LectureType string

const (
	LectureTypeLecture LectureType = "lecture"
	LectureTypeLab     LectureType = "lab"
	LectureTypeOnline  LectureType = "online"
)

// Valid reports whether t belongs to the lecture type vocabulary.
func (t LectureType) Valid() bool {
	switch t {
	case LectureTypeLecture, LectureTypeLab, LectureTypeOnline:
		return true
	}
	return false
}

// Semester identifies an academic term for trace documents.
type Semester string

const (
	SemesterFall    Semester = "fall"
	SemesterSpring  Semester = "spring"
	SemesterSummer1 Semester = "summer_1"
	SemesterSummer2 Semester = "summer_2"
)

func (s Semester) Valid() bool {
	switch s {
	case SemesterFall, SemesterSpring, SemesterSummer1, SemesterSummer2:
		return true
	}
	return false
}

// ReviewKind discriminates the two review variants. It is implied by which
// child table holds the review's row.
type ReviewKind string

const (
	ReviewKindCourse    ReviewKind = "course"
	ReviewKindProfessor ReviewKind = "professor"
)

func (k ReviewKind) Valid() bool {
	return k == ReviewKindCourse || k == ReviewKindProfessor
}
