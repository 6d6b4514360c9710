package filestorage

import (
	"fmt"

	"github.com/yigit/courseboard/internal/app/models"
)

const traceEvaluationsPrefix = "trace-evaluations"

// BuildKey returns the object key of a trace document:
// trace-evaluations/<department>/<course_code>/<semester>_<year>/<professor_id>.pdf
func BuildKey(k models.TraceDocumentKey) string {
	return fmt.Sprintf("%s/%d/%d/%s_%d/%s.pdf",
		traceEvaluationsPrefix, k.DepartmentID, k.CourseCode, k.Semester, k.Year, k.ProfessorID)
}
