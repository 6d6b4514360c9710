package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/courseboard/internal/app/controllers"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/middleware"
)

// Controllers groups every controller the router mounts.
type Controllers struct {
	Course          *controllers.CourseController
	Professor       *controllers.ProfessorController
	Review          *controllers.ReviewController
	CourseThread    *controllers.ThreadController
	ProfessorThread *controllers.ThreadController
	Department      *controllers.DepartmentController
	TraceDocument   *controllers.TraceDocumentController
	Health          *controllers.HealthController
}

// NewControllers wires the controllers onto their stores.
func NewControllers(
	courses controllers.CourseStore,
	professors controllers.ProfessorStore,
	reviews controllers.ReviewStore,
	threads controllers.ThreadStore,
	departments controllers.DepartmentStore,
	documents controllers.DocumentStore,
	db controllers.Pinger,
) *Controllers {
	return &Controllers{
		Course:          controllers.NewCourseController(courses),
		Professor:       controllers.NewProfessorController(professors),
		Review:          controllers.NewReviewController(reviews),
		CourseThread:    controllers.NewThreadController(threads, models.ReviewKindCourse),
		ProfessorThread: controllers.NewThreadController(threads, models.ReviewKindProfessor),
		Department:      controllers.NewDepartmentController(departments),
		TraceDocument:   controllers.NewTraceDocumentController(documents),
		Health:          controllers.NewHealthController(db),
	}
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers) {
	router.GET("/ping", c.Health.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(middleware.NoRoute)

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)

	departments := v1.Group("/departments")
	{
		departments.GET("", c.Department.GetAllDepartments)
		departments.GET("/:id", c.Department.GetDepartmentByID)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourse)
		courses.PATCH("/:id", c.Course.PatchCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", c.Professor.ListProfessors)
		professors.POST("", c.Professor.CreateProfessor)
		professors.GET("/:id", c.Professor.GetProfessor)
		professors.PATCH("/:id", c.Professor.PatchProfessor)
		professors.DELETE("/:id", c.Professor.DeleteProfessor)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.GET("", c.Review.ListReviews)
		reviews.POST("", c.Review.CreateReview)
		reviews.GET("/:id", c.Review.GetReview)
		reviews.PATCH("/:id", c.Review.PatchReview)
		reviews.DELETE("/:id", c.Review.DeleteReview)
	}

	// The review segment is :id under both prefixes; gin rejects differently
	// named wildcards at the same position.
	mountThreads(v1.Group("/course-reviews/:id/threads"), c.CourseThread)
	mountThreads(v1.Group("/professor-reviews/:id/threads"), c.ProfessorThread)

	traceDocuments := v1.Group("/trace-documents")
	{
		traceDocuments.GET("", c.TraceDocument.GetTraceDocument)
		traceDocuments.POST("", c.TraceDocument.UploadTraceDocument)
	}
}

func mountThreads(g *gin.RouterGroup, c *controllers.ThreadController) {
	g.GET("", c.ListThreads)
	g.POST("", c.CreateThread)
	g.PATCH("/:thread_id", c.PatchThread)
	g.DELETE("/:thread_id", c.DeleteThread)
}
