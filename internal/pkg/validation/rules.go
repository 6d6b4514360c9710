package validation

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/courseboard/internal/app/models"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Rules maps every custom binding tag to its check.
var Rules = map[string]validator.Func{
	"trimmed":     isTrimmed,
	"lecturetype": isLectureType,
	"semester":    isSemester,
	"campustag":   isCampusTag,
	"reviewtag":   isReviewTag,
}

// Register installs the custom rules on v.
func Register(v *validator.Validate) error {
	for tag, fn := range Rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGinValidators installs the custom rules on gin's binding engine.
// Safe to call more than once.
func RegisterGinValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = Register(v)
	})
	return registerErr
}

// isTrimmed rejects strings with leading or trailing whitespace.
func isTrimmed(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}

func isLectureType(fl validator.FieldLevel) bool {
	return models.LectureType(fl.Field().String()).Valid()
}

func isSemester(fl validator.FieldLevel) bool {
	return models.Semester(fl.Field().String()).Valid()
}

func isCampusTag(fl validator.FieldLevel) bool {
	return models.CampusTag(fl.Field().String()).Valid()
}

func isReviewTag(fl validator.FieldLevel) bool {
	return models.IsReviewTag(fl.Field().String())
}
