package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/mathadventures/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("difficulty", validateDifficulty)
}

func validateDifficulty(fl validator.FieldLevel) bool {
	_, ok := models.ParseDifficulty(fl.Field().String())
	return ok
}

type startSessionRequest struct {
	Difficulty *string `json:"difficulty" validate:"omitempty,difficulty"`
}

func (r *startSessionRequest) Validate() error {
	return validate.Struct(r)
}

type puzzleRequest struct {
	Difficulty *string `json:"difficulty" validate:"omitempty,difficulty"`
}

func (r *puzzleRequest) Validate() error {
	return validate.Struct(r)
}

type answerRequest struct {
	PuzzleID     string   `json:"puzzle_id" validate:"required,max=64"`
	UserAnswer   *float64 `json:"user_answer" validate:"required"`
	ResponseTime *float64 `json:"response_time" validate:"omitempty,gte=0"`
}

func (r *answerRequest) Validate() error {
	return validate.Struct(r)
}

// parseDifficulty normalizes an already validated optional tier.
func parseDifficulty(s *string) *models.Difficulty {
	if s == nil {
		return nil
	}
	d, ok := models.ParseDifficulty(*s)
	if !ok {
		return nil
	}
	return &d
}
