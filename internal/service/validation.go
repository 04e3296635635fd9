package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserID accepts a JSON number or a numeric string
type UserID int64

func (id *UserID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err = json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("user id must be a number or a numeric string")
		}
		n = json.Number(strings.TrimSpace(s))
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return fmt.Errorf("user id must be an integer: %w", err)
	}
	*id = UserID(v)
	return nil
}

type CostInput struct {
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=food health housing sports education"`
	UserID      *UserID  `json:"userid" validate:"required,gt=0"`
	Sum         *float64 `json:"sum" validate:"required"`
	Date        string   `json:"date"`
}

type UserInput struct {
	ID            *UserID `json:"id" validate:"required,gt=0"`
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Birthday      string  `json:"birthday"`
	MaritalStatus string  `json:"marital_status"`
}

// ReportQuery holds the raw query parameters of a monthly report request
type ReportQuery struct {
	ID    string `json:"id" validate:"required"`
	Year  string `json:"year" validate:"required"`
	Month string `json:"month" validate:"required"`
}

// NewValidator returns a validator reporting fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs struct validation and turns the first failure into a ValidationError
func check(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", input, err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return invalid("Missing required fields")
	case "oneof":
		return invalid("Invalid %s", fe.Field())
	case "gt":
		return invalid("%s must be a positive integer", fe.Field())
	default:
		return invalid("Invalid %s", fe.Field())
	}
}
