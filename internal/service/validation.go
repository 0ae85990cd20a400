package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Пределы колонок: INT UNSIGNED, DECIMAL(5,2), DECIMAL(14,2)
const (
	maxCount          = math.MaxUint32
	maxFloodLevel     = 1e3
	maxDamageEstimate = 1e12
)

// ValidationError - ошибка ввода на форме: пропущено обязательное поле или значение не приводится к типу.
// Такая ошибка возвращается до обращения к базе данных.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateForm проверяет форму по тегам validate и возвращает первую ошибку как *ValidationError
func validateForm(v *validator.Validate, form any) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("service: could not validate form: %w", err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: "is required"}
	case "oneof":
		return &ValidationError{Field: fe.Field(), Message: "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")}
	case "datetime":
		return &ValidationError{Field: fe.Field(), Message: "must be a date in YYYY-MM-DD format"}
	case "max":
		return &ValidationError{Field: fe.Field(), Message: "must be at most " + fe.Param() + " characters"}
	default:
		return &ValidationError{Field: fe.Field(), Message: "is invalid"}
	}
}

// parseCount приводит поле формы к неотрицательному целому; пустое значение дает 0
func parseCount(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d", uint64(maxCount))}
	}
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be a whole number"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: field, Message: "must not be negative"}
	}
	if n > maxCount {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d", uint64(maxCount))}
	}
	return n, nil
}

// parseAmount приводит поле формы к десятичному числу с двумя знаками; пустое значение дает 0.
// После округления до сотых модуль значения должен быть меньше limit.
func parseAmount(field, raw string, limit float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ValidationError{Field: field, Message: "must be a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: field, Message: "must be a finite number"}
	}
	if math.Abs(math.Round(f*100)/100) >= limit {
		return 0, &ValidationError{Field: field, Message: "must be less than " + strconv.FormatFloat(limit, 'f', -1, 64)}
	}
	return f, nil
}

func parseAreaID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "area_id", Message: "must reference an area"}
	}
	return id, nil
}

// parseOptionalDate разбирает дату YYYY-MM-DD; пустое значение дает nil
func parseOptionalDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &t, nil
}

// FormatDate форматирует дату для таблиц и форм; nil превращается в пустую строку
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
