package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"feecalc/internal/entities"
	"feecalc/internal/generated/dto"
	"github.com/go-playground/validator/v10"
)

const (
	fieldCartValue        = "cart_value"
	fieldDeliveryDistance = "delivery_distance"
	fieldNumberOfItems    = "number_of_items"
	fieldTime             = "time"
)

// порядок полей в ответе совпадает с порядком объявления в модели
var fieldOrder = []string{fieldCartValue, fieldDeliveryDistance, fieldNumberOfItems, fieldTime}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Error список ошибок валидации тела запроса в формате ответа 422.
type Error struct {
	Details []dto.ValidationError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(d.Loc, "."), d.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsError достает *Error из цепочки ошибок.
func AsError(err error) (*Error, bool) {
	var validationErr *Error
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// DecodeOrder разбирает JSON тело заказа. При ошибке возвращает *Error
// со всеми найденными проблемами, а не только с первой.
func DecodeOrder(data []byte) (entities.Order, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return entities.Order{}, jsonInvalid()
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return entities.Order{}, jsonInvalid()
	}

	body, ok := raw.(map[string]any)
	if !ok {
		return entities.Order{}, &Error{Details: []dto.ValidationError{{
			Type:  "model_attributes_type",
			Loc:   []string{"body"},
			Msg:   "Input should be a valid dictionary or object to extract fields from",
			Input: raw,
		}}}
	}

	var (
		request dto.DeliveryFeeRequest
		failed  = make(map[string]dto.ValidationError)
	)

	ints := []struct {
		name   string
		target *int64
	}{
		{fieldCartValue, &request.CartValue},
		{fieldDeliveryDistance, &request.DeliveryDistance},
		{fieldNumberOfItems, &request.NumberOfItems},
	}
	for _, f := range ints {
		value, present := body[f.name]
		if !present {
			failed[f.name] = missing(f.name, body)
			continue
		}
		parsed, detail := parseInt(value)
		if detail != nil {
			failed[f.name] = fieldError(f.name, *detail, value)
			continue
		}
		*f.target = parsed
	}

	if value, present := body[fieldTime]; !present {
		failed[fieldTime] = missing(fieldTime, body)
	} else {
		parsed, detail := parseTime(value)
		if detail != nil {
			failed[fieldTime] = fieldError(fieldTime, *detail, value)
		} else {
			request.Time = parsed
		}
	}

	if err := getValidator().Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return entities.Order{}, fmt.Errorf("validate order: %w", err)
		}
		for _, fe := range fieldErrors {
			name := fe.Field()
			if _, already := failed[name]; already {
				continue
			}
			failed[name] = fieldError(name, rangeDetail(fe), body[name])
		}
	}

	if len(failed) > 0 {
		details := make([]dto.ValidationError, 0, len(failed))
		for _, name := range fieldOrder {
			if d, ok := failed[name]; ok {
				details = append(details, d)
			}
		}
		return entities.Order{}, &Error{Details: details}
	}

	return entities.Order{
		CartValue:        request.CartValue,
		DeliveryDistance: request.DeliveryDistance,
		NumberOfItems:    request.NumberOfItems,
		Time:             request.Time,
	}, nil
}

type detail struct {
	typ string
	msg string
}

func jsonInvalid() *Error {
	return &Error{Details: []dto.ValidationError{{
		Type:  "json_invalid",
		Loc:   []string{"body"},
		Msg:   "JSON decode error",
		Input: map[string]any{},
	}}}
}

func missing(name string, body map[string]any) dto.ValidationError {
	return dto.ValidationError{
		Type:  "missing",
		Loc:   []string{"body", name},
		Msg:   "Field required",
		Input: body,
	}
}

func fieldError(name string, d detail, input any) dto.ValidationError {
	return dto.ValidationError{
		Type:  d.typ,
		Loc:   []string{"body", name},
		Msg:   d.msg,
		Input: input,
	}
}

func rangeDetail(fe validator.FieldError) detail {
	switch fe.Tag() {
	case "gt":
		return detail{typ: "greater_than", msg: "Input should be greater than " + fe.Param()}
	default:
		return detail{typ: "value_error", msg: "Value error, " + fe.Error()}
	}
}
