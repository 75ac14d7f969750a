package request

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/utils/validate"

	"github.com/go-playground/validator/v10"
)

// Validator 由 DTO 實作，覆寫個別「欄位.規則」的錯誤訊息
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

// 自訂規則名稱（寫在 DTO 的 binding tag）
const (
	TagEmail      = "email_shape"
	TagPassword   = "password_rule"
	TagName       = "name_rule"
	TagStreet     = "street_rule"
	TagZipCode    = "zipcode_rule"
	TagGermanDate = "german_date"
	TagInstant    = "instant"
	TagEndAfter   = "end_after"
	TagNonEmpty   = "nonempty"
)

var reg = regexp.MustCompile(`\[\d+\]`)

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		TagEmail:      stringRule(validate.IsEmailValid),
		TagPassword:   stringRule(validate.IsPasswordValid),
		TagName:       stringRule(validate.IsNameValid),
		TagStreet:     stringRule(validate.IsStreetValid),
		TagZipCode:    stringRule(validate.IsZipCodeValid),
		TagGermanDate: stringRule(validate.IsDateValid),
		TagInstant: func(fl validator.FieldLevel) bool {
			return fl.Field().CanInt() && validate.IsTimeValid(fl.Field().Int())
		},
		TagEndAfter: endAfter,
		TagNonEmpty: func(fl validator.FieldLevel) bool {
			list, ok := fl.Field().Interface().([]string)
			return ok && validate.IsListValid(list)
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Errorf("register validation %s: %w", tag, err))
		}
	}
	return v
}

func stringRule(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && rule(fl.Field().String())
	}
}

// endAfter：end_after=StartTime，參數為同一 struct 中開始時間的欄位名稱
func endAfter(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	start := parent.FieldByName(fl.Param())
	if !start.IsValid() || !start.CanInt() || !fl.Field().CanInt() {
		return false
	}
	return validate.IsEndTimeValid(start.Int(), fl.Field().Int())
}

// Validate 跑完所有欄位規則並回傳全部違規（依欄位宣告順序）；nil 代表通過
func Validate(request any) []cErr.Violation {
	err := engine.Struct(request)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []cErr.Violation{{Reason: "request is not valid."}}
	}

	messages := ValidatorMessages{}
	if v, ok := request.(Validator); ok {
		messages = v.GetMessages()
	}

	violations := make([]cErr.Violation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		key := reg.ReplaceAllString(field, ".*") + "." + fe.Tag()
		reason, exist := messages[key]
		if !exist {
			reason = fmt.Sprintf("%s is not valid.", field)
		}
		violations = append(violations, cErr.Violation{Field: field, Reason: reason})
	}
	return violations
}
