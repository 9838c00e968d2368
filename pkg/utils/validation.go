package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	idtranslations "github.com/go-playground/validator/v10/translations/id"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of date-only values
const DateLayout = "2006-01-02"

// Result is the outcome of a single field check
type Result struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Validator runs field-level checks and renders failures in the configured locale
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
	locale   string
}

// NewValidator creates a validator for "en" or "id"; unknown locales fall back to "en"
func NewValidator(locale string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, id.New())

	locale = strings.ToLower(strings.TrimSpace(locale))
	trans, found := uni.GetTranslator(locale)
	if !found {
		locale = "en"
		trans, _ = uni.GetTranslator(locale)
	}

	var err error
	switch locale {
	case "id":
		err = idtranslations.RegisterDefaultTranslations(v, trans)
	default:
		err = entranslations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		panic(fmt.Sprintf("register %s validator translations: %v", locale, err))
	}
	if err := registerDecimalPlaces(v, trans, locale); err != nil {
		panic(fmt.Sprintf("register decimal_places validation: %v", err))
	}

	return &Validator{validate: v, trans: trans, locale: locale}
}

var decimalPlacesMessages = map[string]string{
	"en": "{0} must have at most {1} decimal places",
	"id": "{0} maksimal memiliki {1} angka desimal",
}

// registerDecimalPlaces adds decimal_places=N, which accepts decimal strings with at most N fraction digits
func registerDecimalPlaces(v *validator.Validate, trans ut.Translator, locale string) error {
	err := v.RegisterValidation("decimal_places", func(fl validator.FieldLevel) bool {
		places, err := strconv.ParseInt(fl.Param(), 10, 32)
		if err != nil {
			return false
		}
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return d.Equal(d.Truncate(int32(places)))
	})
	if err != nil {
		return err
	}

	return v.RegisterTranslation("decimal_places", trans, func(t ut.Translator) error {
		return t.Add("decimal_places", decimalPlacesMessages[locale], true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, err := t.T("decimal_places", fe.Field(), fe.Param())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
}

// Locale returns the locale messages are rendered in
func (v *Validator) Locale() string {
	return v.locale
}

// CheckString checks a trimmed string length; min > 0 makes the field required
func (v *Validator) CheckString(field, value string, min, max int) Result {
	tags := []string{}
	if min > 0 {
		tags = append(tags, "required", fmt.Sprintf("min=%d", min))
	}
	if max > 0 {
		tags = append(tags, fmt.Sprintf("max=%d", max))
	}
	if len(tags) == 0 {
		return Result{Field: field, Valid: true}
	}
	return v.check(field, strings.TrimSpace(value), strings.Join(tags, ","))
}

// CheckEmail checks a required email address
func (v *Validator) CheckEmail(field, value string) Result {
	return v.check(field, strings.TrimSpace(value), "required,email")
}

// CheckNumber checks that value lies within [min, max]; a nil bound is open
func (v *Validator) CheckNumber(field string, value decimal.Decimal, min, max *decimal.Decimal) Result {
	tags := []string{}
	if min != nil {
		tags = append(tags, "gte="+min.String())
	}
	if max != nil {
		tags = append(tags, "lte="+max.String())
	}
	if len(tags) == 0 {
		return Result{Field: field, Valid: true}
	}
	return v.check(field, value.InexactFloat64(), strings.Join(tags, ","))
}

// CheckDecimal checks the bounds of value like CheckNumber and that it has at most places fraction digits
func (v *Validator) CheckDecimal(field string, value decimal.Decimal, min, max *decimal.Decimal, places int32) Result {
	if r := v.CheckNumber(field, value, min, max); !r.Valid {
		return r
	}
	return v.check(field, value.String(), fmt.Sprintf("decimal_places=%d", places))
}

// CheckDate checks a required YYYY-MM-DD date
func (v *Validator) CheckDate(field, value string) Result {
	return v.check(field, strings.TrimSpace(value), "required,datetime="+DateLayout)
}

// CheckUUID checks a required UUID string
func (v *Validator) CheckUUID(field, value string) Result {
	return v.check(field, strings.TrimSpace(value), "required,uuid")
}

// CheckOneOf checks a required value against a closed set
func (v *Validator) CheckOneOf(field, value string, allowed ...string) Result {
	return v.check(field, strings.TrimSpace(value), "required,oneof="+strings.Join(allowed, " "))
}

// CheckRequired reports a missing optional value as a required-field failure
func (v *Validator) CheckRequired(field string, present bool) Result {
	return v.check(field, present, "required")
}

// CheckNotEqual checks a value against a reserved one, ignoring case
func (v *Validator) CheckNotEqual(field, value, reserved string) Result {
	return v.check(field, strings.ToLower(strings.TrimSpace(value)), "ne="+strings.ToLower(reserved))
}

// CheckID checks a required positive identifier
func (v *Validator) CheckID(field string, value uint) Result {
	return v.check(field, value, "required,gt=0")
}

// Struct validates `validate` tags on s and returns failures keyed by json field name
func (v *Validator) Struct(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Translate(v.trans)
	}
	return out
}

// Failures collects the messages of failed results keyed by field
func Failures(results ...Result) map[string]string {
	var out map[string]string
	for _, r := range results {
		if r.Valid {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[r.Field] = r.Message
	}
	return out
}

func (v *Validator) check(field string, value interface{}, tag string) Result {
	err := v.validate.Var(value, tag)
	if err == nil {
		return Result{Field: field, Valid: true}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Result{Field: field, Message: err.Error()}
	}

	// Var has no field name, translations render it as an empty {0}
	msg := strings.TrimSpace(verrs[0].Translate(v.trans))
	return Result{Field: field, Message: field + " " + msg}
}
