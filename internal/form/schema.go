// Package form holds the declarative schema of the career-map intake
// form: field constraints, the purpose-code rule, and localized
// validation messages (English default, Indonesian supported).
package form

import (
	"reflect"
	"strings"

	"career-map/internal/domain/submission"

	localeen "github.com/go-playground/locales/en"
	localeid "github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	idtrans "github.com/go-playground/validator/v10/translations/id"
)

const (
	LocaleEN = "en"
	LocaleID = "id"
)

type Intake struct {
	Username          string       `json:"username" validate:"required,min=2,max=50"`
	Age               *int         `json:"age" validate:"required,gte=18,lte=60"`
	YearsOfExperience *int         `json:"years_of_experience" validate:"required,gte=1"`
	AnnualSalary      *int64       `json:"annual_salary" validate:"omitempty,gte=0"`
	Purpose           *string      `json:"purpose" validate:"omitempty,purpose_code"`
	Skills            []SkillField `json:"skills" validate:"required,min=1,dive"`
}

type SkillField struct {
	Name string `json:"name" validate:"required,max=100"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Schema struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
}

func NewSchema() (*Schema, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("purpose_code", func(fl validator.FieldLevel) bool {
		return submission.IsValidPurpose(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	enLoc := localeen.New()
	idLoc := localeid.New()
	uni := ut.New(enLoc, enLoc, idLoc)

	enT, _ := uni.GetTranslator(LocaleEN)
	if err := entrans.RegisterDefaultTranslations(v, enT); err != nil {
		return nil, err
	}
	idT, _ := uni.GetTranslator(LocaleID)
	if err := idtrans.RegisterDefaultTranslations(v, idT); err != nil {
		return nil, err
	}

	if err := registerPurposeMessage(v, enT, "{0} must be one of: "+strings.Join(submission.PurposeCodes(), ", ")); err != nil {
		return nil, err
	}
	if err := registerPurposeMessage(v, idT, "{0} harus salah satu dari: "+strings.Join(submission.PurposeCodes(), ", ")); err != nil {
		return nil, err
	}

	return &Schema{validate: v, uni: uni}, nil
}

// Normalize trims string fields before validation so whitespace-only
// values fail the required/min rules.
func (f *Intake) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	if f.Purpose != nil {
		p := strings.TrimSpace(*f.Purpose)
		if p == "" {
			f.Purpose = nil
		} else {
			f.Purpose = &p
		}
	}
	for i := range f.Skills {
		f.Skills[i].Name = strings.TrimSpace(f.Skills[i].Name)
	}
}

// Validate runs the schema against the form and returns field-level
// errors localized for the given locale. A nil return means the form
// is valid.
func (s *Schema) Validate(f *Intake, locale string) []FieldError {
	f.Normalize()

	err := s.validate.Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	trans := s.Translator(locale)
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: fe.Translate(trans),
		})
	}
	return out
}

// Translator resolves a locale tag to a registered translator, falling
// back to English.
func (s *Schema) Translator(locale string) ut.Translator {
	locale = normalizeLocale(locale)
	t, found := s.uni.GetTranslator(locale)
	if !found {
		t, _ = s.uni.GetTranslator(LocaleEN)
	}
	return t
}

// LocaleFromAcceptLanguage picks the primary subtag of the first
// language range in an Accept-Language header.
func LocaleFromAcceptLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return LocaleEN
	}
	first := strings.SplitN(header, ",", 2)[0]
	first = strings.SplitN(first, ";", 2)[0]
	return normalizeLocale(first)
}

func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	locale = strings.SplitN(locale, "-", 2)[0]
	locale = strings.SplitN(locale, "_", 2)[0]
	if locale == "" {
		return LocaleEN
	}
	return locale
}

// fieldPath reports the json-named path of the failing field, with the
// root struct name stripped ("skills[0].name" rather than
// "Intake.skills[0].name").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func registerPurposeMessage(v *validator.Validate, trans ut.Translator, msg string) error {
	return v.RegisterTranslation("purpose_code", trans,
		func(ut ut.Translator) error {
			return ut.Add("purpose_code", msg, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T("purpose_code", fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}
