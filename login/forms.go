package login

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/cccteam/rolegate/roles"
	"github.com/go-playground/validator/v10"
)

// Form is the credential form of one role.
type Form interface {
	Role() roles.Role
}

// AdminForm is the admin login form.
type AdminForm struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"minlen=6"`
}

func (AdminForm) Role() roles.Role { return roles.Admin }

// MerchantForm is the merchant login form.
type MerchantForm struct {
	StoreName string `json:"storeName" validate:"minlen=3"`
	StoreID   string `json:"storeId" validate:"minlen=3"`
	Password  string `json:"password" validate:"minlen=6"`
}

func (MerchantForm) Role() roles.Role { return roles.Merchant }

// MemberForm is the member password login form.
type MemberForm struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"minlen=3"`
	Password     string `json:"password" validate:"minlen=6"`
}

func (MemberForm) Role() roles.Role { return roles.Member }

// SendCodeForm starts the member one-time code login.
type SendCodeForm struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"minlen=3"`
}

// VerifyCodeForm completes the member one-time code login.
type VerifyCodeForm struct {
	Code string `json:"code" validate:"required,maxlen=6"`
}

// NewForm returns an empty form for role, ready to be decoded into.
func NewForm(role roles.Role) Form {
	switch role {
	case roles.Admin:
		return &AdminForm{}
	case roles.Merchant:
		return &MerchantForm{}
	case roles.Member:
		return &MemberForm{}
	}

	panic(fmt.Sprintf("login: unknown role %q", string(role)))
}

// Field describes one input of a login form.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Fields lists the inputs of role's form in display order.
func Fields(role roles.Role) []Field {
	password := Field{Name: "password", Label: "Password", Type: "password"}

	switch role {
	case roles.Admin:
		return []Field{{Name: "email", Label: "Email", Type: "email"}, password}
	case roles.Merchant:
		return []Field{
			{Name: "storeName", Label: "Store Name", Type: "text"},
			{Name: "storeId", Label: "Store ID", Type: "text"},
			password,
		}
	case roles.Member:
		return []Field{{Name: "emailOrPhone", Label: "Email or Phone", Type: "text"}, password}
	}

	panic(fmt.Sprintf("login: unknown role %q", string(role)))
}

// FieldErrors maps a form field, by its JSON name, to the reason it was rejected.
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	if err := v.RegisterValidation("minlen", lengthRule(func(n, limit int) bool { return n >= limit })); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("maxlen", lengthRule(func(n, limit int) bool { return n <= limit })); err != nil {
		panic(err)
	}

	return v
}

// lengthRule compares a string's length in UTF-16 code units against the
// tag parameter. A character outside the Basic Multilingual Plane counts twice.
func lengthRule(ok func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("login: bad length limit %q on %s", fl.Param(), fl.FieldName()))
		}

		return ok(utf16Len(fl.Field().String()), limit)
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += max(utf16.RuneLen(r), 1)
	}

	return n
}

// check validates form and reports every failing field. A nil result means
// the form is valid.
func check(form any) (FieldErrors, error) {
	err := validate.Struct(form)
	if err == nil {
		return nil, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fieldErrors := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, ok := fieldErrors[fe.Field()]; ok {
			continue
		}
		fieldErrors[fe.Field()] = message(fe)
	}

	return fieldErrors, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Invalid email"
	case "minlen":
		return fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
	case "maxlen":
		return fmt.Sprintf("Must contain at most %s character(s)", fe.Param())
	case "required":
		return "Required"
	default:
		return "Invalid value"
	}
}
