package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/familymap-api/internal/domain"
)

// Lookahead pattern, hence regexp2: at least 8 characters with one letter
// and one digit.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp        = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

type RegisterRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.UserName, validation.Required),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.Gender, validation.Required, validation.In(domain.GenderMale, domain.GenderFemale)),
	)
	if err != nil {
		return err
	}

	ok, err := passwordExp.MatchString(req.Password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserName, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
