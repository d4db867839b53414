package validator // import "github.com/bookmate-app/bookmate/validator"

import (
	"github.com/pkg/errors"

	"github.com/bookmate-app/bookmate/model"
	"github.com/bookmate-app/bookmate/store"
	"github.com/bookmate-app/bookmate/util"
)

func ValidateSignupRequest(s *store.Store, signup *model.UserSignupRequest) error {
	if signup == nil {
		return errors.New("signup request is nil")
	}
	if signup.Nickname == "" {
		return errors.New("nickname is empty")
	}
	if signup.Email == "" {
		return errors.New("email is empty")
	}
	if !util.ValidateEmail(signup.Email) {
		return errors.New("email is invalid")
	}
	if err := validatePassword(signup.Password); err != nil {
		return err
	}
	if signup.PasswordConfirm != "" && signup.PasswordConfirm != signup.Password {
		return errors.New("passwords do not match")
	}
	if existing, _ := s.GetUser(&model.FindUser{Email: &signup.Email}); existing != nil {
		return errors.New("Email already registered")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password is too short")
	}
	return nil
}
