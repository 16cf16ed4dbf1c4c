package httpapi

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field-level validation for signup and signin payloads. Runs in the
// handlers before the user service is invoked; a failure never reaches the
// orchestrator.

const dateOfBirthLayout = "2006-01-02"

var (
	emailFormat = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	phoneFormat = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)
)

type validationErrors []string

func (v validationErrors) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(v, "; "))
}

func checkEmail(errs validationErrors, email string) validationErrors {
	if email == "" {
		return append(errs, "email: is mandatory")
	}
	if !emailFormat.MatchString(email) {
		return append(errs, "email: should be valid")
	}
	return errs
}

func checkPassword(errs validationErrors, pwd string) validationErrors {
	if pwd == "" {
		return append(errs, "password: is mandatory")
	}
	if len(pwd) < 8 {
		return append(errs, "password: must be at least 8 characters long")
	}
	return errs
}

func checkName(errs validationErrors, field, name string) validationErrors {
	if name == "" {
		return append(errs, field+": is mandatory")
	}
	if len(name) < 2 || len(name) > 50 {
		return append(errs, field+": must be between 2 and 50 characters")
	}
	return errs
}

func checkPhoneNumber(errs validationErrors, phone string) validationErrors {
	if phone == "" {
		return append(errs, "phoneNumber: is mandatory")
	}
	if !phoneFormat.MatchString(phone) {
		return append(errs, "phoneNumber: is invalid")
	}
	return errs
}

func checkAddress(errs validationErrors, address string) validationErrors {
	if address == "" {
		return append(errs, "address: is mandatory")
	}
	if len(address) < 5 || len(address) > 255 {
		return append(errs, "address: must be between 5 and 255 characters")
	}
	return errs
}

// checkDateOfBirth parses the wire date and requires it to lie in the past.
func checkDateOfBirth(errs validationErrors, raw string) (time.Time, validationErrors) {
	if raw == "" {
		return time.Time{}, append(errs, "dateOfBirth: is mandatory")
	}

	dob, err := time.Parse(dateOfBirthLayout, raw)
	if err != nil {
		return time.Time{}, append(errs, "dateOfBirth: must be formatted as "+dateOfBirthLayout)
	}
	if !dob.Before(time.Now()) {
		return time.Time{}, append(errs, "dateOfBirth: must be in the past")
	}

	return dob, errs
}
