package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MaxBioLen      = 500
	MaxTitleLen    = 200
	MaxContentLen  = 20000
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Normalize trims surrounding whitespace and converts s to Unicode NFC so
// visually identical input is stored identically.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func ValidateProfile(username, bio string) ValidationErrors {
	errs := make(ValidationErrors)

	username = Normalize(username)
	n := utf8.RuneCountInString(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if n < MinUsernameLen {
		errs.Add("username", fmt.Sprintf("Username must be at least %d characters", MinUsernameLen))
	} else if n > MaxUsernameLen {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	validateBio(bio, errs)

	return errs
}

func ValidateBio(bio string) ValidationErrors {
	errs := make(ValidationErrors)
	validateBio(bio, errs)
	return errs
}

func ValidatePost(title, content string) ValidationErrors {
	errs := make(ValidationErrors)

	title = Normalize(title)
	if title == "" {
		errs.Add("title", "Title is required")
	} else if utf8.RuneCountInString(title) > MaxTitleLen {
		errs.Add("title", "Title is too long")
	}

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Content is required")
	} else if utf8.RuneCountInString(content) > MaxContentLen {
		errs.Add("content", "Content is too long")
	}

	return errs
}

func validateBio(bio string, errs ValidationErrors) {
	if utf8.RuneCountInString(bio) > MaxBioLen {
		errs.Add("bio", fmt.Sprintf("Bio must be at most %d characters", MaxBioLen))
	}
}
