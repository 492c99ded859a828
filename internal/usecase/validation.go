package usecase

import "regexp"

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateEmail reports whether email has the <text>@<text>.<text> shape.
// The match is unanchored, so surrounding text is tolerated.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
