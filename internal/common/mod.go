package common

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

const (
	REQUEST_TIMEOUT_SECS     = 50 * time.Second
	MONGO_DUPLICATE_KEY_CODE = 11000

	OTP_EXPIRATION_TIME            = 5 * time.Minute
	PASSWORD_RESET_EXPIRATION_TIME = 30 * time.Minute

	// Category trees are caller-supplied; recursion depth is bounded so
	// adversarial nesting cannot grow the stack without limit.
	MAX_CATEGORY_DEPTH = 8

	DEFAULT_PAGE_LIMIT = 10
)

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.Compare(s, "") == 0
}
