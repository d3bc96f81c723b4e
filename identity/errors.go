package identity

import "errors"

// Error is a structured validation failure: a stable reason code plus a
// human-readable description. Registration reports a list of these rather
// than a single message.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

const (
	CodeInvalidEmail             = "InvalidEmail"
	CodeDuplicateEmail           = "DuplicateEmail"
	CodePasswordTooShort         = "PasswordTooShort"
	CodePasswordRequiresDigit    = "PasswordRequiresDigit"
	CodePasswordRequiresLower    = "PasswordRequiresLower"
	CodePasswordRequiresUpper    = "PasswordRequiresUpper"
	CodePasswordRequiresNonAlnum = "PasswordRequiresNonAlphanumeric"
)

// InvalidLoginMessage is the only detail a failed sign-in exposes. Wrong
// password and unknown email produce the identical message so callers
// cannot enumerate accounts.
const InvalidLoginMessage = "Invalid login attempt."

var ErrInvalidLogin = errors.New(InvalidLoginMessage)
