package local

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"

	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// SecretLookup resolves a user's TOTP secret, kept separate from
// OTPValidator so the validator itself stays storage-agnostic (production
// wires this to the users table; tests wire an in-memory map). Backup codes
// live in the validator's own in-memory store, not behind this interface.
type SecretLookup interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (account.User, error)
}

// TOTPValidator implements OTPValidatorPort using pquerna/otp's RFC 6238
// implementation for the code and an in-memory backup-code store for the
// one-time fallback codes.
type TOTPValidator struct {
	users SecretLookup

	mu          sync.Mutex
	backupCodes map[uuid.UUID]map[string]bool // userID -> code -> unused
}

// NewTOTPValidator returns a TOTPValidator backed by users.
func NewTOTPValidator(users SecretLookup) *TOTPValidator {
	return &TOTPValidator{users: users, backupCodes: make(map[uuid.UUID]map[string]bool)}
}

// SeedBackupCodes registers userID's unused backup codes (called once at
// MFA enrollment time).
func (v *TOTPValidator) SeedBackupCodes(userID uuid.UUID, codes []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}

	v.backupCodes[userID] = set
}

// ValidateSecondFactor checks code against the user's live TOTP secret
// first, then an unused backup code. A matched backup code is consumed
// atomically under the validator's lock so it can never be replayed.
func (v *TOTPValidator) ValidateSecondFactor(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	user, err := v.users.FindUserByID(ctx, userID)
	if err != nil {
		return false, err
	}

	if user.MFAEnabled && user.MFASecret != "" && totp.Validate(code, user.MFASecret) {
		return true, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	codes := v.backupCodes[userID]
	if codes == nil {
		return false, nil
	}

	for stored, unused := range codes {
		if !unused {
			continue
		}

		if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1 {
			codes[stored] = false
			return true, nil
		}
	}

	return false, nil
}

var _ ports.OTPValidatorPort = (*TOTPValidator)(nil)
