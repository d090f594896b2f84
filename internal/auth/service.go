package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/testrunner-pro/accounts/internal/account"
	"github.com/testrunner-pro/accounts/internal/password"
	"github.com/testrunner-pro/accounts/internal/token"
)

// ErrInvalidCredentials is the single login failure message. Unknown email
// and wrong password intentionally look identical to the caller, so failed
// logins cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	maxUsernameLen = 20
	// Attempts at a derived username before giving up on suffixing.
	deriveRetries = 3
)

// Service orchestrates registration and login over the account store, the
// password hasher, and the token service.
type Service struct {
	repo   account.Repository
	hasher *password.Hasher
	tokens *token.Service
}

// NewService wires the auth workflow dependencies.
func NewService(repo account.Repository, hasher *password.Hasher, tokens *token.Service) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Result is a successful register or login outcome: a signed token plus
// the outward account view.
type Result struct {
	Token string
	User  account.User
}

// Register validates input, hashes the password, and creates the account.
// A store uniqueness violation surfaces as account.ErrDuplicate without
// naming the colliding field. When the client supplied no username, one is
// derived from the email local part, retrying with a random suffix on
// collision.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Result, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	if err := validateStruct(&in); err != nil {
		return Result{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	acct := account.Account{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Username:     in.Username,
		Status:       account.StatusActive,
		Role:         account.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	derived := in.Username == ""
	for attempt := 0; ; attempt++ {
		if derived {
			acct.Username = usernameCandidate(in.Email, attempt)
		}
		err = s.repo.Create(ctx, acct)
		if err == nil {
			break
		}
		if derived && errors.Is(err, account.ErrDuplicate) && attempt < deriveRetries {
			continue
		}
		return Result{}, err
	}

	return s.issue(acct)
}

// Login checks both fields are present, then matches credentials. Every
// mismatch, including an unknown email, returns ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (Result, error) {
	if err := validateStruct(&in); err != nil {
		return Result{}, err
	}

	acct, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, err
	}

	if !s.hasher.Verify(in.Password, acct.PasswordHash) {
		return Result{}, ErrInvalidCredentials
	}

	return s.issue(acct)
}

func (s *Service) issue(acct account.Account) (Result, error) {
	tok, err := s.tokens.Issue(acct.ID)
	if err != nil {
		return Result{}, fmt.Errorf("issue token: %w", err)
	}
	return Result{Token: tok, User: acct.Public()}, nil
}

var usernameStripRe = regexp.MustCompile(`[^a-z0-9_]`)

// usernameCandidate derives a username from the email local part. The
// first attempt uses the cleaned local part as-is when long enough; later
// attempts append a random suffix to step around collisions.
func usernameCandidate(email string, attempt int) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	base := usernameStripRe.ReplaceAllString(strings.ToLower(local), "")
	if attempt == 0 && len(base) >= 3 {
		if len(base) > maxUsernameLen {
			base = base[:maxUsernameLen]
		}
		return base
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	if len(base) > maxUsernameLen-len(suffix)-1 {
		base = base[:maxUsernameLen-len(suffix)-1]
	}
	if base == "" {
		base = "user"
	}
	return base + "_" + suffix
}
