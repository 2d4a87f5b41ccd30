package auth

import (
	"Backend-PlanujSmeny/src/models"
	"Backend-PlanujSmeny/src/services/checkin"
	"Backend-PlanujSmeny/src/utils"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("Invalid username or password.")
	ErrRateLimited        = errors.New("too many login attempts")
)

// Credential บัญชีผู้ใช้สำหรับ demo
type Credential struct {
	Username string
	Password string
	Role     models.UserRole
}

// DemoCredentials are the two accounts shown on the login page.
func DemoCredentials() []Credential {
	return []Credential{
		{Username: "admin", Password: "admin", Role: models.UserRoleAdmin},
		{Username: "supervisor", Password: "super", Role: models.UserRoleSupervisor},
	}
}

type account struct {
	username string
	hash     []byte
	role     models.UserRole
}

// Session is what a successful login hands back to the caller.
type Session struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	SessionID string      `json:"sessionId"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// RateLimitError carries the remaining cool-down of a throttled username.
type RateLimitError struct {
	Remaining time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many login attempts, try again in %d minutes and %d seconds",
		int(e.Remaining.Minutes()), int(e.Remaining.Seconds())%60)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

type Service struct {
	accounts []account
	sessions *checkin.Store
	tokenTTL time.Duration
}

// NewService hashes the given credentials so plain passwords are not kept around.
func NewService(creds []Credential, sessions *checkin.Store, tokenTTL time.Duration) (*Service, error) {
	accounts := make([]account, 0, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", c.Username, err)
		}
		accounts = append(accounts, account{username: c.Username, hash: hash, role: c.Role})
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{accounts: accounts, sessions: sessions, tokenTTL: tokenTTL}, nil
}

// AuthenticateUser checks trimmed credentials against the account list.
func (s *Service) AuthenticateUser(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	for _, a := range s.accounts {
		if a.username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		return &models.User{Username: a.username, Role: a.role}, nil
	}
	return nil, ErrInvalidCredentials
}

// Login authenticates, issues a token and opens an empty check-in state
// for the new session.
func (s *Service) Login(username, password string) (*Session, error) {
	key := strings.TrimSpace(username)
	if remaining, locked := utils.LoginCooldown(key); locked {
		return nil, &RateLimitError{Remaining: remaining}
	}

	user, err := s.AuthenticateUser(username, password)
	if err != nil {
		if _, rerr := utils.RecordFailedLogin(key); rerr != nil {
			log.Println("⚠️ record failed login:", rerr)
		}
		log.Printf("❌ [Login] failed for %q", key)
		return nil, err
	}
	utils.ResetLoginAttempts(key)

	sessionID := uuid.NewString()
	token, err := utils.GenerateJWT(user.Username, string(user.Role), sessionID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	s.sessions.Open(sessionID)

	log.Printf("✅ [Login] %s (%s) session=%s", user.Username, user.Role, sessionID)
	return &Session{
		User:      *user,
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}, nil
}

// Logout blacklists the token and discards the session's check-in state.
func (s *Service) Logout(token string, claims *utils.JWTClaims) error {
	s.sessions.Drop(claims.SessionID())
	if err := utils.BlacklistToken(token, claims.RemainingTTL()); err != nil {
		return err
	}
	log.Printf("👋 [Logout] %s session=%s", claims.Username, claims.SessionID())
	return nil
}
