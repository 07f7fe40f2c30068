package state

import (
	"sync"

	"github.com/amaumene/cinefinder/internal/constants"
	apperrors "github.com/amaumene/cinefinder/internal/errors"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/security"
)

// AuthGate is a placeholder login: a boolean flag flipped by comparing
// against one fixed credential pair. It is not a security boundary.
type AuthGate struct {
	mu            sync.RWMutex
	authenticated bool
	promptVisible bool
}

func NewAuthGate() *AuthGate {
	return &AuthGate{}
}

func (a *AuthGate) ToggleLoginModal() {
	a.mu.Lock()
	a.promptVisible = !a.promptVisible
	a.mu.Unlock()
}

func (a *AuthGate) OpenModal() {
	a.mu.Lock()
	a.promptVisible = true
	a.mu.Unlock()
}

func (a *AuthGate) CloseModal() {
	a.mu.Lock()
	a.promptVisible = false
	a.mu.Unlock()
}

// Login authenticates and closes the prompt when creds match exactly.
// Otherwise state is left untouched and an INVALID_CREDENTIALS error is
// returned for the caller to alert on.
func (a *AuthGate) Login(creds models.Credentials) error {
	emailOK := security.SecureCompare(creds.Email, constants.DemoEmail)
	passOK := security.SecureCompare(creds.Password, constants.DemoPassword)
	if !emailOK || !passOK {
		return apperrors.NewInvalidCredentialsError()
	}

	a.mu.Lock()
	a.authenticated = true
	a.promptVisible = false
	a.mu.Unlock()
	return nil
}

func (a *AuthGate) Logout() {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()
}

func (a *AuthGate) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

func (a *AuthGate) State() models.AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return models.AuthState{
		IsAuthenticated:      a.authenticated,
		IsLoginPromptVisible: a.promptVisible,
	}
}
