// Package auth provides authentication and admin-role resolution for the
// admin surface.
//
// Signing in moves a Resolver through a small state machine:
//
//	Unauthenticated -> SessionPending -> ProfileLoading -> Ready
//
// SessionPending means the credentials checked out; ProfileLoading covers
// the concurrent profile and role fetches; Ready carries the resolved
// Principal. Any failure on the role side resolves to a non-admin
// principal, never to an error page: role resolution fails closed.
package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

// State is the phase of the sign-in flow a Resolver is in.
type State int

const (
	// StateUnauthenticated means no sign-in is in progress.
	StateUnauthenticated State = iota
	// StateSessionPending means the credentials were accepted and the
	// principal is not resolved yet.
	StateSessionPending
	// StateProfileLoading means the profile and role fetches are running.
	StateProfileLoading
	// StateReady means a principal is resolved and, if it holds the admin
	// grant, signed in.
	StateReady
)

// Principal is the resolved identity of a signed-in account.
type Principal struct {
	UserID  uint64   `json:"userId"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"isAdmin"`
}

// Resolver authenticates credentials and resolves them to a Principal.
type Resolver struct {
	db *gorm.DB

	mu        sync.RWMutex
	state     State
	principal *Principal
}

// NewResolver creates a resolver backed by the given database.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// State returns the current phase of the sign-in flow.
func (r *Resolver) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.state
}

// Principal returns the resolved principal, or nil outside StateReady.
func (r *Resolver) Principal() *Principal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.principal
}

func (r *Resolver) setState(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = s
}

// SignIn authenticates the credentials and resolves the account to a
// Principal. verifyToken only has to be non-empty: the token is issued by
// the login form's verification widget and its presence is the contract
// here. Valid credentials without an admin grant end in ErrAccessDenied
// and the resolver returns to StateUnauthenticated, so no session survives
// for non-admin accounts.
func (r *Resolver) SignIn(email, password, verifyToken string) (*Principal, error) {
	if strings.TrimSpace(verifyToken) == "" {
		return nil, ErrVerificationRequired
	}

	var user models.User

	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	r.setState(StateSessionPending)

	principal := r.resolve(&user)

	if !principal.IsAdmin {
		// valid credentials, no admin grant: drop the pending session
		log.Warn().Str("email", user.Email).Msg("sign-in without admin grant refused")
		r.SignOut()

		return nil, ErrAccessDenied
	}

	r.mu.Lock()
	r.state = StateReady
	r.principal = principal
	r.mu.Unlock()

	return principal, nil
}

// SignOut discards any resolved principal and returns to StateUnauthenticated.
func (r *Resolver) SignOut() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = StateUnauthenticated
	r.principal = nil
}

// resolve fetches the profile and the role grants concurrently and merges
// them into a Principal. A missing or failing profile only costs the
// display name; a failing role fetch resolves to no roles at all.
func (r *Resolver) resolve(user *models.User) *Principal {
	r.setState(StateProfileLoading)

	var (
		wg         sync.WaitGroup
		profile    models.Profile
		profileErr error
		roles      []string
		rolesErr   error
	)

	wg.Add(2) //nolint:mnd

	go func() {
		defer wg.Done()

		profileErr = r.db.Where("user_id = ?", user.ID).First(&profile).Error
	}()

	go func() {
		defer wg.Done()

		rolesErr = r.db.Model(&models.UserRole{}).
			Where("user_id = ?", user.ID).
			Pluck("role", &roles).Error
	}()

	wg.Wait()

	name := profile.Name
	if profileErr != nil || strings.TrimSpace(name) == "" {
		if profileErr != nil && !errors.Is(profileErr, gorm.ErrRecordNotFound) {
			log.Warn().Err(profileErr).Uint64("user_id", user.ID).Msg("profile fetch failed, falling back to email local-part")
		}

		name = emailLocalPart(user.Email)
	}

	if rolesErr != nil {
		// fail closed: unknown grants resolve to none
		log.Error().Err(rolesErr).Uint64("user_id", user.ID).Msg("role fetch failed, resolving without grants")

		roles = nil
	}

	return &Principal{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    name,
		Roles:   roles,
		IsAdmin: HasAdminRole(roles),
	}
}

// ResolveRoles re-fetches the role grants of a user, for revalidating an
// existing session. It fails closed like resolve.
func (r *Resolver) ResolveRoles(userID uint64) []string {
	var roles []string

	err := r.db.Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles).Error
	if err != nil {
		log.Error().Err(err).Uint64("user_id", userID).Msg("role fetch failed, resolving without grants")

		return nil
	}

	return roles
}

// HasAdminRole reports whether the grant list contains the admin role.
func HasAdminRole(roles []string) bool {
	for _, role := range roles {
		if role == models.RoleAdmin {
			return true
		}
	}

	return false
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}

	return email
}
