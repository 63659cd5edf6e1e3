package services

import (
	"golang.org/x/crypto/bcrypt"

	"learnhub/models"
	"learnhub/store"
)

type AuthService struct {
	Store *store.Store
}

func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{Store: s}
}

// Register creates an account. Reusing a taken username or email fails
// with Conflict. Only student and instructor roles can self-register.
func (as *AuthService) Register(username, email, password, role string) (models.User, error) {
	var user models.User
	if username == "" || email == "" || password == "" {
		return user, ErrInvalid
	}
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleInstructor {
		return user, ErrInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, err
	}

	err = as.Store.Update(func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			if u.Username == username || u.Email == email {
				return ErrConflict
			}
		}
		user = models.User{
			Base:         models.Base{ID: store.NextID(snap.Users)},
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	return user, err
}

func (as *AuthService) Login(username, password string) (models.User, error) {
	var user models.User
	err := as.Store.View(func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			if u.Username == username {
				user = u
				return nil
			}
		}
		return ErrInvalidCredentials
	})
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (as *AuthService) GetUser(id int) (models.User, error) {
	var user models.User
	err := as.Store.View(func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			if u.ID == id {
				user = u
				return nil
			}
		}
		return ErrNotFound
	})
	return user, err
}
