package service

import (
	"errors"

	"equiedge/config"
	"equiedge/internal/auth"
	"equiedge/internal/models"
	"equiedge/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg         *config.Config
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, profileRepo: profileRepo}
}

// Register creates the auth account and its marketplace profile together;
// every user has exactly one profile and the profile id is the identity
// everything downstream (bookings, chat) keys on.
func (s *AuthService) Register(email, password, firstName, lastName string, isExpert bool) (*models.User, *models.Profile, string, string, error) {
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, nil, "", "", ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", "", err
	}
	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, nil, "", "", err
	}
	p := &models.Profile{
		UserID:    u.ID,
		FirstName: firstName,
		LastName:  lastName,
		IsExpert:  isExpert,
	}
	if err := s.profileRepo.Create(p); err != nil {
		return nil, nil, "", "", err
	}
	access, refresh, err := s.issueTokens(u, p)
	return u, p, access, refresh, err
}

func (s *AuthService) Login(email, password string) (*models.User, *models.Profile, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, "", "", ErrInvalidCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil, "", "", ErrInvalidCreds
	}
	p, err := s.profileRepo.GetByUserID(u.ID)
	if err != nil {
		return nil, nil, "", "", err
	}
	access, refresh, err := s.issueTokens(u, p)
	return u, p, access, refresh, err
}

// UpsertGoogleUser links or creates an account from a verified Google
// identity and returns it with its profile.
func (s *AuthService) UpsertGoogleUser(googleID, email, firstName, lastName, avatarURL string) (*models.User, *models.Profile, string, string, error) {
	u, err := s.userRepo.GetByGoogleID(googleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, "", "", err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Existing email signup gets the Google id attached.
		u, err = s.userRepo.GetByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, "", "", err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u = &models.User{
				Email:     email,
				GoogleID:  &googleID,
				FirstName: firstName,
				LastName:  lastName,
				AvatarURL: avatarURL,
			}
			if err := s.userRepo.Create(u); err != nil {
				return nil, nil, "", "", err
			}
			p := &models.Profile{
				UserID:          u.ID,
				FirstName:       firstName,
				LastName:        lastName,
				ProfileImageURL: avatarURL,
			}
			if err := s.profileRepo.Create(p); err != nil {
				return nil, nil, "", "", err
			}
			access, refresh, err := s.issueTokens(u, p)
			return u, p, access, refresh, err
		}
		u.GoogleID = &googleID
		if err := s.userRepo.Update(u); err != nil {
			return nil, nil, "", "", err
		}
	}
	p, err := s.profileRepo.GetByUserID(u.ID)
	if err != nil {
		return nil, nil, "", "", err
	}
	access, refresh, err := s.issueTokens(u, p)
	return u, p, access, refresh, err
}

func (s *AuthService) Refresh(refreshToken string) (string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	p, err := s.profileRepo.GetByUserID(u.ID)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, p.ID, p.IsExpert)
}

func (s *AuthService) issueTokens(u *models.User, p *models.Profile) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, p.ID, p.IsExpert)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
