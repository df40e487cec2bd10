package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/server/auth"
	"github.com/dmitrijs2005/electro/internal/server/config"
	"github.com/dmitrijs2005/electro/internal/server/models"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/electro/internal/server/repositories/users"
)

// RegisterInput is a registration request. Which fields are required depends
// on UserType.
type RegisterInput struct {
	UserType    string `json:"userType"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	ShopName    string `json:"shopName"`
	ShopURL     string `json:"shopUrl"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type RegisterResult struct {
	Token    string
	UserType string
}

type LoginResult struct {
	Token string
	User  models.PublicUser
}

// UserService registers accounts and issues session tokens.
type UserService struct {
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		now:           time.Now,
	}
}

// Register validates in, rejects a taken email (or customer username), stores
// the account with a bcrypt password hash and returns a session token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users()

	if err := s.checkAvailable(ctx, repo, in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if errors.Is(err, common.ErrInvalidInput) {
		return nil, err
	}
	if err != nil {
		return nil, common.Internal("UserService.Register", err)
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		UserType:     in.UserType,
	}
	if in.UserType == common.UserTypeCustomer {
		user.Username = in.Username
	} else {
		user.ShopName = in.ShopName
		user.ShopURL = in.ShopURL
		user.FirstName = optionalString(in.FirstName)
		user.LastName = optionalString(in.LastName)
		user.PhoneNumber = optionalString(in.PhoneNumber)
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrUserExists) {
			return nil, err
		}
		return nil, common.Internal("UserService.Register", err)
	}

	token, err := s.issueToken(created)
	if err != nil {
		return nil, common.Internal("UserService.Register", err)
	}

	return &RegisterResult{Token: token, UserType: created.UserType}, nil
}

func validateRegistration(in RegisterInput) error {
	switch in.UserType {
	case "":
		return common.ErrUserTypeRequired
	case common.UserTypeCustomer:
		if in.Username == "" || in.Email == "" || in.Password == "" {
			return fmt.Errorf("%w: username, email and password are required for customers", common.ErrMissingField)
		}
	case common.UserTypeVendor:
		if in.ShopName == "" || in.ShopURL == "" || in.Email == "" || in.Password == "" {
			return fmt.Errorf("%w: shop name, shop URL, email and password are required for vendors", common.ErrMissingField)
		}
	default:
		return common.ErrInvalidUserType
	}
	return nil
}

func (s *UserService) checkAvailable(ctx context.Context, repo users.Repository, in RegisterInput) error {
	taken, err := repo.EmailTaken(ctx, in.Email)
	if err != nil {
		return common.Internal("UserService.Register", err)
	}
	if taken {
		return common.ErrUserExists
	}

	if in.UserType != common.UserTypeCustomer {
		return nil
	}
	taken, err = repo.UsernameTaken(ctx, in.Username)
	if err != nil {
		return common.Internal("UserService.Register", err)
	}
	if taken {
		return common.ErrUserExists
	}
	return nil
}

// Login verifies credentials. An unknown email and a wrong password are the
// same common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.Internal("UserService.Login", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, common.Internal("UserService.Login", err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.Internal("UserService.Login", err)
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

func (s *UserService) issueToken(u *models.User) (string, error) {
	id := auth.Identity{UserID: u.ID, Email: u.Email, UserType: u.UserType}
	return auth.GenerateToken(id, s.jwtSecret, s.tokenValidity, s.now())
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
