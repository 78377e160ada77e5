package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/auth"
	"github.com/domyusuf/safeschooltransport/internal/model"
	"github.com/domyusuf/safeschooltransport/internal/repository"
)

// AccountService covers registration, login, the parent's students and
// profile updates.
type AccountService struct {
	userRepo    *repository.UserRepository
	studentRepo *repository.StudentRepository
	issuer      *auth.Issuer
}

func NewAccountService(
	userRepo *repository.UserRepository,
	studentRepo *repository.StudentRepository,
	issuer *auth.Issuer,
) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		issuer:      issuer,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     model.UserRole
}

// Register creates a parent or driver account. Admin accounts are
// seeded, never self-registered.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*model.AuthSession, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if len(name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if input.Role != model.UserRoleParent && input.Role != model.UserRoleDriver {
		return nil, fmt.Errorf("%w: role must be parent or driver", ErrInvalidInput)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Role:         input.Role,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.session(user)
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*model.AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return s.session(user)
}

func (s *AccountService) session(user *model.User) (*model.AuthSession, error) {
	token, expiresAt, err := s.issuer.Issue(user.ID, user.Role, time.Now())
	if err != nil {
		return nil, err
	}
	return &model.AuthSession{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}

type AddStudentInput struct {
	Name       string
	SchoolName string
	Grade      string
	PhotoURL   *string
}

func (s *AccountService) AddStudent(ctx context.Context, principal model.Principal, input AddStudentInput) (*model.Student, error) {
	if !principal.IsParent() {
		return nil, fmt.Errorf("%w: only parents can add students", ErrPermissionDenied)
	}
	if len(strings.TrimSpace(input.Name)) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidInput)
	}
	if strings.TrimSpace(input.SchoolName) == "" {
		return nil, fmt.Errorf("%w: school name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Grade) == "" {
		return nil, fmt.Errorf("%w: grade is required", ErrInvalidInput)
	}

	student := &model.Student{
		ParentID:   principal.UserID,
		Name:       strings.TrimSpace(input.Name),
		SchoolName: strings.TrimSpace(input.SchoolName),
		Grade:      strings.TrimSpace(input.Grade),
		PhotoURL:   input.PhotoURL,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *AccountService) ParentStudents(ctx context.Context, principal model.Principal) ([]model.Student, error) {
	if !principal.IsParent() {
		return nil, fmt.Errorf("%w: only parents have students", ErrPermissionDenied)
	}
	return s.studentRepo.ListByParent(ctx, principal.UserID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, principal model.Principal, name string, image *string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidInput)
	}
	return s.userRepo.UpdateProfile(ctx, principal.UserID, name, image)
}
