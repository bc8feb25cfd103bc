package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refledger/internal/domain"
	userrepo "github.com/GlebRadaev/refledger/internal/repo/user-repo"
	"github.com/GlebRadaev/refledger/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockReferrals, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	referrals := NewMockReferrals(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, referrals, hashService, jwtService)
	service.random = func(_ string, n int) (string, error) {
		if n == shortSuffixLength {
			return "234", nil
		}
		return "K7M2Q9", nil
	}
	return service, repo, referrals, hashService, jwtService
}

func created(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = 2
	user.ReferralCodeActive = true
	return user, nil
}

func TestRegister(t *testing.T) {
	service, userRepo, referrals, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		referralCode  string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(created)
			},
			expectedUser: &domain.User{
				ID:                 2,
				Login:              "testuser",
				PasswordHash:       "hashedpassword",
				ReferralCode:       "TES234",
				ReferralCodeActive: true,
			},
		},
		{
			name:         "Registration with a referral code links the new user",
			login:        "bob",
			password:     "testpassword",
			referralCode: "aru234",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "bob").Return(nil, nil)
				referrals.EXPECT().ResolveCode(context.Background(), "aru234").Return(&domain.User{ID: 1}, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(created)
				referrals.EXPECT().LinkReferral(context.Background(), 2, "aru234").Return(&domain.ReferralEdge{ParentID: 1, ChildID: 2}, nil)
			},
			expectedUser: &domain.User{
				ID:                 2,
				Login:              "bob",
				PasswordHash:       "hashedpassword",
				ReferralCode:       "BOB234",
				ReferralCodeActive: true,
			},
		},
		{
			name:     "Short login is padded and digits are kept",
			login:    "j1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "j1").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(created)
			},
			expectedUser: &domain.User{
				ID:                 2,
				Login:              "j1",
				PasswordHash:       "hashedpassword",
				ReferralCode:       "JXX234",
				ReferralCodeActive: true,
			},
		},
		{
			name:     "Code collision is retried",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				gomock.InOrder(
					userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, userrepo.ErrReferralCodeTaken),
					userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(created),
				)
			},
			expectedUser: &domain.User{
				ID:                 2,
				Login:              "testuser",
				PasswordHash:       "hashedpassword",
				ReferralCode:       "TESK7M2Q9",
				ReferralCodeActive: true,
			},
		},
		{
			name:     "Every generated code is taken",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Times(codeAttempts).Return(nil, userrepo.ErrReferralCodeTaken)
			},
			expectedError: userrepo.ErrReferralCodeTaken,
		},
		{
			name:     "Login taken by a concurrent registration",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, userrepo.ErrLoginTaken)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:         "Inactive referral code rejects the registration",
			login:        "bob",
			password:     "testpassword",
			referralCode: "OLD111",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "bob").Return(nil, nil)
				referrals.EXPECT().ResolveCode(context.Background(), "OLD111").Return(nil, domain.ErrInvalidReferralCode)
			},
			expectedError: domain.ErrInvalidReferralCode,
		},
		{
			name:         "Failed link keeps the account",
			login:        "bob",
			password:     "testpassword",
			referralCode: "ARU234",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "bob").Return(nil, nil)
				referrals.EXPECT().ResolveCode(context.Background(), "ARU234").Return(&domain.User{ID: 1}, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(created)
				referrals.EXPECT().LinkReferral(context.Background(), 2, "ARU234").Return(nil, domain.ErrInvalidReferralCode)
			},
			expectedUser: &domain.User{
				ID:                 2,
				Login:              "bob",
				PasswordHash:       "hashedpassword",
				ReferralCode:       "BOB234",
				ReferralCodeActive: true,
			},
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password, tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestReferralCode(t *testing.T) {
	service := New(nil, nil, nil, nil)

	tests := []struct {
		name    string
		login   string
		attempt int
		pattern string
	}{
		{name: "First attempt uses three digits", login: "aru", attempt: 0, pattern: `^ARU[0-9]{3}$`},
		{name: "Retry uses a longer suffix", login: "aru", attempt: 1, pattern: `^ARU[2-9A-HJ-NP-Z]{6}$`},
		{name: "Non-letters are skipped", login: "b0b_smith", attempt: 0, pattern: `^BBS[0-9]{3}$`},
		{name: "Short login is padded", login: "7", attempt: 3, pattern: `^XXX[2-9A-HJ-NP-Z]{6}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := service.referralCode(tt.login, tt.attempt)
			assert.NoError(t, err)
			assert.Regexp(t, tt.pattern, code)
		})
	}
}

func TestReferralCodeRandomFailure(t *testing.T) {
	service := New(nil, nil, nil, nil)
	service.random = func(string, int) (string, error) { return "", errors.New("entropy exhausted") }

	_, err := service.referralCode("aru", 0)
	assert.EqualError(t, err, "entropy exhausted")
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID:           1,
					Login:        "testuser",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Invalid credentials - user not found",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			login:    "testuser",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID:           1,
					Login:        "testuser",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Successful token generation",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
		},
		{
			name:   "Error generating token",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
