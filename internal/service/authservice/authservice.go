package authservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	userrepo "github.com/GlebRadaev/refledger/internal/repo/user-repo"
	"github.com/GlebRadaev/refledger/pkg/auth"
)

//go:generate mockgen -destination=mock_authservice.go -package=authservice . Repo,Referrals

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	tokenTTL         = 15 * time.Minute
	codeAttempts     = 5
	codePrefixLength = 3

	shortSuffixLength = 3
	longSuffixLength  = 6
	digitAlphabet     = "0123456789"
	// no 0, 1, I or O
	codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Referrals interface {
	ResolveCode(ctx context.Context, code string) (*domain.User, error)
	LinkReferral(ctx context.Context, childID int, code string) (*domain.ReferralEdge, error)
}

type Service struct {
	userRepo    Repo
	referrals   Referrals
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	random      func(alphabet string, n int) (string, error)
}

func New(repo Repo, referrals Referrals, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		referrals:   referrals,
		hashService: hashService,
		jwtService:  jwtService,
		random:      randomString,
	}
}

// Register creates the account and, when referralCode is set, links the new
// user under the code's owner. An unusable code fails the registration
// before anything is written.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	if referralCode != "" {
		if _, err := s.referrals.ResolveCode(ctx, referralCode); err != nil {
			return nil, err
		}
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	newUser, err := s.create(ctx, login, hashedPassword)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if referralCode != "" {
		if _, err := s.referrals.LinkReferral(ctx, newUser.ID, referralCode); err != nil {
			// the account stays; the code can be applied again later
			zap.L().Warn("can't link referral at registration",
				zap.Int("userID", newUser.ID), zap.String("code", referralCode), zap.Error(err))
		}
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("referralCode", newUser.ReferralCode))
	return newUser, nil
}

func (s *Service) create(ctx context.Context, login, hashedPassword string) (*domain.User, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := s.referralCode(login, attempt)
		if err != nil {
			return nil, err
		}
		user, err := s.userRepo.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
			ReferralCode: code,
		})
		if errors.Is(err, userrepo.ErrReferralCodeTaken) {
			zap.L().Debug("referral code collision", zap.String("code", code))
			continue
		}
		if errors.Is(err, userrepo.ErrLoginTaken) {
			return nil, ErrLoginTaken
		}
		if err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, fmt.Errorf("no free referral code after %d attempts: %w", codeAttempts, userrepo.ErrReferralCodeTaken)
}

// referralCode builds codes like ARU234: the first letters of the login
// padded with X, followed by three digits. Retries after a collision use a
// six character suffix so a crowded prefix still has free codes.
func (s *Service) referralCode(login string, attempt int) (string, error) {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(login) {
		if prefix.Len() == codePrefixLength {
			break
		}
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			prefix.WriteRune(r)
		}
	}
	for prefix.Len() < codePrefixLength {
		prefix.WriteByte('X')
	}
	alphabet, length := digitAlphabet, shortSuffixLength
	if attempt > 0 {
		alphabet, length = codeAlphabet, longSuffixLength
	}
	suffix, err := s.random(alphabet, length)
	if err != nil {
		return "", err
	}
	return prefix.String() + suffix, nil
}

func randomString(alphabet string, n int) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		k, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[k.Int64()]
	}
	return string(b), nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
