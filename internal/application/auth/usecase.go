package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
	"github.com/oktech/boasaude-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro, login e emissão de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth. O secret vem da configuração
// carregada na inicialização; nunca de um literal.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário: valida unicidade de email e CPF (inclusive entre
// inativos), faz hash da senha com bcrypt e persiste com papel USER.
func (uc *AuthUseCase) Register(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Cpf == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.IsValidEmail(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.userRepo.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	exists, err = uc.userRepo.ExistsByCpf(in.Cpf)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCpfAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		Cpf:          in.Cpf,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/senha e devolve um token bearer assinado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.IssueToken(user.Email)
}

// IssueToken busca o usuário pela chave de identidade (email) e assina um
// token com os claims userId e role. Falha com ErrUserNotFound se a chave não
// resolver para um usuário ativo.
func (uc *AuthUseCase) IssueToken(email string) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUserNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.ID.String(), string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// toUserResponse converte a entidade para a representação pública.
func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Cpf:       u.Cpf,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
