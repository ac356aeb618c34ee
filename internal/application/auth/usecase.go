package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
	"github.com/fulfila/fulfila-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, empresaRepo repository.EmpresaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

// RegisterUser cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailJaCadastrado se o e-mail já existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existente, _ := uc.usuarioRepo.GetByEmail(in.Email)
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNaoEncontrado // empresa não existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperador
	}
	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		EmpresaID: in.EmpresaID,
		Email:     in.Email,
		SenhaHash: string(hash),
		Nome:      nome,
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUserResponse(usuario), nil
}

// Login verifica e-mail/senha, gera o JWT e retorna token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoExiste
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	if usuario.Status != "active" {
		return nil, domain.ErrAcessoNegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.EmpresaID, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(usuario),
	}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		EmpresaID: u.EmpresaID,
		Email:     u.Email,
		Nome:      u.Nome,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
