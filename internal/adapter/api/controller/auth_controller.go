package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação e ao perfil
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
	logger         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService, log logger.Logger) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         log,
	}
}

// Register cadastra um novo usuário
// @Summary Cadastra um usuário
// @Description Cria a conta e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := user.NewUser(request.FirstName, request.LastName, request.Email, request.Password)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.userRepository.Create(ctx, u); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	c.logger.Info("Usuário cadastrado", "user_id", u.ID)
	c.respondWithToken(ctx, http.StatusCreated, u)
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	email, err := user.NormalizeEmail(request.Email)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials", "Wrong email or password"))
			return
		}
		respondError(ctx, c.logger, err)
		return
	}

	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials", "Wrong email or password"))
		return
	}

	c.respondWithToken(ctx, http.StatusOK, u)
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Emite um novo token a partir de um token ainda válido
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	claims, err := c.jwtService.ValidateToken(request.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid token", err.Error()))
		return
	}

	u, err := c.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid token", err.Error()))
			return
		}
		respondError(ctx, c.logger, err)
		return
	}

	token, expiresAt, err := c.jwtService.RefreshToken(request.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(u),
	})
}

// Me retorna o usuário autenticado
// @Summary Usuário atual
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	u, err := c.userRepository.FindByID(ctx, auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// UpdateProfile atualiza nome, email e fuso horário
// @Summary Atualiza o perfil
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param profile body dto.UpdateProfileRequest true "Campos a alterar"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var request dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.userRepository.FindByID(ctx, auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if request.FirstName != nil {
		u.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		u.LastName = *request.LastName
	}
	if u.FirstName == "" || u.LastName == "" {
		respondError(ctx, c.logger, user.ErrEmptyName)
		return
	}
	if request.Email != nil {
		email, err := user.NormalizeEmail(*request.Email)
		if err != nil {
			respondError(ctx, c.logger, err)
			return
		}
		u.Email = email
	}
	if request.Timezone != nil && *request.Timezone != "" {
		u.Timezone = *request.Timezone
	}

	if err := c.userRepository.Update(ctx, u); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// UpdatePreferences atualiza as preferências do usuário
// @Summary Atualiza as preferências
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param preferences body dto.UpdatePreferencesRequest true "Preferências a alterar"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/preferences [put]
func (c *AuthController) UpdatePreferences(ctx *gin.Context) {
	var request dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.userRepository.FindByID(ctx, auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	request.Apply(&u.Preferences)

	if err := c.userRepository.Update(ctx, u); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// ChangePassword altera a senha do usuário autenticado
// @Summary Altera a senha
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param password body dto.ChangePasswordRequest true "Senha atual e nova senha"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var request dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.userRepository.FindByID(ctx, auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if !u.CheckPassword(request.CurrentPassword) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials", "Current password is incorrect"))
		return
	}

	if err := u.SetPassword(request.NewPassword); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.userRepository.UpdatePassword(ctx, u.ID, u.Password); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password updated successfully", nil))
}

func (c *AuthController) respondWithToken(ctx *gin.Context, status int, u *user.User) {
	token, expiresAt, err := c.jwtService.GenerateToken(u)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(status, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(u),
	})
}
