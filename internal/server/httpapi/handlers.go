package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rbarroso/auth-backend/internal/common"
)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type userPayload struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func errorResponse(message string) gin.H {
	return gin.H{"sucesso": false, "mensagem": message}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleHealthDB distinguishes an unreachable store ("UNAVAILABLE") from a
// reachable one that fails a trivial query ("UNKNOWN").
func (s *Server) handleHealthDB(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.store.Conn().PingContext(ctx); err != nil {
		s.logger.Error(ctx, "db health ping failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "ERROR", "db": "UNAVAILABLE"})
		return
	}

	var one int
	if err := s.store.Conn().QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		s.logger.Error(ctx, "db health query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "ERROR", "db": "UNKNOWN"})
		return
	}

	// The row count is diagnostic only; failure to count is not a health failure.
	var count any = "unknown"
	if n, err := s.store.Credentials().Count(ctx); err == nil {
		count = n
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "db": "AVAILABLE", "credentials_count": count})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Dados inválidos"))
		return
	}

	if req.Email == "" || req.Senha == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Email e senha obrigatórios"))
		return
	}

	result, err := s.login.Login(c.Request.Context(), req.Email, req.Senha, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			// Same message whether the email was unknown or the password
			// wrong: the response must not reveal which.
			c.JSON(http.StatusUnauthorized, errorResponse("Usuário ou senha inválida"))
		case errors.Is(err, common.ErrorStore):
			c.JSON(http.StatusInternalServerError, errorResponse("Erro no banco de dados"))
		default:
			c.JSON(http.StatusInternalServerError, errorResponse("Erro ao realizar login"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Login realizado com sucesso",
		"token":    result.Token,
		"usuario":  userPayload{ID: result.UserID, Email: result.Email},
	})
}

func (s *Server) handleVerify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, errorResponse("Token nao fornecido"))
		return
	}

	// "Bearer <token>" or the raw token.
	token := authHeader
	if _, rest, found := strings.Cut(authHeader, " "); found {
		token = rest
	}

	claims, err := s.login.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, errorResponse("Token expirado"))
		case errors.Is(err, common.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, errorResponse("Token invalido"))
		default:
			c.JSON(http.StatusInternalServerError, errorResponse("Erro ao verificar"))
		}
		return
	}

	usuario := gin.H{
		"user_id": claims.UserID,
		"email":   claims.Email,
	}
	if claims.ExpiresAt != nil {
		usuario["exp"] = claims.ExpiresAt.Unix()
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Token valido",
		"usuario":  usuario,
	})
}
