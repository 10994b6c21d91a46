// stubapi/auth.go - registration, login and token handling
package stubapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return detail(c, fiber.StatusBadRequest, "Username, email and password are required")
	}
	if req.Password2 != "" && req.Password != req.Password2 {
		return detail(c, fiber.StatusBadRequest, "Password fields didn't match.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	s.mu.Lock()
	for _, u := range s.users {
		if u.username == req.Username {
			s.mu.Unlock()
			return detail(c, fiber.StatusBadRequest, "A user with that username already exists.")
		}
	}
	u := &user{
		id:           s.allocID(),
		username:     req.Username,
		email:        req.Email,
		firstName:    req.FirstName,
		lastName:     req.LastName,
		passwordHash: hash,
	}
	s.users[u.id] = u
	s.mu.Unlock()

	token, err := s.mintToken(u)
	if err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":    token,
		"user_id":  u.id,
		"username": u.username,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.username == req.Username {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword(found.passwordHash, []byte(req.Password)) != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid credentials. Please try again.")
	}

	token, err := s.mintToken(found)
	if err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(fiber.Map{
		"token":    token,
		"user_id":  found.id,
		"username": found.username,
	})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	// Tokens are stateless here; logout is acknowledged, nothing revoked.
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) mintToken(u *user) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.id,
		"username": u.username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// requireAuth accepts "Authorization: Token <jwt>" and stores the caller's
// identity in request locals.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return detail(c, fiber.StatusUnauthorized, "Authentication credentials were not provided.")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Token" {
		return detail(c, fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return detail(c, fiber.StatusUnauthorized, "Invalid token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return detail(c, fiber.StatusUnauthorized, "Invalid token claims")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return detail(c, fiber.StatusUnauthorized, "Invalid token claims")
	}

	c.Locals("userId", int(id))
	return c.Next()
}

func callerID(c *fiber.Ctx) int {
	if id, ok := c.Locals("userId").(int); ok {
		return id
	}
	return 0
}
