package apitest

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/finanapp/client-go/internal/domain"
)

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	s.mu.Lock()
	acct := s.accounts[req.Email]
	s.mu.Unlock()
	if acct == nil || acct.password != req.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	sess, _ := session.Get(sessionName, c)
	sess.Options = &sessions.Options{Path: "/", MaxAge: int((24 * time.Hour).Seconds()), HttpOnly: true}
	sess.Values["email"] = req.Email
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Session error"})
	}

	now := time.Now()
	s.mu.Lock()
	acct.profile.LastLogin = &now
	profile := acct.profile
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "user": profile})
}

func (s *Server) logout(c echo.Context) error {
	sess, _ := session.Get(sessionName, c)
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	delete(sess.Values, "email")
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Session error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		DateOfBirth string `json:"dateOfBirth"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	var problems []string
	if req.FirstName == "" {
		problems = append(problems, "First name is required")
	}
	if req.Email == "" {
		problems = append(problems, "Email is required")
	}
	if len(req.Password) < 8 {
		problems = append(problems, "Password must be at least 8 characters long")
	}
	if len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": problems})
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()
		return c.JSON(http.StatusConflict, echo.Map{"message": "A user with this email already exists"})
	}
	profile := domain.UserProfile{
		ID:           s.allocIDLocked(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.Email,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	s.accounts[req.Email] = &account{password: req.Password, profile: profile}
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"status": "success"})
}

func (s *Server) authStatus(c echo.Context) error {
	acct := s.currentAccount(c)
	if acct == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	s.mu.Lock()
	status := domain.AuthStatus{Authenticated: true, UserProfile: acct.profile}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, status)
}

func (s *Server) userEdit(c echo.Context) error {
	acct := s.currentAccount(c)
	var req domain.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input data"})
	}

	var problems []string
	if req.FirstName == "" {
		problems = append(problems, "First name is required")
	}
	if req.LastName == "" {
		problems = append(problems, "Last name is required")
	}
	if req.DateOfBirth == "" {
		problems = append(problems, "Date of birth is required")
	} else if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		problems = append(problems, "Invalid date format")
	}
	if len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": problems})
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	s.mu.Lock()
	acct.profile.FirstName = req.FirstName
	acct.profile.LastName = req.LastName
	acct.profile.DateOfBirth = &dob
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
