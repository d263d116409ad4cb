// Package mockapi is a stand-in for the remote KrishiAadhar platform,
// serving exactly the endpoint shapes the client uses. Tests run it
// behind httptest.
package mockapi

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"krishi/entities"
)

type Server struct {
	mu sync.Mutex
	e  *echo.Echo

	// Farmers are keyed by phone number, experts by email; the password
	// is shared per fixture for simplicity.
	Farmers  map[string]entities.User
	Experts  map[string]entities.User
	Password string

	Calendars []entities.CropCalendar
	PostList  []entities.Post

	// LastAccessToken records the x-access-token of the most recent
	// authenticated call.
	LastAccessToken string
	SubmitCount     int

	// When FailStatus is non-zero, mutation endpoints answer with it and
	// FailMessage instead of succeeding.
	FailStatus  int
	FailMessage string
}

func New() *Server {
	s := &Server{
		Farmers:  map[string]entities.User{},
		Experts:  map[string]entities.User{},
		Password: "secret1",
	}
	e := echo.New()
	e.HideBanner = true

	e.POST("/farmer/login", s.farmerLogin)
	e.POST("/expert/login", s.expertLogin)
	e.POST("/farmer", s.register(entities.RoleFarmer))
	e.POST("/expert", s.register(entities.RoleExpert))

	e.POST("/farmer/service/smart-irrigation", s.submit)
	e.POST("/farmer/service/drone-spraying", s.submit)
	e.POST("/farmer/service/expert-visit", s.submit)

	e.GET("/farmer/cropcalendar/all", s.listCalendars)
	e.POST("/farmer/cropcalendar", s.submit)

	e.GET("/posts/all", s.listPosts)
	e.POST("/like/post/:id", s.submit)
	e.POST("/farmer/posts/create", s.submit)

	s.e = e
	return s
}

func (s *Server) Handler() http.Handler { return s.e }

func (s *Server) farmerLogin(c echo.Context) error {
	var body struct{ PhoneNumber, Password string }
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, env(false, "bad json", nil))
	}
	s.mu.Lock()
	u, ok := s.Farmers[body.PhoneNumber]
	pw := s.Password
	s.mu.Unlock()
	if !ok || body.Password != pw {
		return c.JSON(http.StatusUnauthorized, env(false, "Invalid credentials", nil))
	}
	return c.JSON(http.StatusOK, env(true, "Login successful", u))
}

func (s *Server) expertLogin(c echo.Context) error {
	var body struct{ Email, Password string }
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, env(false, "bad json", nil))
	}
	s.mu.Lock()
	u, ok := s.Experts[body.Email]
	pw := s.Password
	s.mu.Unlock()
	if !ok || body.Password != pw {
		return c.JSON(http.StatusUnauthorized, env(false, "Invalid credentials", nil))
	}
	return c.JSON(http.StatusOK, env(true, "Login successful", u))
}

func (s *Server) register(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body struct {
			Name        string `json:"name"`
			PhoneNumber string `json:"phoneNumber"`
			Email       string `json:"email"`
			Password    string `json:"password"`
		}
		if err := c.Bind(&body); err != nil || body.Name == "" {
			return c.JSON(http.StatusBadRequest, env(false, "name required", nil))
		}
		u := entities.User{
			ID:          "new-" + body.Name,
			Name:        body.Name,
			PhoneNumber: body.PhoneNumber,
			Email:       body.Email,
			Role:        role,
			Token:       "tok-" + body.Name,
		}
		s.mu.Lock()
		if role == entities.RoleFarmer {
			s.Farmers[body.PhoneNumber] = u
		} else {
			s.Experts[body.Email] = u
		}
		s.mu.Unlock()
		return c.JSON(http.StatusCreated, env(true, "Registered", u))
	}
}

func (s *Server) submit(c echo.Context) error {
	s.mu.Lock()
	s.LastAccessToken = c.Request().Header.Get("x-access-token")
	s.SubmitCount++
	fail, msg := s.FailStatus, s.FailMessage
	s.mu.Unlock()
	if fail != 0 {
		return c.JSON(fail, env(false, msg, nil))
	}
	return c.JSON(http.StatusOK, env(true, "submitted", map[string]string{"status": "ok"}))
}

func (s *Server) listCalendars(c echo.Context) error {
	s.mu.Lock()
	s.LastAccessToken = c.Request().Header.Get("x-access-token")
	cals := s.Calendars
	s.mu.Unlock()
	if cals == nil {
		cals = []entities.CropCalendar{}
	}
	return c.JSON(http.StatusOK, env(true, "ok", cals))
}

func (s *Server) listPosts(c echo.Context) error {
	s.mu.Lock()
	posts := s.PostList
	s.mu.Unlock()
	if posts == nil {
		posts = []entities.Post{}
	}
	return c.JSON(http.StatusOK, env(true, "ok", posts))
}

func env(success bool, message string, response any) map[string]any {
	return map[string]any{"success": success, "message": message, "response": response}
}
