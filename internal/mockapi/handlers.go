package mockapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cudeca/eventos-seed/internal/model"
	"github.com/cudeca/eventos-seed/pkg/jwt"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// userResponse is the account summary returned by register and login
type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Rol       string `json:"rol"`
}

func newUserResponse(u *User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Name,
		Apellidos: u.Surname,
		Rol:       u.RoleList(),
	}
}

// eventResponse is an event as the backend returns it
type eventResponse struct {
	ID                  int64        `json:"id"`
	Nombre              string       `json:"nombre"`
	Descripcion         string       `json:"descripcion"`
	FechaInicio         string       `json:"fechaInicio"`
	FechaFin            string       `json:"fechaFin"`
	Lugar               string       `json:"lugar"`
	ObjetivoRecaudacion model.Amount `json:"objetivoRecaudacion"`
	ImagenURL           string       `json:"imagenUrl"`
	Estado              string       `json:"estado"`
}

func newEventResponse(rec *EventRecord) eventResponse {
	return eventResponse{
		ID:                  rec.ID,
		Nombre:              rec.Event.Title,
		Descripcion:         rec.Event.Description,
		FechaInicio:         rec.Event.StartsAt.UTC().Format(time.RFC3339),
		FechaFin:            rec.Event.EndsAt.UTC().Format(time.RFC3339),
		Lugar:               rec.Event.Venue,
		ObjetivoRecaudacion: rec.Event.Target,
		ImagenURL:           rec.Event.ImageURL,
		Estado:              rec.Status,
	}
}

func writeProblem(c *gin.Context, p *model.ProblemDetails) {
	p.Instance = c.Request.URL.Path
	p.WriteJSON(c.Writer)
	c.Abort()
}

// ============================================================================
// Auth
// ============================================================================

func (s *Server) register(c *gin.Context) {
	var req model.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		writeProblem(c, model.NewBadRequestError("could not parse request body"))
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeProblem(c, model.NewBadRequestError("email and password are required"))
		return
	}

	cost := s.cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		s.logger.Error("hash password", "error", err)
		writeProblem(c, model.NewInternalError(""))
		return
	}

	user, err := s.store.CreateUser(User{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Hash:    string(hash),
		Roles:   s.grantRoles(req.Role),
	})
	if errors.Is(err, ErrEmailTaken) {
		writeProblem(c, model.NewConflictError("email already registered"))
		return
	}
	if err != nil {
		writeProblem(c, model.NewInternalError(""))
		return
	}

	s.logger.Info("user registered", "email", user.Email, "roles", user.RoleList())
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// grantRoles decides the roles of a new account. Every account is a buyer;
// the requested role is added only when role requests are allowed.
func (s *Server) grantRoles(requested string) []string {
	roles := []string{RoleBuyer}
	if !s.cfg.AllowRoleRequest {
		return roles
	}
	role := normalizeRole(requested)
	if role == "" || role == RoleBuyer {
		return roles
	}
	return append(roles, role)
}

func normalizeRole(role string) string {
	role = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(role)), "ROLE_")
	if role == "ADMIN" {
		return RoleAdmin
	}
	return role
}

func (s *Server) login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeProblem(c, model.NewBadRequestError("could not parse request body"))
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if err != nil {
		writeProblem(c, model.NewLoginFailedError())
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(req.Password)) != nil {
		writeProblem(c, model.NewLoginFailedError())
		return
	}

	token, err := s.tokens.Sign(jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{Subject: strconv.FormatInt(user.ID, 10)},
		Email:            user.Email,
		UserID:           strconv.FormatInt(user.ID, 10),
		Rol:              user.RoleList(),
	})
	if err != nil {
		s.logger.Error("sign token", "error", err)
		writeProblem(c, model.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		s.cfg.TokenField: token,
		"user":           newUserResponse(user),
	})
}

// ============================================================================
// Events
// ============================================================================

func (s *Server) listEvents(c *gin.Context) {
	records := s.store.Events()
	out := make([]eventResponse, 0, len(records))
	for i := range records {
		out = append(out, newEventResponse(&records[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createEvent(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		writeProblem(c, model.NewBadRequestError("could not parse request body"))
		return
	}
	if strings.TrimSpace(event.Title) == "" {
		writeProblem(c, model.NewBadRequestError("nombre is required"))
		return
	}
	if event.StartsAt.IsZero() || !event.EndsAt.After(event.StartsAt) {
		writeProblem(c, model.NewBadRequestError("fechaFin must be after fechaInicio"))
		return
	}
	if event.Target.Cents() < 0 {
		writeProblem(c, model.NewBadRequestError("objetivoRecaudacion must not be negative"))
		return
	}

	claims := claimsFrom(c)
	ownerID, _ := strconv.ParseInt(claims.UserID, 10, 64)

	rec := s.store.CreateEvent(ownerID, event)
	s.logger.Info("event created", "id", rec.ID, "nombre", event.Title, "owner", claims.Email)
	c.JSON(http.StatusCreated, newEventResponse(rec))
}

func (s *Server) publishEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeProblem(c, model.NewNotFoundError("event"))
		return
	}

	rec, err := s.store.PublishEvent(id)
	if errors.Is(err, ErrEventNotFound) {
		writeProblem(c, model.NewNotFoundError("event"))
		return
	}
	if err != nil {
		writeProblem(c, model.NewInternalError(""))
		return
	}

	s.logger.Info("event published", "id", rec.ID)
	c.JSON(http.StatusOK, newEventResponse(rec))
}
