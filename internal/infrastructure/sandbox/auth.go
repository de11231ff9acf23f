package sandbox

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	pkgjwt "github.com/autofix/consola-taller/pkg/jwt"
)

// usuario es una cuenta del sandbox con su hash bcrypt.
type usuario struct {
	ID       int64
	Username string
	Email    string
	Rol      string
	Hash     []byte
}

// usuarios guarda las cuentas y los refresh tokens vigentes.
type usuarios struct {
	mu        sync.Mutex
	porNombre map[string]*usuario
	refresh   map[string]string // token -> username
}

// nuevosUsuarios siembra las cuentas demo: admin/admin123 y taller/taller123.
func nuevosUsuarios() *usuarios {
	u := &usuarios{
		porNombre: make(map[string]*usuario),
		refresh:   make(map[string]string),
	}
	u.alta(1, "admin", "admin@autofix.local", "admin", "admin123")
	u.alta(2, "taller", "taller@autofix.local", "mecanico", "taller123")
	return u
}

func (u *usuarios) alta(id int64, nombre, email, rol, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u.porNombre[nombre] = &usuario{ID: id, Username: nombre, Email: email, Rol: rol, Hash: hash}
}

func (u *usuarios) verificar(nombre, password string) *usuario {
	u.mu.Lock()
	defer u.mu.Unlock()
	cuenta, ok := u.porNombre[nombre]
	if !ok {
		return nil
	}
	if bcrypt.CompareHashAndPassword(cuenta.Hash, []byte(password)) != nil {
		return nil
	}
	return cuenta
}

// ── Handlers ──────────────────────────────────────────────────────────────────

// login POST /api/auth/token/
func (a *App) login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo inválido"})
	}
	if body.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"username": []string{"Este campo es requerido."}})
	}
	cuenta := a.users.verificar(body.Username, body.Password)
	if cuenta == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "No se encontró una cuenta activa con las credenciales proporcionadas.",
		})
	}

	access, err := pkgjwt.Generate(a.cfg.JWTSecret, cuenta.ID, cuenta.Username, cuenta.Rol, a.cfg.Issuer, a.cfg.ExpMin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	refresh := uuid.NewString()
	a.users.mu.Lock()
	a.users.refresh[refresh] = cuenta.Username
	a.users.mu.Unlock()

	a.log.Info().Str("usuario", cuenta.Username).Str("rol", cuenta.Rol).Msg("login en sandbox")
	return c.JSON(fiber.Map{"access": access, "refresh": refresh})
}

// requireAuth valida el Bearer token y deja los claims en Locals.
func (a *App) requireAuth(c *fiber.Ctx) error {
	encabezado := c.Get("Authorization")
	partes := strings.SplitN(encabezado, " ", 2)
	if len(partes) != 2 || !strings.EqualFold(partes[0], "Bearer") || strings.TrimSpace(partes[1]) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Las credenciales de autenticación no se proveyeron.",
		})
	}
	claims, err := pkgjwt.Parse(a.cfg.JWTSecret, strings.TrimSpace(partes[1]))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "El token dado no es válido para ningún tipo de token.",
		})
	}
	c.Locals("claims", claims)
	return c.Next()
}

func claimsDe(c *fiber.Ctx) *pkgjwt.Claims {
	claims, _ := c.Locals("claims").(*pkgjwt.Claims)
	return claims
}

// me GET /api/auth/me/ (y /profile/ y variantes)
func (a *App) me(c *fiber.Ctx) error {
	claims := claimsDe(c)
	a.users.mu.Lock()
	cuenta := a.users.porNombre[claims.Username]
	a.users.mu.Unlock()
	if cuenta == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "No encontrado."})
	}
	return c.JSON(fiber.Map{
		"id":            cuenta.ID,
		"username":      cuenta.Username,
		"email":         cuenta.Email,
		"rol":           cuenta.Rol,
		"nombre_taller": "Taller AutoFix",
		"logo_taller":   "",
	})
}

// logout POST /api/logout/
func (a *App) logout(c *fiber.Ctx) error {
	var body struct {
		Refresh string `json:"refresh"`
	}
	_ = c.BodyParser(&body)
	a.users.mu.Lock()
	delete(a.users.refresh, body.Refresh)
	a.users.mu.Unlock()
	return c.JSON(fiber.Map{"detail": "sesión cerrada"})
}

// cambiarPassword POST /api/change-password/
func (a *App) cambiarPassword(c *fiber.Ctx) error {
	claims := claimsDe(c)
	var body struct {
		Old string `json:"old_password"`
		New string `json:"new_password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo inválido"})
	}
	if body.New == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"new_password": []string{"Este campo es requerido."}})
	}
	cuenta := a.users.verificar(claims.Username, body.Old)
	if cuenta == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"old_password": []string{"Contraseña actual incorrecta."}})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.New), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	a.users.mu.Lock()
	cuenta.Hash = hash
	a.users.mu.Unlock()
	return c.JSON(fiber.Map{"detail": "contraseña actualizada"})
}

// actualizarPerfil PATCH /api/profile/
func (a *App) actualizarPerfil(c *fiber.Ctx) error {
	claims := claimsDe(c)
	var cambios map[string]string
	if err := c.BodyParser(&cambios); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo inválido"})
	}
	a.users.mu.Lock()
	cuenta := a.users.porNombre[claims.Username]
	if cuenta != nil {
		if email, ok := cambios["email"]; ok {
			cuenta.Email = email
		}
	}
	a.users.mu.Unlock()
	return a.me(c)
}

// chatbot POST /api/chatbot/mensaje/
func (a *App) chatbot(c *fiber.Ctx) error {
	var body struct {
		Mensaje string `json:"mensaje"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Mensaje) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"mensaje": []string{"Este campo es requerido."}})
	}
	return c.JSON(fiber.Map{
		"respuesta": "Sandbox: recibí tu mensaje «" + body.Mensaje + "». El chatbot real vive en el backend.",
	})
}
