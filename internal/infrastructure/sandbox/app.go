// Package sandbox levanta un backend local que emula los contratos del
// backend real de AutoFix: mismas rutas, envelope paginado, errores 400 por
// campo y JWT HS256. Sirve para desarrollar la consola sin red y para los
// tests de integración del SDK. No pretende la semántica completa del
// backend: solo lo que la consola observa.
package sandbox

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/autofix/consola-taller/pkg/config"
	"github.com/autofix/consola-taller/pkg/logger"
)

// App encapsula el servidor Fiber y su estado en memoria.
type App struct {
	Fiber *fiber.App
	cfg   config.SandboxConfig
	log   *logger.Logger
	datos *datos
	users *usuarios
}

// New construye el sandbox con el seed de datos y el usuario demo.
func New(cfg config.SandboxConfig, log *logger.Logger) *App {
	app := fiber.New(fiber.Config{
		AppName: "autofix-sandbox",
	})
	app.Use(recover.New())

	a := &App{
		Fiber: app,
		cfg:   cfg,
		log:   log,
		datos: nuevosDatos(),
		users: nuevosUsuarios(),
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "autofix-sandbox"})
	})

	api := app.Group("/api")

	// Auth (público)
	api.Post("/auth/token/", a.login)

	// Todo lo demás exige Bearer token
	protegido := api.Group("/", a.requireAuth)
	protegido.Get("/auth/me/", a.me)
	protegido.Post("/logout/", a.logout)
	protegido.Post("/change-password/", a.cambiarPassword)
	protegido.Get("/profile/", a.me)
	protegido.Get("/empleado/profile/", a.me)
	protegido.Get("/cliente/profile/", a.me)
	protegido.Patch("/profile/", a.actualizarPerfil)

	// Recursos CRUD. Los listados "grandes" responden con envelope
	// {count, results}; los catálogos con array plano, como el backend real.
	registrarCRUD(protegido, "clientes", a.datos.clientes, opciones{
		paginado: true,
		unicas:   []reglaUnica{{"nit", "Ya existe un cliente con este NIT."}},
	})
	registrarCRUD(protegido, "vehiculos", a.datos.vehiculos, opciones{
		paginado: true,
		unicas:   []reglaUnica{{"numero_placa", "Ya existe un vehículo con esta placa."}},
	})
	registrarCRUD(protegido, "citas", a.datos.citas, opciones{
		paginado: true,
		antes:    a.validarCita,
	})
	registrarCRUD(protegido, "empleados", a.datos.empleados, opciones{
		paginado: true,
		unicas:   []reglaUnica{{"ci", "Ya existe un empleado con este CI."}},
	})
	registrarCRUD(protegido, "items", a.datos.items, opciones{
		paginado: true,
		unicas:   []reglaUnica{{"codigo", "Ya existe un item con este código."}},
	})
	registrarCRUD(protegido, "presupuestos", a.datos.presupuestos, opciones{
		paginado: true,
		antes:    a.completarPresupuesto,
	})
	registrarCRUD(protegido, "ordenes", a.datos.ordenes, opciones{paginado: true})
	registrarCRUD(protegido, "users", a.datos.usuarios, opciones{
		paginado: true,
		unicas:   []reglaUnica{{"username", "Ya existe un usuario con este nombre."}},
	})
	registrarCRUD(protegido, "areas", a.datos.areas, opciones{})
	registrarCRUD(protegido, "cargos", a.datos.cargos, opciones{})
	registrarCRUD(protegido, "marcas", a.datos.marcas, opciones{})
	registrarCRUD(protegido, "modelos", a.datos.modelos, opciones{})

	// Asistencia
	protegido.Get("/asistencias/", a.listarAsistencias)
	protegido.Post("/asistencia/marcar/", a.marcarAsistencia)
	protegido.Get("/asistencia/reporte-mensual/", a.reporteMensual)

	// Chatbot
	protegido.Post("/chatbot/mensaje/", a.chatbot)

	return a
}
