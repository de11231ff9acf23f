package sandbox

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// reglaUnica describe un campo con unicidad emulada (nit, numero_placa...).
type reglaUnica struct {
	campo   string
	mensaje string
}

// errorCampo es un rechazo de validación con el formato 400 del backend:
// {"campo": ["mensaje"]}.
type errorCampo struct {
	campo   string
	mensaje string
}

func (e *errorCampo) respuesta() fiber.Map {
	return fiber.Map{e.campo: []string{e.mensaje}}
}

// opciones configura el CRUD genérico de un recurso.
type opciones struct {
	paginado bool
	unicas   []reglaUnica
	// antes se ejecuta sobre el documento ya parseado antes de guardarlo
	// (validaciones cruzadas, campos computados). excluido es el id propio
	// en updates, 0 en creates.
	antes func(doc map[string]any, excluido int64) *errorCampo
}

func idParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func noEncontrado(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "No encontrado."})
}

// registrarCRUD monta el CRUD estándar de un recurso sobre la colección.
func registrarCRUD(r fiber.Router, nombre string, col *coleccion, opts opciones) {
	grupo := r.Group("/" + nombre)

	grupo.Get("/", func(c *fiber.Ctx) error {
		filas := col.listar()
		if opts.paginado {
			return c.JSON(fiber.Map{"count": len(filas), "results": filas})
		}
		return c.JSON(filas)
	})

	grupo.Get("/:id/", func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return noEncontrado(c)
		}
		doc, ok := col.obtener(id)
		if !ok {
			return noEncontrado(c)
		}
		return c.JSON(doc)
	})

	guardar := func(c *fiber.Ctx, excluido int64) (map[string]any, error) {
		var doc map[string]any
		if err := c.BodyParser(&doc); err != nil {
			return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo inválido"})
		}
		for _, regla := range opts.unicas {
			if col.existeOtro(regla.campo, doc[regla.campo], excluido) {
				ec := errorCampo{campo: regla.campo, mensaje: regla.mensaje}
				return nil, c.Status(fiber.StatusBadRequest).JSON(ec.respuesta())
			}
		}
		if opts.antes != nil {
			if ec := opts.antes(doc, excluido); ec != nil {
				return nil, c.Status(fiber.StatusBadRequest).JSON(ec.respuesta())
			}
		}
		return doc, nil
	}

	grupo.Post("/", func(c *fiber.Ctx) error {
		doc, err := guardar(c, 0)
		if doc == nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(col.crear(doc))
	})

	grupo.Put("/:id/", func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return noEncontrado(c)
		}
		doc, err := guardar(c, id)
		if doc == nil {
			return err
		}
		if !col.reemplazar(id, doc) {
			return noEncontrado(c)
		}
		return c.JSON(doc)
	})

	grupo.Patch("/:id/", func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return noEncontrado(c)
		}
		var cambios map[string]any
		if err := c.BodyParser(&cambios); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo inválido"})
		}
		doc, ok := col.parchar(id, cambios)
		if !ok {
			return noEncontrado(c)
		}
		return c.JSON(doc)
	})

	grupo.Delete("/:id/", func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return noEncontrado(c)
		}
		if !col.eliminar(id) {
			return noEncontrado(c)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
