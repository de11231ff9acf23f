package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los módulos de api los
// envuelven con el mensaje en español que la consola muestra tal cual.
var (
	ErrSinConexion    = errors.New("error de conexión con el servidor")
	ErrSesionExpirada = errors.New("sesión expirada, inicia sesión de nuevo")
	ErrSinPermiso     = errors.New("no tienes permiso para realizar esta acción")
	ErrNoExiste       = errors.New("el recurso no existe o ya fue eliminado")
	ErrValidacion     = errors.New("datos inválidos")
	ErrCredenciales   = errors.New("usuario o contraseña incorrectos")
)
