package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/autofix/consola-taller/internal/domain"
	"github.com/autofix/consola-taller/internal/domain/entity"
	pkgjwt "github.com/autofix/consola-taller/pkg/jwt"
)

// Módulo de autenticación y perfil: /auth/token/, /auth/me/, /logout/,
// /change-password/, /profile/, /empleado/profile/, /cliente/profile/.

// tokenResponse respuesta de /auth/token/.
type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login obtiene el par de tokens y deja en la sesión access, refresh,
// username y userRole. El rol sale de los claims del access token
// decodificados sin verificar firma, solo para armar el menú; la
// autorización real siempre la hace el backend.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	data, err := c.enviar(ctx, http.MethodPost, "/auth/token/", body)
	if err != nil {
		// El endpoint de token responde 400/401 ante credenciales malas;
		// ambos significan lo mismo para quien está en la pantalla de login.
		if errors.Is(err, domain.ErrValidacion) || errors.Is(err, domain.ErrSesionExpirada) {
			return domain.ErrCredenciales
		}
		return err
	}
	var tok tokenResponse
	if err := decodificar(data, &tok); err != nil {
		return err
	}

	rol := ""
	if claims, err := pkgjwt.DecodeUnverified(tok.Access); err == nil {
		rol = claims.Role
	} else {
		c.log.Warn().Err(err).Msg("access token sin claims legibles")
	}

	return c.sesion.Put(map[string]string{
		ClaveAccess:   tok.Access,
		ClaveRefresh:  tok.Refresh,
		ClaveUsername: username,
		ClaveUserRole: rol,
	})
}

// Me devuelve el perfil del usuario autenticado (/auth/me/) y cachea en la
// sesión el nombre y logo del taller para el encabezado de la consola.
func (c *Client) Me(ctx context.Context) (*entity.Perfil, error) {
	data, err := c.get(ctx, "/auth/me/", nil)
	if err != nil {
		return nil, err
	}
	var p entity.Perfil
	if err := decodificar(data, &p); err != nil {
		return nil, err
	}
	if p.NombreTaller != "" {
		if err := c.sesion.Put(map[string]string{
			ClaveNombreTaller: p.NombreTaller,
			ClaveLogoTaller:   p.LogoTaller,
		}); err != nil {
			c.log.Warn().Err(err).Msg("no se pudo cachear los datos del taller")
		}
	}
	return &p, nil
}

// Logout avisa al backend y limpia la sesión local. La sesión se limpia
// aunque la llamada falle: el token local deja de existir igual.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.enviar(ctx, http.MethodPost, "/logout/", map[string]string{
		"refresh": c.sesion.Get(ClaveRefresh),
	})
	if clearErr := c.sesion.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

// CambiarPassword cambia la contraseña del usuario autenticado.
func (c *Client) CambiarPassword(ctx context.Context, actual, nueva string) error {
	_, err := c.enviar(ctx, http.MethodPost, "/change-password/", map[string]string{
		"old_password": actual,
		"new_password": nueva,
	})
	return err
}

// Perfil devuelve /profile/ (vista genérica del usuario).
func (c *Client) Perfil(ctx context.Context) (*entity.Perfil, error) {
	return c.perfilDesde(ctx, "/profile/")
}

// PerfilEmpleado devuelve /empleado/profile/.
func (c *Client) PerfilEmpleado(ctx context.Context) (*entity.Perfil, error) {
	return c.perfilDesde(ctx, "/empleado/profile/")
}

// PerfilCliente devuelve /cliente/profile/.
func (c *Client) PerfilCliente(ctx context.Context) (*entity.Perfil, error) {
	return c.perfilDesde(ctx, "/cliente/profile/")
}

func (c *Client) perfilDesde(ctx context.Context, path string) (*entity.Perfil, error) {
	data, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var p entity.Perfil
	if err := decodificar(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ActualizarPerfil envía los cambios del perfil propio (PATCH /profile/).
func (c *Client) ActualizarPerfil(ctx context.Context, cambios map[string]string) (*entity.Perfil, error) {
	data, err := c.enviar(ctx, http.MethodPatch, "/profile/", cambios)
	if err != nil {
		return nil, err
	}
	var p entity.Perfil
	if err := decodificar(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
