package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/autofix/consola-taller/internal/api"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// cmdLogin inicia sesión y precarga los datos del taller para el menú.
func (c *Consola) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	usuario := fs.String("usuario", "", "nombre de usuario")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *usuario == "" || *password == "" {
		return fmt.Errorf("uso: login -usuario <u> -password <p>")
	}

	if err := c.api.Login(ctx, *usuario, *password); err != nil {
		return err
	}
	// Me cachea nombre y logo del taller en la sesión; si falla no es
	// motivo para deshacer el login.
	if _, err := c.api.Me(ctx); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo cargar el perfil tras el login")
	}

	fmt.Fprintf(c.out, "sesión iniciada como %s (%s)\n",
		c.sesion.Get(api.ClaveUsername), noVacio(c.sesion.Get(api.ClaveUserRole), "sin rol"))
	return nil
}

// cmdLogout cierra la sesión local y avisa al backend.
func (c *Consola) cmdLogout(ctx context.Context, _ []string) error {
	if err := c.api.Logout(ctx); err != nil {
		// La sesión local ya quedó limpia; el aviso al backend es lo único
		// que pudo fallar.
		c.log.Warn().Err(err).Msg("logout remoto con error")
	}
	fmt.Fprintln(c.out, "sesión cerrada")
	return nil
}

// cmdPerfil muestra el perfil propio; con -email lo edita.
func (c *Consola) cmdPerfil(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("perfil", flag.ContinueOnError)
	email := fs.String("email", "", "nuevo correo (edita el perfil)")
	vista := fs.String("vista", "", "perfil específico: empleado | cliente")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email != "" {
		p, err := c.api.ActualizarPerfil(ctx, map[string]string{"email": *email})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "perfil actualizado: %s <%s>\n", p.Username, p.Email)
		return nil
	}

	var perfil *entity.Perfil
	var err error
	switch *vista {
	case "empleado":
		perfil, err = c.api.PerfilEmpleado(ctx)
	case "cliente":
		perfil, err = c.api.PerfilCliente(ctx)
	case "":
		perfil, err = c.api.Perfil(ctx)
	default:
		return fmt.Errorf("vista desconocida: %s (usa empleado o cliente)", *vista)
	}
	if err != nil {
		return err
	}

	w := c.tabla()
	fmt.Fprintf(w, "usuario:\t%s\n", perfil.Username)
	fmt.Fprintf(w, "correo:\t%s\n", noVacio(perfil.Email, "—"))
	fmt.Fprintf(w, "rol:\t%s\n", noVacio(perfil.Rol, "—"))
	if perfil.Nombre != "" {
		fmt.Fprintf(w, "nombre:\t%s %s\n", perfil.Nombre, perfil.Apellido)
	}
	if perfil.Telefono != "" {
		fmt.Fprintf(w, "teléfono:\t%s\n", perfil.Telefono)
	}
	if perfil.NombreTaller != "" {
		fmt.Fprintf(w, "taller:\t%s\n", perfil.NombreTaller)
	}
	return w.Flush()
}

// cmdPassword cambia la contraseña del usuario autenticado.
func (c *Consola) cmdPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("password", flag.ContinueOnError)
	actual := fs.String("actual", "", "contraseña actual")
	nueva := fs.String("nueva", "", "contraseña nueva")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *actual == "" || *nueva == "" {
		return fmt.Errorf("uso: password -actual <p> -nueva <p>")
	}
	if err := c.api.CambiarPassword(ctx, *actual, *nueva); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "contraseña actualizada")
	return nil
}

// cmdChat manda un mensaje al asistente y muestra la respuesta.
func (c *Consola) cmdChat(ctx context.Context, args []string) error {
	mensaje := strings.TrimSpace(strings.Join(args, " "))
	if mensaje == "" {
		return fmt.Errorf("uso: chat <mensaje>")
	}
	respuesta, err := c.api.EnviarMensajeChat(ctx, mensaje)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, respuesta)
	return nil
}
