package cli

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"strconv"

	"github.com/autofix/consola-taller/internal/api"
	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/application/filtro"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Comandos de los recursos "planos": clientes, vehículos, empleados, items
// y tablas de referencia. Todos siguen el mismo patrón: listar con búsqueda
// local, ver por id, crear/editar vía flags y eliminar.

func refID(r entity.Ref) int64 {
	if p := r.IDPtr(); p != nil {
		return *p
	}
	return 0
}

func refDe(id int64) entity.Ref {
	if id == 0 {
		return entity.Ref{}
	}
	return entity.NewRef(id)
}

// ── clientes ──────────────────────────────────────────────────────────────────

func (c *Consola) cmdClientes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: clientes listar|ver|crear|editar|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("clientes listar", flag.ContinueOnError)
		buscar := fs.String("buscar", "", "búsqueda local (nombre, NIT, teléfono)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		lista, err := c.api.ListarClientes(ctx, nil)
		if err != nil {
			return err
		}
		lista = filtro.Filtrar(lista, *buscar, func(cl entity.Cliente) []string {
			return []string{cl.Nombre, cl.Apellido, cl.NIT, cl.Telefono}
		})
		w := c.tabla()
		fmt.Fprintln(w, "ID\tNOMBRE\tNIT\tTELÉFONO\tTIPO\tACTIVO")
		for _, cl := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
				cl.ID, cl.NombreCompleto(), cl.NIT, cl.Telefono, cl.TipoCliente, cl.Activo)
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		cl, err := c.api.ObtenerCliente(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "nombre:\t%s\n", cl.NombreCompleto())
		fmt.Fprintf(w, "nit:\t%s\n", cl.NIT)
		fmt.Fprintf(w, "teléfono:\t%s\n", noVacio(cl.Telefono, "—"))
		fmt.Fprintf(w, "dirección:\t%s\n", noVacio(cl.Direccion, "—"))
		fmt.Fprintf(w, "tipo:\t%s\n", cl.TipoCliente)
		fmt.Fprintf(w, "activo:\t%t\n", cl.Activo)
		if !cl.Usuario.Vacia() {
			fmt.Fprintf(w, "usuario:\t%d %s\n", cl.Usuario.ID, cl.Usuario.Nombre)
		}
		return w.Flush()

	case "crear", "editar":
		var f mapper.FormCliente
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			cl, err := c.api.ObtenerCliente(ctx, id)
			if err != nil {
				return err
			}
			f = mapper.FormDesdeCliente(*cl)
			resto = resto[1:]
		} else {
			f.Activo = true
		}

		fs := flag.NewFlagSet("clientes "+sub, flag.ContinueOnError)
		fs.StringVar(&f.Nombre, "nombre", f.Nombre, "nombre")
		fs.StringVar(&f.Apellido, "apellido", f.Apellido, "apellido")
		fs.StringVar(&f.NIT, "nit", f.NIT, "NIT (único)")
		fs.StringVar(&f.Telefono, "telefono", f.Telefono, "teléfono")
		fs.StringVar(&f.Direccion, "direccion", f.Direccion, "dirección")
		fs.StringVar(&f.TipoCliente, "tipo", f.TipoCliente, "NATURAL o EMPRESA")
		fs.BoolVar(&f.Activo, "activo", f.Activo, "cliente activo")
		usuario := fs.Int64("usuario", refID(f.Usuario), "id de usuario vinculado (0 = ninguno)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		f.Usuario = refDe(*usuario)

		if sub == "crear" {
			cl, err := c.api.CrearCliente(ctx, mapper.ToAPICliente(f))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "cliente %d creado: %s\n", cl.ID, cl.NombreCompleto())
			return nil
		}
		cl, err := c.api.ActualizarCliente(ctx, id, mapper.ToAPICliente(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "cliente %d actualizado: %s\n", cl.ID, cl.NombreCompleto())
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarCliente(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "cliente %d eliminado\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: clientes %s", sub)
}

// ── vehículos ─────────────────────────────────────────────────────────────────

func (c *Consola) cmdVehiculos(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: vehiculos listar|ver|crear|editar|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("vehiculos listar", flag.ContinueOnError)
		buscar := fs.String("buscar", "", "búsqueda local (placa, VIN, color)")
		cliente := fs.Int64("cliente", 0, "filtrar por id de cliente")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		var filtros url.Values
		if *cliente != 0 {
			filtros = url.Values{"cliente": {strconv.FormatInt(*cliente, 10)}}
		}
		lista, err := c.api.ListarVehiculos(ctx, filtros)
		if err != nil {
			return err
		}
		lista = filtro.Filtrar(lista, *buscar, func(v entity.Vehiculo) []string {
			return []string{v.NumeroPlaca, v.VIN, v.Color, v.Marca.Nombre, v.Modelo.Nombre}
		})
		w := c.tabla()
		fmt.Fprintln(w, "ID\tPLACA\tMARCA\tMODELO\tAÑO\tCOLOR\tCLIENTE")
		for _, v := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
				v.ID, v.NumeroPlaca, v.Marca.Nombre, v.Modelo.Nombre, v.Anio, v.Color,
				noVacio(v.Cliente.Nombre, strconv.FormatInt(v.Cliente.ID, 10)))
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		v, err := c.api.ObtenerVehiculo(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "placa:\t%s\n", v.NumeroPlaca)
		fmt.Fprintf(w, "vin:\t%s\n", noVacio(v.VIN, "—"))
		fmt.Fprintf(w, "motor:\t%s\n", noVacio(v.NumeroMotor, "—"))
		fmt.Fprintf(w, "marca/modelo:\t%s %s\n", v.Marca.Nombre, v.Modelo.Nombre)
		fmt.Fprintf(w, "año:\t%d\n", v.Anio)
		fmt.Fprintf(w, "color:\t%s\n", noVacio(v.Color, "—"))
		fmt.Fprintf(w, "combustible:\t%s\n", noVacio(v.TipoCombustible, "—"))
		return w.Flush()

	case "crear", "editar":
		var f mapper.FormVehiculo
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			v, err := c.api.ObtenerVehiculo(ctx, id)
			if err != nil {
				return err
			}
			f = mapper.FormDesdeVehiculo(*v)
			resto = resto[1:]
		}

		fs := flag.NewFlagSet("vehiculos "+sub, flag.ContinueOnError)
		fs.StringVar(&f.NumeroPlaca, "placa", f.NumeroPlaca, "número de placa (único)")
		fs.StringVar(&f.VIN, "vin", f.VIN, "VIN")
		fs.StringVar(&f.NumeroMotor, "motor", f.NumeroMotor, "número de motor")
		fs.StringVar(&f.Tipo, "tipo", f.Tipo, "tipo de vehículo")
		fs.StringVar(&f.Version, "version", f.Version, "versión")
		fs.StringVar(&f.Color, "color", f.Color, "color")
		fs.StringVar(&f.Anio, "anio", f.Anio, "año (entero)")
		fs.StringVar(&f.Cilindrada, "cilindrada", f.Cilindrada, "cilindrada")
		fs.StringVar(&f.TipoCombustible, "combustible", f.TipoCombustible, "tipo de combustible")
		cliente := fs.Int64("cliente", refID(f.Cliente), "id del cliente dueño")
		marca := fs.Int64("marca", refID(f.Marca), "id de marca")
		modelo := fs.Int64("modelo", refID(f.Modelo), "id de modelo")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		f.Cliente, f.Marca, f.Modelo = refDe(*cliente), refDe(*marca), refDe(*modelo)

		payload, err := mapper.ToAPIVehiculo(f)
		if err != nil {
			return err
		}
		if sub == "crear" {
			v, err := c.api.CrearVehiculo(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "vehículo %d creado: %s\n", v.ID, v.NumeroPlaca)
			return nil
		}
		v, err := c.api.ActualizarVehiculo(ctx, id, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "vehículo %d actualizado: %s\n", v.ID, v.NumeroPlaca)
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarVehiculo(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "vehículo %d eliminado\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: vehiculos %s", sub)
}

// ── empleados ─────────────────────────────────────────────────────────────────

func (c *Consola) cmdEmpleados(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: empleados listar|ver|crear|editar|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("empleados listar", flag.ContinueOnError)
		buscar := fs.String("buscar", "", "búsqueda local (nombre, CI)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		lista, err := c.api.ListarEmpleados(ctx, nil)
		if err != nil {
			return err
		}
		lista = filtro.Filtrar(lista, *buscar, func(e entity.Empleado) []string {
			return []string{e.Nombre, e.Apellido, e.CI}
		})
		w := c.tabla()
		fmt.Fprintln(w, "ID\tNOMBRE\tCI\tCARGO\tÁREA\tSUELDO\tACTIVO")
		for _, e := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
				e.ID, e.NombreCompleto(), e.CI, e.Cargo.Nombre, e.Area.Nombre,
				e.Sueldo.StringFixed(2), e.Estado)
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		e, err := c.api.ObtenerEmpleado(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "nombre:\t%s\n", e.NombreCompleto())
		fmt.Fprintf(w, "ci:\t%s\n", e.CI)
		fmt.Fprintf(w, "teléfono:\t%s\n", noVacio(e.Telefono, "—"))
		fmt.Fprintf(w, "dirección:\t%s\n", noVacio(e.Direccion, "—"))
		fmt.Fprintf(w, "cargo:\t%s\n", noVacio(e.Cargo.Nombre, "—"))
		fmt.Fprintf(w, "área:\t%s\n", noVacio(e.Area.Nombre, "—"))
		fmt.Fprintf(w, "sueldo:\t%s\n", e.Sueldo.StringFixed(2))
		fmt.Fprintf(w, "activo:\t%t\n", e.Estado)
		return w.Flush()

	case "crear", "editar":
		var f mapper.FormEmpleado
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			e, err := c.api.ObtenerEmpleado(ctx, id)
			if err != nil {
				return err
			}
			f = mapper.FormDesdeEmpleado(*e)
			resto = resto[1:]
		} else {
			f.Estado = true
		}

		fs := flag.NewFlagSet("empleados "+sub, flag.ContinueOnError)
		fs.StringVar(&f.Nombre, "nombre", f.Nombre, "nombre")
		fs.StringVar(&f.Apellido, "apellido", f.Apellido, "apellido")
		fs.StringVar(&f.CI, "ci", f.CI, "carnet de identidad (único)")
		fs.StringVar(&f.Direccion, "direccion", f.Direccion, "dirección")
		fs.StringVar(&f.Telefono, "telefono", f.Telefono, "teléfono")
		fs.StringVar(&f.Sexo, "sexo", f.Sexo, "M o F")
		fs.StringVar(&f.Sueldo, "sueldo", f.Sueldo, "sueldo (decimal)")
		fs.BoolVar(&f.Estado, "activo", f.Estado, "empleado activo")
		cargo := fs.Int64("cargo", refID(f.Cargo), "id de cargo")
		area := fs.Int64("area", refID(f.Area), "id de área")
		usuario := fs.Int64("usuario", refID(f.Usuario), "id de usuario vinculado (0 = ninguno)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		f.Cargo, f.Area, f.Usuario = refDe(*cargo), refDe(*area), refDe(*usuario)

		payload, err := mapper.ToAPIEmpleado(f)
		if err != nil {
			return err
		}
		if sub == "crear" {
			e, err := c.api.CrearEmpleado(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "empleado %d creado: %s\n", e.ID, e.NombreCompleto())
			return nil
		}
		e, err := c.api.ActualizarEmpleado(ctx, id, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "empleado %d actualizado: %s\n", e.ID, e.NombreCompleto())
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarEmpleado(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "empleado %d eliminado\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: empleados %s", sub)
}

// ── items ─────────────────────────────────────────────────────────────────────

func (c *Consola) cmdItems(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: items listar|ver|crear|editar|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("items listar", flag.ContinueOnError)
		buscar := fs.String("buscar", "", "búsqueda local (código, nombre)")
		tipo := fs.String("tipo", "", "filtrar por tipo: venta | taller | servicio")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		var filtros url.Values
		if *tipo != "" {
			filtros = url.Values{"tipo": {*tipo}}
		}
		lista, err := c.api.ListarItems(ctx, filtros)
		if err != nil {
			return err
		}
		lista = filtro.Filtrar(lista, *buscar, func(it entity.Item) []string {
			return []string{it.Codigo, it.Nombre, it.Fabricante}
		})
		w := c.tabla()
		fmt.Fprintln(w, "ID\tCÓDIGO\tNOMBRE\tTIPO\tPRECIO\tSTOCK\tÁREA")
		for _, it := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
				it.ID, it.Codigo, it.Nombre, it.Tipo, it.Precio.StringFixed(2), it.Stock, it.Area.Nombre)
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		it, err := c.api.ObtenerItem(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "código:\t%s\n", it.Codigo)
		fmt.Fprintf(w, "nombre:\t%s\n", it.Nombre)
		fmt.Fprintf(w, "descripción:\t%s\n", noVacio(it.Descripcion, "—"))
		fmt.Fprintf(w, "fabricante:\t%s\n", noVacio(it.Fabricante, "—"))
		fmt.Fprintf(w, "tipo:\t%s\n", it.Tipo)
		fmt.Fprintf(w, "precio:\t%s\n", it.Precio.StringFixed(2))
		fmt.Fprintf(w, "costo:\t%s\n", it.Costo.StringFixed(2))
		fmt.Fprintf(w, "stock:\t%d\n", it.Stock)
		return w.Flush()

	case "crear", "editar":
		var p api.ItemPayload
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			it, err := c.api.ObtenerItem(ctx, id)
			if err != nil {
				return err
			}
			p = api.ItemPayload{
				Codigo: it.Codigo, Nombre: it.Nombre, Descripcion: it.Descripcion,
				Fabricante: it.Fabricante, Precio: it.Precio.String(), Costo: it.Costo.String(),
				Stock: it.Stock, Imagen: it.Imagen, Estado: it.Estado,
				Area: it.Area.IDPtr(), Tipo: it.Tipo,
			}
			resto = resto[1:]
		} else {
			p.Estado = true
			p.Tipo = entity.ItemVenta
		}

		fs := flag.NewFlagSet("items "+sub, flag.ContinueOnError)
		fs.StringVar(&p.Codigo, "codigo", p.Codigo, "código (único)")
		fs.StringVar(&p.Nombre, "nombre", p.Nombre, "nombre")
		fs.StringVar(&p.Descripcion, "descripcion", p.Descripcion, "descripción")
		fs.StringVar(&p.Fabricante, "fabricante", p.Fabricante, "fabricante")
		fs.StringVar(&p.Precio, "precio", p.Precio, "precio (decimal)")
		fs.StringVar(&p.Costo, "costo", p.Costo, "costo (decimal)")
		fs.IntVar(&p.Stock, "stock", p.Stock, "stock")
		fs.StringVar(&p.Tipo, "tipo", p.Tipo, "venta | taller | servicio")
		fs.BoolVar(&p.Estado, "activo", p.Estado, "item activo")
		var areaDef int64
		if p.Area != nil {
			areaDef = *p.Area
		}
		area := fs.Int64("area", areaDef, "id de área (0 = ninguna)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		p.Area = refDe(*area).IDPtr()

		if sub == "crear" {
			it, err := c.api.CrearItem(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "item %d creado: %s\n", it.ID, it.Nombre)
			return nil
		}
		it, err := c.api.ActualizarItem(ctx, id, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "item %d actualizado: %s\n", it.ID, it.Nombre)
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarItem(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "item %d eliminado\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: items %s", sub)
}

// ── usuarios ──────────────────────────────────────────────────────────────────

// cmdUsuarios mantiene las cuentas de acceso que luego se vinculan a
// clientes y empleados con el flag -usuario.
func (c *Consola) cmdUsuarios(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: usuarios listar|ver|crear|editar|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("usuarios listar", flag.ContinueOnError)
		buscar := fs.String("buscar", "", "búsqueda local (username, email)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		lista, err := c.api.ListarUsuarios(ctx, nil)
		if err != nil {
			return err
		}
		lista = filtro.Filtrar(lista, *buscar, func(u entity.Usuario) []string {
			return []string{u.Username, u.Email, u.Rol}
		})
		w := c.tabla()
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROL\tACTIVO")
		for _, u := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.Rol, u.Activo)
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		u, err := c.api.ObtenerUsuario(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "username:\t%s\n", u.Username)
		fmt.Fprintf(w, "email:\t%s\n", noVacio(u.Email, "—"))
		fmt.Fprintf(w, "rol:\t%s\n", u.Rol)
		fmt.Fprintf(w, "activo:\t%t\n", u.Activo)
		return w.Flush()

	case "crear", "editar":
		var p api.UsuarioPayload
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			u, err := c.api.ObtenerUsuario(ctx, id)
			if err != nil {
				return err
			}
			p = api.UsuarioPayload{Username: u.Username, Email: u.Email, Rol: u.Rol, Activo: u.Activo}
			resto = resto[1:]
		} else {
			p.Activo = true
			p.Rol = "mecanico"
		}

		fs := flag.NewFlagSet("usuarios "+sub, flag.ContinueOnError)
		fs.StringVar(&p.Username, "username", p.Username, "nombre de usuario (único)")
		fs.StringVar(&p.Email, "email", p.Email, "email")
		fs.StringVar(&p.Rol, "rol", p.Rol, "admin | mecanico | cliente")
		fs.StringVar(&p.Password, "password", "", "contraseña (vacío = no cambiar)")
		fs.BoolVar(&p.Activo, "activo", p.Activo, "cuenta activa")
		if err := fs.Parse(resto); err != nil {
			return err
		}

		if sub == "crear" {
			u, err := c.api.CrearUsuario(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "usuario %d creado: %s\n", u.ID, u.Username)
			return nil
		}
		u, err := c.api.ActualizarUsuario(ctx, id, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "usuario %d actualizado: %s\n", u.ID, u.Username)
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarUsuario(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "usuario %d eliminado\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: usuarios %s", sub)
}

// ── tablas de referencia ──────────────────────────────────────────────────────

func (c *Consola) cmdCatalogos(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: catalogos areas|cargos|marcas|modelos ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "areas":
		return c.cmdAreas(ctx, resto)

	case "cargos":
		lista, err := c.api.ListarCargos(ctx)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tNOMBRE")
		for _, cg := range lista {
			fmt.Fprintf(w, "%d\t%s\n", cg.ID, cg.Nombre)
		}
		return w.Flush()

	case "marcas":
		lista, err := c.api.ListarMarcas(ctx)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tNOMBRE")
		for _, m := range lista {
			fmt.Fprintf(w, "%d\t%s\n", m.ID, m.Nombre)
		}
		return w.Flush()

	case "modelos":
		fs := flag.NewFlagSet("catalogos modelos", flag.ContinueOnError)
		marca := fs.Int64("marca", 0, "filtrar por id de marca")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		lista, err := c.api.ListarModelos(ctx, *marca)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tNOMBRE\tMARCA")
		for _, m := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Nombre, m.Marca.Nombre)
		}
		return w.Flush()
	}
	return fmt.Errorf("subcomando desconocido: catalogos %s", sub)
}

// cmdAreas mantiene las áreas del taller (única tabla de referencia con
// escritura desde la consola).
func (c *Consola) cmdAreas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"listar"}
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		lista, err := c.api.ListarAreas(ctx)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tNOMBRE\tDESCRIPCIÓN")
		for _, a := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Nombre, a.Descripcion)
		}
		return w.Flush()

	case "crear", "editar":
		var p api.AreaPayload
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			resto = resto[1:]
		}
		fs := flag.NewFlagSet("catalogos areas "+sub, flag.ContinueOnError)
		fs.StringVar(&p.Nombre, "nombre", "", "nombre del área")
		fs.StringVar(&p.Descripcion, "descripcion", "", "descripción")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		if sub == "crear" {
			a, err := c.api.CrearArea(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "área %d creada: %s\n", a.ID, a.Nombre)
			return nil
		}
		a, err := c.api.ActualizarArea(ctx, id, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "área %d actualizada: %s\n", a.ID, a.Nombre)
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarArea(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "área %d eliminada\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: catalogos areas %s", sub)
}
