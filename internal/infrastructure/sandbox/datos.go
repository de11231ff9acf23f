package sandbox

import (
	"sort"
	"sync"
)

// coleccion es una tabla en memoria de documentos JSON con id autoincremental.
// El sandbox no persiste nada: cada arranque parte del seed.
type coleccion struct {
	mu    sync.RWMutex
	sig   int64
	filas map[int64]map[string]any
}

func nuevaColeccion() *coleccion {
	return &coleccion{filas: make(map[int64]map[string]any)}
}

func (c *coleccion) listar() []map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int64, 0, len(c.filas))
	for id := range c.filas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.filas[id])
	}
	return out
}

func (c *coleccion) crear(doc map[string]any) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sig++
	doc["id"] = c.sig
	c.filas[c.sig] = doc
	return doc
}

func (c *coleccion) obtener(id int64) (map[string]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.filas[id]
	return doc, ok
}

func (c *coleccion) reemplazar(id int64, doc map[string]any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.filas[id]; !ok {
		return false
	}
	doc["id"] = id
	c.filas[id] = doc
	return true
}

func (c *coleccion) parchar(id int64, cambios map[string]any) (map[string]any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.filas[id]
	if !ok {
		return nil, false
	}
	for k, v := range cambios {
		if k == "id" {
			continue
		}
		doc[k] = v
	}
	return doc, true
}

func (c *coleccion) eliminar(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.filas[id]; !ok {
		return false
	}
	delete(c.filas, id)
	return true
}

// existeOtro indica si algún documento distinto de excluido tiene el mismo
// valor en el campo (unicidad de nit, numero_placa, ci...).
func (c *coleccion) existeOtro(campo string, valor any, excluido int64) bool {
	if valor == nil || valor == "" {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id, doc := range c.filas {
		if id == excluido {
			continue
		}
		if doc[campo] == valor {
			return true
		}
	}
	return false
}

// datos agrupa las colecciones del sandbox.
type datos struct {
	clientes     *coleccion
	vehiculos    *coleccion
	citas        *coleccion
	empleados    *coleccion
	items        *coleccion
	asistencias  *coleccion
	areas        *coleccion
	cargos       *coleccion
	marcas       *coleccion
	modelos      *coleccion
	presupuestos *coleccion
	ordenes      *coleccion
	usuarios     *coleccion
}

func nuevosDatos() *datos {
	d := &datos{
		clientes:     nuevaColeccion(),
		vehiculos:    nuevaColeccion(),
		citas:        nuevaColeccion(),
		empleados:    nuevaColeccion(),
		items:        nuevaColeccion(),
		asistencias:  nuevaColeccion(),
		areas:        nuevaColeccion(),
		cargos:       nuevaColeccion(),
		marcas:       nuevaColeccion(),
		modelos:      nuevaColeccion(),
		presupuestos: nuevaColeccion(),
		ordenes:      nuevaColeccion(),
		usuarios:     nuevaColeccion(),
	}
	d.sembrar()
	return d
}

// sembrar carga un catálogo mínimo para que la consola tenga algo que listar
// recién arrancado el sandbox.
func (d *datos) sembrar() {
	d.areas.crear(map[string]any{"nombre": "Mecánica", "descripcion": "Mecánica general"})
	d.areas.crear(map[string]any{"nombre": "Pintura", "descripcion": "Latonería y pintura"})
	d.cargos.crear(map[string]any{"nombre": "Mecánico"})
	d.cargos.crear(map[string]any{"nombre": "Recepcionista"})
	marca := d.marcas.crear(map[string]any{"nombre": "Toyota"})
	d.modelos.crear(map[string]any{"nombre": "Corolla", "marca": marca["id"]})
	d.items.crear(map[string]any{
		"codigo": "FLT-001", "nombre": "Filtro de aceite", "precio": "45.00",
		"costo": "30.00", "stock": 12, "estado": true, "tipo": "venta",
	})
	d.items.crear(map[string]any{
		"codigo": "SRV-001", "nombre": "Cambio de aceite", "precio": "120.00",
		"stock": 0, "estado": true, "tipo": "servicio",
	})
	// Espejo de las cuentas demo de auth.go para el recurso /users/.
	d.usuarios.crear(map[string]any{
		"username": "admin", "email": "admin@autofix.local", "rol": "admin", "activo": true,
	})
	d.usuarios.crear(map[string]any{
		"username": "taller", "email": "taller@autofix.local", "rol": "mecanico", "activo": true,
	})
}
