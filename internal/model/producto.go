package model

// Producto represents a product record in the catalogue.
type Producto struct {
	ID          int64   `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Codigo      string  `json:"codigo" db:"codigo"`
	Descripcion string  `json:"descripcion" db:"descripcion"`
	Precio      float64 `json:"precio" db:"precio"`
	Estado      bool    `json:"estado" db:"estado"`
}

// Overwrite copies every field except the identifier from src.
func (p *Producto) Overwrite(src Producto) {
	p.Nombre = src.Nombre
	p.Codigo = src.Codigo
	p.Descripcion = src.Descripcion
	p.Precio = src.Precio
	p.Estado = src.Estado
}
