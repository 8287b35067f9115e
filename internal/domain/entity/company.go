package entity

// Company representa una empresa del directorio. El código es el identificador
// público: se deriva del nombre al crear y no cambia en actualizaciones.
type Company struct {
	Code        string
	Name        string
	Description string
}
