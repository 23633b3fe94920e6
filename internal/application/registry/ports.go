package registry

// LineReader lee una línea de entrada tras mostrar prompt. Bloquea hasta recibirla.
// Al agotarse la entrada sin datos debe devolver un error que envuelva io.EOF.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}
