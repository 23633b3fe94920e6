// Package console implementa la interacción por líneas de texto con el usuario.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventario-registro/internal/application/registry"
)

var _ registry.LineReader = (*Prompter)(nil)

// Prompter escribe un prompt en w y lee una línea completa de r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter construye el lector de líneas.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// ReadLine muestra prompt y devuelve la línea sin el salto final. Una última línea sin
// salto se devuelve normalmente; io.EOF solo se informa cuando no queda nada que leer.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.w, prompt); err != nil {
		return "", fmt.Errorf("escribir prompt: %w", err)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
