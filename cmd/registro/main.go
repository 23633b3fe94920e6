// registro es la consola de mantenimiento del registro de productos.
//
// Uso:
//
//	registro                      menú interactivo
//	registro search <término>     busca por nombre o categoría
//	registro report -o out.pdf    exporta el catálogo a PDF
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
