package stock

import (
	"fmt"
	"strconv"
)

// anchoCodigoMinimo es el relleno mínimo de los códigos sugeridos.
const anchoCodigoMinimo = 4

// SugerirCodigo propone el siguiente código de producto: toma el máximo código
// numérico existente, le suma uno y lo rellena con ceros hasta el ancho del
// código más largo (mínimo 4 dígitos). Sin códigos numéricos devuelve "0001".
// La sugerencia es orientativa: el usuario puede sobrescribirla antes de guardar.
func SugerirCodigo(codigos []string) string {
	maximo := int64(0)
	ancho := anchoCodigoMinimo
	hayNumericos := false
	for _, c := range codigos {
		n, err := strconv.ParseInt(c, 10, 64)
		if err != nil || n < 0 {
			continue
		}
		hayNumericos = true
		if n > maximo {
			maximo = n
		}
		if len(c) > ancho {
			ancho = len(c)
		}
	}
	if !hayNumericos {
		return fmt.Sprintf("%0*d", anchoCodigoMinimo, 1)
	}
	return fmt.Sprintf("%0*d", ancho, maximo+1)
}
