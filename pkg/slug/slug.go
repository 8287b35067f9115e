package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks elimina las marcas diacríticas tras descomponer en NFD
// ("Café" -> "Cafe"). NFC al final para recomponer lo que quede.
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make deriva el código identificador de un nombre visible: minúsculas,
// sin diacríticos y solo letras/dígitos ("Test Comp2" -> "testcomp2").
// El resultado es estable: el mismo nombre produce siempre el mismo código.
func Make(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		// Entrada con runas inválidas: seguimos con el original sin plegar
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
