package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/biztime-api/pkg/slug"
)

// El código derivado debe ser estable y solo alfanumérico en minúsculas:
// es la clave primaria de companies/industries y viaja en la URL.
func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"espacios eliminados", "Test Comp2", "testcomp2"},
		{"ya limpio", "apple", "apple"},
		{"puntuación eliminada", "Acme, Inc.", "acmeinc"},
		{"diacríticos plegados", "Café Martínez", "cafemartinez"},
		{"mayúsculas", "IBM", "ibm"},
		{"vacío", "", ""},
		{"solo puntuación", "---", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

func TestMake_Idempotente(t *testing.T) {
	code := slug.Make("Test Comp2")
	assert.Equal(t, code, slug.Make(code))
}
