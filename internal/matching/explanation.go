package matching

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"scent-match/internal/domain"
)

// Etiquetas legibles de los ejes de rasgo para el texto de explicacion.
var axisLabels = map[string]string{
	domain.AxisSensuality: "sensualidad",
	domain.AxisCuteness:   "ternura",
	domain.AxisCharisma:   "carisma",
	domain.AxisDarkness:   "misterio",
	domain.AxisFreshness:  "frescura",
	domain.AxisElegance:   "elegancia",
	domain.AxisFreedom:    "libertad",
	domain.AxisLuxury:     "lujo",
	domain.AxisPurity:     "pureza",
	domain.AxisUniqueness: "singularidad",
}

var categoryLabels = map[string]string{
	domain.CategoryCitrus: "citrica",
	domain.CategoryFloral: "floral",
	domain.CategoryWoody:  "amaderada",
	domain.CategoryMusky:  "almizclada",
	domain.CategoryFruity: "frutal",
	domain.CategorySpicy:  "especiada",
}

// Bandas por intensidad de la categoria dominante: [>=8, [6,8), <6].
// La banda baja siempre abre a tres estaciones.
var seasonTable = map[string][3][]string{
	domain.CategoryCitrus: {{"verano"}, {"primavera", "verano"}, {"primavera", "verano", "otoño"}},
	domain.CategoryFloral: {{"primavera"}, {"primavera", "verano"}, {"primavera", "verano", "otoño"}},
	domain.CategoryWoody:  {{"invierno"}, {"otoño", "invierno"}, {"verano", "otoño", "invierno"}},
	domain.CategoryMusky:  {{"otoño"}, {"otoño", "invierno"}, {"primavera", "otoño", "invierno"}},
	domain.CategoryFruity: {{"verano"}, {"primavera", "verano"}, {"primavera", "verano", "otoño"}},
	domain.CategorySpicy:  {{"invierno"}, {"otoño", "invierno"}, {"primavera", "otoño", "invierno"}},
}

var timeOfDayTable = map[string][3]string{
	domain.CategoryCitrus: {"la mañana", "la mañana y la tarde", "cualquier hora del día"},
	domain.CategoryFloral: {"la tarde", "la mañana y la tarde", "cualquier hora del día"},
	domain.CategoryWoody:  {"la noche", "la tarde y la noche", "la tarde en adelante"},
	domain.CategoryMusky:  {"la noche", "la tarde y la noche", "cualquier hora del día"},
	domain.CategoryFruity: {"la mañana", "la mañana y la tarde", "cualquier hora del día"},
	domain.CategorySpicy:  {"la noche", "la tarde y la noche", "la tarde en adelante"},
}

var occasionTable = map[string][3]string{
	domain.CategoryCitrus: {"actividades al aire libre", "jornadas de trabajo y paseos", "el uso diario"},
	domain.CategoryFloral: {"citas y celebraciones", "encuentros con amigos", "el uso diario"},
	domain.CategoryWoody:  {"cenas formales", "la oficina y reuniones", "el uso diario"},
	domain.CategoryMusky:  {"momentos intimos", "planes tranquilos", "el uso diario"},
	domain.CategoryFruity: {"salidas informales", "encuentros con amigos", "el uso diario"},
	domain.CategorySpicy:  {"eventos nocturnos", "cenas y conciertos", "el uso diario"},
}

// Pools de frases para que el texto no suene identico en cada request.
// La eleccion es pseudoaleatoria; el contenido factual no cambia.
var openingPool = []string{
	"Tu imagen transmite",
	"El retrato proyecta",
	"La lectura de la imagen destaca",
}

var affinityPool = []string{
	"una afinidad clara con",
	"una conexion natural con",
	"mucha sintonia con",
}

// buildExplanation arma el texto determinista de un match: categoria
// dominante, ejes compartidos mas fuertes, estacion, horario y ocasion.
// No llama a ningun modelo.
func buildExplanation(query domain.ImageAnalysis, persona domain.PersonaRecord, score float64) string {
	dominant, intensity := persona.Categories.Dominant()
	band := bandFor(intensity)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s %s, una fragancia %s.",
		openingPool[rand.Intn(len(openingPool))],
		affinityPool[rand.Intn(len(affinityPool))],
		persona.Name,
		categoryLabels[dominant],
	))

	if top := topSharedAxes(query, persona, 3); len(top) > 0 {
		sb.WriteString(fmt.Sprintf(" Comparten sobre todo %s.", joinSpanish(top)))
	}

	seasons := seasonTable[dominant][band]
	sb.WriteString(fmt.Sprintf(" Ideal para %s, especialmente durante %s.",
		joinSpanish(seasons),
		timeOfDayTable[dominant][band],
	))
	sb.WriteString(fmt.Sprintf(" Recomendada para %s (afinidad %.0f%%).",
		occasionTable[dominant][band],
		score*100,
	))
	return sb.String()
}

// bandFor traduce la intensidad de la categoria dominante a una banda:
// 0 para >=8, 1 para [6,8), 2 para <6.
func bandFor(intensity float64) int {
	switch {
	case intensity >= 8:
		return 0
	case intensity >= 6:
		return 1
	default:
		return 2
	}
}

// topSharedAxes devuelve las etiquetas de los ejes donde query y persona
// coinciden con mas fuerza (el menor de los dos valores, descendente).
func topSharedAxes(query domain.ImageAnalysis, persona domain.PersonaRecord, n int) []string {
	if query.Traits == nil {
		return nil
	}
	q := query.Traits.Axes()
	p := persona.Traits.Axes()

	type axisScore struct {
		axis  string
		value float64
	}
	scored := make([]axisScore, 0, len(domain.TraitAxes))
	for _, ax := range domain.TraitAxes {
		v := q[ax]
		if p[ax] < v {
			v = p[ax]
		}
		scored = append(scored, axisScore{axis: ax, value: v})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].value > scored[j].value
	})

	if n > len(scored) {
		n = len(scored)
	}
	out := make([]string, 0, n)
	for _, s := range scored[:n] {
		if s.value <= 0 {
			break
		}
		out = append(out, axisLabels[s.axis])
	}
	return out
}

// joinSpanish une items con comas y conjuncion final ("a, b y c").
func joinSpanish(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " y " + items[len(items)-1]
}
