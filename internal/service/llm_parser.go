package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"scent-match/internal/domain"
)

// LLMResponseParser centraliza el parseo robusto de salidas del modelo.
// El pipeline tiene etapas explicitas e independientes:
//  1. parseo estricto (limpieza de fences + primer objeto balanceado)
//  2. reparacion estructural (comas colgantes, llaves sin cerrar)
//  3. extraccion campo a campo por regex
//  4. objeto totalmente por defecto
type LLMResponseParser struct{}

// DefaultLLMResponseParser permite uso directo sin instanciar.
var DefaultLLMResponseParser = LLMResponseParser{}

// ParseImageAnalysis recorre el pipeline hasta obtener un analisis con el
// objeto `traits` completo. ok=false deja el fallback por defecto: analisis
// sin rasgos, que rio arriba se traduce en lista de matches vacia.
func (p LLMResponseParser) ParseImageAnalysis(raw string) (domain.ImageAnalysis, bool) {
	cleaned := CleanLLMJSONResponse(raw)

	// Etapa 1: estricto.
	if a, ok := unmarshalAnalysis(extractFirstJSONObject(cleaned)); ok {
		return a, true
	}

	// Etapa 2: reparacion estructural.
	if a, ok := unmarshalAnalysis(RepairJSONStructure(cleaned)); ok {
		return a, true
	}

	// Etapa 3: regex campo a campo. Exige los 10 ejes de rasgo.
	if a, ok := extractAnalysisByRegex(cleaned); ok {
		return a, true
	}
	if a, ok := extractAnalysisByRegex(raw); ok {
		return a, true
	}

	// Etapa 4: fallback por defecto (sin rasgos).
	return domain.ImageAnalysis{}, false
}

// ParseCandidateRecipe recorre el pipeline para la salida del generador de
// recetas. `testingRecipe: null` es valido (caso receta final al 100%).
func (p LLMResponseParser) ParseCandidateRecipe(raw string) (domain.CandidateRecipe, error) {
	cleaned := CleanLLMJSONResponse(raw)

	// Etapa 1: estricto.
	if c, ok := unmarshalCandidate(extractFirstJSONObject(cleaned)); ok {
		return c, nil
	}

	// Etapa 2: reparacion estructural.
	if c, ok := unmarshalCandidate(RepairJSONStructure(cleaned)); ok {
		return c, nil
	}

	// Etapa 3: rescatar solo el array de granulos.
	if c, ok := extractGranulesByRegex(cleaned); ok {
		return c, nil
	}

	// Para recetas no hay fallback util: un default silencioso corromperia
	// la receta, asi que el caller reintenta el mismo prompt.
	return domain.CandidateRecipe{}, fmt.Errorf("could not parse candidate recipe")
}

func unmarshalAnalysis(candidate string) (domain.ImageAnalysis, bool) {
	if candidate == "" {
		return domain.ImageAnalysis{}, false
	}
	var tmp struct {
		Traits          map[string]float64 `json:"traits"`
		ScentCategories map[string]float64 `json:"scentCategories"`
	}
	if err := json.Unmarshal([]byte(candidate), &tmp); err != nil {
		return domain.ImageAnalysis{}, false
	}
	return analysisFromMaps(tmp.Traits, tmp.ScentCategories)
}

// analysisFromMaps valida que los 10 ejes esten presentes y arma el vector.
func analysisFromMaps(traits, cats map[string]float64) (domain.ImageAnalysis, bool) {
	if traits == nil {
		return domain.ImageAnalysis{}, false
	}
	for _, ax := range domain.TraitAxes {
		if _, ok := traits[ax]; !ok {
			return domain.ImageAnalysis{}, false
		}
	}

	tv := domain.TraitVector{
		Sensuality: traits[domain.AxisSensuality],
		Cuteness:   traits[domain.AxisCuteness],
		Charisma:   traits[domain.AxisCharisma],
		Darkness:   traits[domain.AxisDarkness],
		Freshness:  traits[domain.AxisFreshness],
		Elegance:   traits[domain.AxisElegance],
		Freedom:    traits[domain.AxisFreedom],
		Luxury:     traits[domain.AxisLuxury],
		Purity:     traits[domain.AxisPurity],
		Uniqueness: traits[domain.AxisUniqueness],
	}
	out := domain.ImageAnalysis{Traits: &tv}

	if cats != nil {
		cv := domain.CategoryVector{
			Citrus: cats[domain.CategoryCitrus],
			Floral: cats[domain.CategoryFloral],
			Woody:  cats[domain.CategoryWoody],
			Musky:  cats[domain.CategoryMusky],
			Fruity: cats[domain.CategoryFruity],
			Spicy:  cats[domain.CategorySpicy],
		}
		out.ScentCategories = &cv
	}
	return out, true
}

func extractAnalysisByRegex(s string) (domain.ImageAnalysis, bool) {
	traits := make(map[string]float64, len(domain.TraitAxes))
	for _, ax := range domain.TraitAxes {
		v, ok := extractNumberField(s, ax)
		if !ok {
			return domain.ImageAnalysis{}, false
		}
		traits[ax] = v
	}
	cats := make(map[string]float64, len(domain.CategoryAxes))
	for _, c := range domain.CategoryAxes {
		if v, ok := extractNumberField(s, c); ok {
			cats[c] = v
		}
	}
	if len(cats) == 0 {
		cats = nil
	}
	return analysisFromMaps(traits, cats)
}

func unmarshalCandidate(candidate string) (domain.CandidateRecipe, bool) {
	if candidate == "" {
		return domain.CandidateRecipe{}, false
	}
	// La clave debe estar presente: un objeto cualquiera sin testingRecipe
	// no es una receta, aunque deserialice bien.
	if !strings.Contains(candidate, `"testingRecipe"`) {
		return domain.CandidateRecipe{}, false
	}
	var c domain.CandidateRecipe
	if err := json.Unmarshal([]byte(candidate), &c); err != nil {
		return domain.CandidateRecipe{}, false
	}
	return c, true
}

func extractGranulesByRegex(s string) (domain.CandidateRecipe, bool) {
	idx := strings.Index(s, `"granules"`)
	if idx == -1 {
		return domain.CandidateRecipe{}, false
	}
	tail := s[idx+len(`"granules"`):]

	var granules []domain.Granule
	if arr := extractFirstJSONValue(tail); arr != "" && arr[0] == '[' {
		if err := json.Unmarshal([]byte(arr), &granules); err != nil {
			if err := json.Unmarshal([]byte(RepairJSONStructure(arr)), &granules); err != nil {
				granules = nil
			}
		}
	}
	// Array irreparable: levantar los granulos campo a campo.
	if len(granules) == 0 {
		granules = extractGranuleFields(tail)
	}
	if len(granules) == 0 {
		return domain.CandidateRecipe{}, false
	}
	return domain.CandidateRecipe{
		TestingRecipe: &domain.TestingRecipe{Granules: granules},
	}, true
}

// extractGranuleFields rescata granulos de un array roto, objeto por objeto.
// Solo cuentan los que traen id y name completos; el resto de campos es
// best-effort.
func extractGranuleFields(s string) []domain.Granule {
	var out []domain.Granule
	for _, chunk := range strings.Split(s, "},") {
		id, okID := extractStringField(chunk, "id")
		name, okName := extractStringField(chunk, "name")
		if !okID || !okName {
			continue
		}
		g := domain.Granule{ID: id, Name: name}
		if v, ok := extractStringField(chunk, "mainCategory"); ok {
			g.MainCategory = v
		}
		if v, ok := extractNumberField(chunk, "drops"); ok {
			g.Drops = int(v)
		}
		if v, ok := extractNumberField(chunk, "ratio"); ok {
			g.Ratio = v
		}
		if v, ok := extractStringField(chunk, "reason"); ok {
			g.Reason = v
		}
		out = append(out, g)
	}
	return out
}

// CleanLLMJSONResponse quita fences ```json ... ``` y BOM.
func CleanLLMJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")

	reStart := regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	reEnd := regexp.MustCompile("(?is)\\s*```\\s*$")
	s = reStart.ReplaceAllString(s, "")
	s = reEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// RepairJSONStructure intenta reparar un objeto truncado o sucio: recorta
// al primer '{', elimina comas colgantes y cierra llaves/corchetes que el
// modelo dejo abiertos. No repara strings sin cerrar.
func RepairJSONStructure(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	s = s[start:]
	s = trailingCommaRe.ReplaceAllString(s, "$1")

	var stack []byte
	inString := false
	escape := false
	end := len(s)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, ch)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				end = i + 1
			}
		}
	}

	if inString {
		return ""
	}
	if len(stack) == 0 {
		return s[:end]
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(s, " \t\r\n,"))
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// extractNumberField busca `"key": <numero>` aunque el JSON este roto.
func extractNumberField(s, key string) (float64, bool) {
	re := regexp.MustCompile(`(?i)"` + regexp.QuoteMeta(key) + `"\s*:\s*(-?\d+(?:\.\d+)?)`)
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractStringField busca `"key": "valor"` con escapes minimos.
func extractStringField(s, key string) (string, bool) {
	re := regexp.MustCompile(`(?is)"` + regexp.QuoteMeta(key) + `"\s*:\s*"((?:\\.|[^"\\])*)"`)
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return "", false
	}
	unq, err := strconv.Unquote(`"` + m[1] + `"`)
	if err != nil {
		unq = strings.NewReplacer(`\"`, `"`, `\n`, "\n", `\t`, "\t", `\\`, `\`).Replace(m[1])
	}
	unq = strings.TrimSpace(unq)
	if unq == "" {
		return "", false
	}
	return unq, true
}
