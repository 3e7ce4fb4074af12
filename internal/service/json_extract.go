package service

import "strings"

// extractFirstJSONValue devuelve el primer objeto o array JSON balanceado
// dentro del input, respetando strings y escapes. Cadena vacia si no hay
// ninguno completo.
func extractFirstJSONValue(input string) string {
	start := strings.IndexAny(input, "{[")
	if start == -1 {
		return ""
	}

	open := input[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

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
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}

// extractFirstJSONObject conserva el contrato historico: solo objetos.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}
	v := extractFirstJSONValue(input[start:])
	if v == "" || v[0] != '{' {
		return ""
	}
	return v
}
