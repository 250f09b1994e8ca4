package docstore

import (
	"reflect"
)

// cloneValue copia mapas e slices para que o chamador não altere o estado armazenado
func cloneValue(v any) any {
	switch val := v.(type) {
	case Document:
		return cloneDocument(val)
	case map[string]any:
		return map[string]any(cloneDocument(Document(val)))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return val
	}
}

func cloneDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case Document:
		return map[string]any(val), true
	case map[string]any:
		return val, true
	default:
		return nil, false
	}
}

// materialize resolve incrementos como valores absolutos (usado em Set)
func materialize(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case Inc:
			out[k] = val.Value
		default:
			if m, ok := asMap(val); ok {
				out[k] = map[string]any(materialize(Document(m)))
				continue
			}
			out[k] = cloneValue(val)
		}
	}
	return out
}

// mergeInto aplica src sobre dst: mapas são mesclados, Inc soma, o resto substitui
func mergeInto(dst map[string]any, src map[string]any) {
	for k, v := range src {
		switch val := v.(type) {
		case Inc:
			dst[k] = addNumbers(dst[k], val.Value)
		default:
			if srcMap, ok := asMap(val); ok {
				dstMap, ok := asMap(dst[k])
				if !ok {
					dstMap = map[string]any{}
				}
				mergeInto(dstMap, srcMap)
				dst[k] = dstMap
				continue
			}
			dst[k] = cloneValue(val)
		}
	}
}

// addNumbers soma mantendo inteiros como int64 quando ambos são inteiros
func addNumbers(current, delta any) any {
	ci, cInt := toInt64(current)
	di, dInt := toInt64(delta)
	if (current == nil || cInt) && dInt {
		return ci + di
	}
	return toFloat64(current) + toFloat64(delta)
}

func toInt64(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	default:
		return 0, false
	}
}

func toFloat64(v any) float64 {
	if v == nil {
		return 0
	}
	if i, ok := toInt64(v); ok {
		return float64(i)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return 0
	}
}

// flatten separa um documento de Merge em campos pontuados de $set e $inc
func flatten(prefix string, doc map[string]any, sets, incs map[string]any) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case Inc:
			incs[key] = val.Value
		default:
			if m, ok := asMap(val); ok {
				flatten(key, m, sets, incs)
				continue
			}
			sets[key] = val
		}
	}
}
