package docstore

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode converte um documento para uma struct usando as tags json
func Decode(doc Document, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook:       stringToTimeHook(),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(map[string]any(doc))
}

// stringToTimeHook aceita RFC3339 e string vazia como data zero
func stringToTimeHook() mapstructure.DecodeHookFuncType {
	timeType := reflect.TypeOf(time.Time{})

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != timeType {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return time.Time{}, nil
		}
		return time.Parse(time.RFC3339Nano, s)
	}
}

// Timestamp formata datas como são gravadas nos documentos
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
