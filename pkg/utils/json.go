package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// PrettyJson serializa qualquer valor com indentação para saída no terminal
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := jsoniter.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	out, err := jsoniter.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return string(out)
}
