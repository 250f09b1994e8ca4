package docstore

import (
	"fmt"
	"strings"
)

// Join monta um caminho a partir de segmentos
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: vazio", ErrInvalidPath)
	}

	parts := strings.Split(path, "/")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("%w: segmento vazio em %q", ErrInvalidPath, path)
		}
	}
	return parts, nil
}

// ValidateDocumentPath exige um número par de segmentos
func ValidateDocumentPath(path string) error {
	parts, err := splitPath(path)
	if err != nil {
		return err
	}
	if len(parts)%2 != 0 {
		return fmt.Errorf("%w: %q não é um documento", ErrInvalidPath, path)
	}
	return nil
}

// ValidateCollectionPath exige um número ímpar de segmentos
func ValidateCollectionPath(path string) error {
	parts, err := splitPath(path)
	if err != nil {
		return err
	}
	if len(parts)%2 != 1 {
		return fmt.Errorf("%w: %q não é uma coleção", ErrInvalidPath, path)
	}
	return nil
}

// Parent retorna a coleção que contém o documento
func Parent(docPath string) string {
	i := strings.LastIndex(docPath, "/")
	if i < 0 {
		return ""
	}
	return docPath[:i]
}

// ID retorna o último segmento do caminho
func ID(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// CollectionName retorna o nome (último segmento) da coleção do documento
func CollectionName(docPath string) string {
	return ID(Parent(docPath))
}
