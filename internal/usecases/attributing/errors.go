package attributing

import "errors"

var (
	// ErrEmptyCatalog evita gravar todas as oportunidades como não atribuídas
	ErrEmptyCatalog = errors.New("catálogo de anúncios vazio")
	ErrLoadCatalog  = errors.New("erro ao carregar o catálogo de anúncios")
	ErrLoadMappings = errors.New("erro ao carregar os mapeamentos existentes")
)
