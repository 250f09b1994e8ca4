package ghldomain

type Stage struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position,omitempty"`
}

type Pipeline struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Stages []Stage `json:"stages"`
}

type PipelinesResponse struct {
	Pipelines []Pipeline `json:"pipelines"`
}

// StageNames indexa o nome de cada etapa pelo id, em todos os pipelines
func StageNames(pipelines []Pipeline) map[string]string {
	names := make(map[string]string)
	for _, p := range pipelines {
		for _, s := range p.Stages {
			names[s.ID] = s.Name
		}
	}
	return names
}
