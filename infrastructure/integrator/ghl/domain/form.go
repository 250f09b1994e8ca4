package ghldomain

type FormSubmission struct {
	ID        string         `json:"id"`
	ContactID string         `json:"contactId"`
	FormID    string         `json:"formId,omitempty"`
	Name      string         `json:"name,omitempty"`
	Email     string         `json:"email,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
	Others    map[string]any `json:"others,omitempty"`
}

type FormSubmissionsMeta struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	NextPage    *int `json:"nextPage,omitempty"`
}

type FormSubmissionsResponse struct {
	Submissions []FormSubmission    `json:"submissions"`
	Meta        FormSubmissionsMeta `json:"meta"`
}

// URLParams retorna os parâmetros UTM capturados na página do formulário
func (f FormSubmission) URLParams() map[string]any {
	eventData, ok := f.Others["eventData"].(map[string]any)
	if !ok {
		return nil
	}

	params, ok := eventData["url_params"].(map[string]any)
	if !ok || len(params) == 0 {
		return nil
	}

	return params
}
