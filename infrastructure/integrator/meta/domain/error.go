package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

func (e *ErrorDetails) String() string {
	return fmt.Sprintf("%s (code=%d, subcode=%d, trace=%s)", e.Message, e.Code, e.ErrorSubcode, e.FBTraceID)
}

// IsTokenExpired verifica se o erro é de token expirado.
// Código 190 é token inválido; subcódigos 460, 463 e 467 são variações de sessão expirada.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited identifica os códigos de limite de chamadas da Graph API
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80004:
		return true
	default:
		return false
	}
}
