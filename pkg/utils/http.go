package utils

import "net/http"

// IsRetryableStatus indica respostas transitórias: rate limit e erros 5xx
func IsRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
