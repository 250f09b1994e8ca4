package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
)

var (
	// ErrTokenRefreshed indica que o token expirou, foi renovado e a requisição deve ser repetida
	ErrTokenRefreshed = errors.New("token expirado e renovado, repita a requisição")

	ErrReauthorizationRequired = errors.New("token expirado sem renovação automática, é necessário reautorizar o aplicativo")
	ErrMissingAccessToken      = errors.New("META_ACCESS_TOKEN não configurado")
)

// TokenManager gerencia tokens de acesso da API do Meta
type TokenManager struct {
	cfg         *config.Config
	mu          sync.Mutex
	httpClient  *http.Client
	stopRefresh chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.Meta.Timeout},
		stopRefresh: make(chan struct{}),
		now:         time.Now,
	}
}

// AccessToken devolve o token em uso
func (tm *TokenManager) AccessToken() string {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.cfg.Meta.AccessToken
}

// canExchange indica se há credenciais do app para trocar e renovar tokens
func (tm *TokenManager) canExchange() bool {
	return tm.cfg.Meta.AppID != "" && tm.cfg.Meta.AppSecret != ""
}

func (tm *TokenManager) InitToken(ctx context.Context) {
	if !tm.canExchange() {
		logrus.Info("META_APP_ID/META_APP_SECRET ausentes; usando o token de acesso sem renovação automática")
		return
	}

	switch {
	case tm.cfg.Meta.LongLivedToken == "":
		logrus.Info("Token de longa duração não encontrado. Iniciando processo de obtenção...")
		if err := tm.InitiateToken(ctx); err != nil {
			logrus.Errorf("Falha ao inicializar token de longa duração: %v", err)
			logrus.Warn("A API Meta pode ter funcionalidade limitada até que o token seja configurado corretamente")
			return
		}
		logrus.Info("Token de longa duração inicializado com sucesso")

	case tm.cfg.Meta.TokenExpiresAt.IsZero():
		logrus.Info("Validando token de longa duração existente...")
		if err := tm.ValidateExistingToken(ctx); err != nil {
			logrus.Errorf("Falha ao validar token existente: %v", err)
			logrus.Warn("Tentando renovar o token...")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Falha ao renovar token: %v", err)
			}
			return
		}
		logrus.Info("Token de longa duração validado com sucesso")

	default:
		if err := tm.EnsureValidToken(ctx); err != nil {
			logrus.Errorf("Erro ao verificar validade do token: %v", err)
		}
	}
}

// StartAutoRefresh renova o token a cada 23 horas até o contexto ser cancelado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	if !tm.canExchange() {
		return
	}

	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(1 * time.Hour)
				continue
			}
			logrus.Info("Renovação periódica do token concluída com sucesso")
			ticker.Reset(refreshInterval)
		case <-ctx.Done():
			return
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	tm.stopOnce.Do(func() { close(tm.stopRefresh) })
}

// InitiateToken obtém um token de longa duração a partir do token de curta duração
func (tm *TokenManager) InitiateToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.cfg.Meta.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := tm.exchangeToken(ctx, tm.cfg.Meta.AccessToken)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.applyToken(tokenResponse)

	logrus.Infof("Token de longa duração inicializado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// ValidateExistingToken valida o token de longa duração configurado e descobre sua expiração
func (tm *TokenManager) ValidateExistingToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	info, err := tm.debugToken(ctx, tm.cfg.Meta.LongLivedToken)
	if err != nil {
		return err
	}

	if !info.Data.IsValid {
		return tm.refreshLocked(ctx)
	}

	if info.Data.ExpiresAt > 0 {
		tm.cfg.Meta.TokenExpiresAt = time.Unix(info.Data.ExpiresAt, 0).Add(-24 * time.Hour)
	}
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	logrus.Infof("Token de longa duração é válido. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.refreshLocked(ctx)
}

func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	if !tm.canExchange() {
		return ErrReauthorizationRequired
	}

	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && tm.cfg.Meta.TokenExpiresAt.Sub(tm.now()) < time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	logrus.Info("Iniciando renovação do token...")
	tokenResponse, err := tm.exchangeToken(ctx, tm.cfg.Meta.AccessToken)
	if err != nil {
		if containsTokenExpirationMessage(err.Error()) {
			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
			return fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
		}
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	oldToken := tm.cfg.Meta.LongLivedToken
	tm.applyToken(tokenResponse)

	if oldToken != tm.cfg.Meta.LongLivedToken {
		logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
			tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))
	} else {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na API da Meta")
	}

	return nil
}

func (tm *TokenManager) applyToken(resp *TokenResponse) {
	tm.cfg.Meta.LongLivedToken = resp.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tm.now(), resp.ExpiresIn)
	tm.cfg.Meta.AccessToken = resp.AccessToken
}

// EnsureValidToken renova proativamente quando faltam menos de 24 horas para expirar
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	tm.mu.Lock()
	token := tm.cfg.Meta.AccessToken
	expiresAt := tm.cfg.Meta.TokenExpiresAt
	tm.mu.Unlock()

	if token == "" {
		return ErrMissingAccessToken
	}

	if !tm.canExchange() || expiresAt.IsZero() {
		return nil
	}

	if expiresAt.Sub(tm.now()) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken(ctx)
	}

	return nil
}

// HandleResponse lê a resposta e trata token expirado. Retorna ErrTokenRefreshed quando a
// requisição deve ser repetida com o novo token.
func (tm *TokenManager) HandleResponse(ctx context.Context, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}

	var errorResp metadomain.ErrorResponse
	if json.Unmarshal(body, &errorResp) == nil && errorResp.Error.Code != 0 {
		apiErr.Details = &errorResp
	}

	if (apiErr.Details != nil && apiErr.Details.IsTokenExpired()) || containsTokenExpirationMessage(apiErr.Body) {
		logrus.WithField("status", resp.StatusCode).Warn("Token expirado detectado pela API Meta")

		if refreshErr := tm.RefreshToken(ctx); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}
		return nil, ErrTokenRefreshed
	}

	return nil, apiErr
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
