package metadomain

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type Reference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ad é o anúncio como retornado por /{ad_id} e /{campaign_id}/ads
type Ad struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status,omitempty"`
	AccountID   string     `json:"account_id,omitempty"`
	CampaignID  string     `json:"campaign_id,omitempty"`
	AdSetID     string     `json:"adset_id,omitempty"`
	Campaign    *Reference `json:"campaign,omitempty"`
	AdSet       *Reference `json:"adset,omitempty"`
	CreatedTime string     `json:"created_time,omitempty"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight traz as métricas de um anúncio; a Graph API devolve números como texto
type AdInsight struct {
	AccountID    string   `json:"account_id,omitempty"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name,omitempty"`
	AdSetID      string   `json:"adset_id,omitempty"`
	AdSetName    string   `json:"adset_name,omitempty"`
	CampaignID   string   `json:"campaign_id,omitempty"`
	CampaignName string   `json:"campaign_name,omitempty"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Reach        string   `json:"reach"`
	Actions      []Action `json:"actions,omitempty"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// Leads soma as ações de lead registradas pelo pixel ou formulário
func (i *AdInsight) Leads() int64 {
	var total int64
	for _, action := range i.Actions {
		if action.ActionType != "lead" && !strings.HasSuffix(action.ActionType, ".lead") {
			continue
		}
		total += ParseInt(action.Value, "actions."+action.ActionType)
	}
	return total
}

// ParseFloat converte um número textual da Graph API; valores inválidos viram zero com aviso
func ParseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("Valor numérico inválido retornado pela Graph API")
		return 0
	}
	return f
}

func ParseInt(value, field string) int64 {
	if value == "" {
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return int64(ParseFloat(value, field))
	}
	return n
}
