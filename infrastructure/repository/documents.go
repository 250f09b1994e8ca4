package repository

import (
	"context"
	"time"

	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

const (
	adPerformanceCollection  = "adPerformance"
	advertDataCollection     = "advertData"
	adsSubcollection         = "ads"
	ghlWeeklySubcollection   = "ghlWeekly"
	opportunityMappingPrefix = "ghlOpportunityMapping"
	stageHistoryCollection   = "opportunityStageHistory"
	checkpointCollection     = "syncCheckpoints"
)

func adPerformancePath(adID string) string {
	return docstore.Join(adPerformanceCollection, adID)
}

func monthlyAdPath(month, adID string) string {
	return docstore.Join(advertDataCollection, month, adsSubcollection, adID)
}

func monthlyAdsCollectionPath(month string) string {
	return docstore.Join(advertDataCollection, month, adsSubcollection)
}

// listMonthlyAdIDs lista os anúncios com documento em advertData/{month}/ads
func listMonthlyAdIDs(ctx context.Context, store docstore.Store, month string) ([]string, error) {
	snaps, err := store.List(ctx, monthlyAdsCollectionPath(month))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		ids = append(ids, snap.ID)
	}
	return ids, nil
}

func weeklyCollectionPath(month, adID string) string {
	return docstore.Join(monthlyAdPath(month, adID), ghlWeeklySubcollection)
}

func weeklyBucketPath(adID string, week domain.WeekID) string {
	return docstore.Join(weeklyCollectionPath(week.Month(), adID), week.String())
}

func mappingPath(opportunityID string) string {
	return docstore.Join(opportunityMappingPrefix, opportunityID)
}

func stageHistoryPath(id string) string {
	return docstore.Join(stageHistoryCollection, id)
}

func checkpointPath(name string) string {
	return docstore.Join(checkpointCollection, name)
}

func adMetadataDocument(ad *domain.Ad, now time.Time) docstore.Document {
	doc := docstore.Document{
		"adId":         ad.ID,
		"accountId":    ad.AccountID,
		"campaignId":   ad.CampaignID,
		"campaignName": ad.CampaignName,
		"adName":       ad.AdName,
		"adSetId":      ad.AdSetID,
		"adSetName":    ad.AdSetName,
		"status":       ad.Status,
		"updatedAt":    docstore.Timestamp(now),
	}
	if ad.FacebookStats != nil {
		doc["facebookStats"] = facebookStatsDocument(ad.FacebookStats)
	}
	return doc
}

func facebookStatsDocument(s *domain.FacebookStats) docstore.Document {
	return docstore.Document{
		"spend":       s.Spend,
		"impressions": s.Impressions,
		"clicks":      s.Clicks,
		"reach":       s.Reach,
		"leads":       s.Leads,
		"dateStart":   s.DateStart,
		"dateStop":    s.DateStop,
	}
}

// ghlStatsDocument monta o subdocumento ghlStats; em increment os campos viram Inc
func ghlStatsDocument(s *domain.GHLStats, policy domain.WritePolicy) docstore.Document {
	values := map[string]any{
		"leads":         s.Leads,
		"bookings":      s.Bookings,
		"deposits":      s.Deposits,
		"cashCollected": s.CashCollected,
		"cashAmount":    s.CashAmount,
	}

	doc := make(docstore.Document, len(values))
	for k, v := range values {
		if policy == domain.WriteIncrement {
			doc[k] = docstore.Increment(v)
			continue
		}
		doc[k] = v
	}
	return doc
}

func bucketDocument(b *domain.WeeklyBucket, policy domain.WritePolicy, now time.Time) docstore.Document {
	counters := map[string]any{
		"leads":              b.Leads,
		"bookedAppointments": b.BookedAppointments,
		"deposits":           b.Deposits,
		"cashCollected":      b.CashCollected,
		"cashAmount":         b.CashAmount,
	}

	doc := docstore.Document{
		"adId":      b.AdID,
		"weekId":    b.WeekID.String(),
		"startDate": b.WeekID.Start().Format("2006-01-02"),
		"endDate":   b.WeekID.End().Format("2006-01-02"),
		"updatedAt": docstore.Timestamp(now),
	}
	for k, v := range counters {
		if policy == domain.WriteIncrement {
			doc[k] = docstore.Increment(v)
			continue
		}
		doc[k] = v
	}
	return doc
}

func mappingDocument(m *domain.OpportunityMapping) docstore.Document {
	candidates := make([]string, len(m.CandidateAdIDs))
	copy(candidates, m.CandidateAdIDs)

	return docstore.Document{
		"opportunityId":  m.OpportunityID,
		"adId":           m.AdID,
		"campaignId":     m.CampaignID,
		"adName":         m.AdName,
		"matchMethod":    string(m.Method),
		"candidateAdIds": candidates,
		"attribution": docstore.Document{
			"adId":       m.Attribution.AdID,
			"campaignId": m.Attribution.CampaignID,
			"adName":     m.Attribution.AdName,
			"adSetName":  m.Attribution.AdSetName,
		},
		"contactId":            m.ContactID,
		"pipelineId":           m.PipelineID,
		"stageName":            m.StageName,
		"monetaryValue":        m.MonetaryValue,
		"opportunityCreatedAt": docstore.Timestamp(m.OpportunityCreatedAt),
		"runId":                m.RunID,
		"matchedAt":            docstore.Timestamp(m.MatchedAt),
	}
}

func stageHistoryDocument(e *domain.StageHistoryEntry) docstore.Document {
	return docstore.Document{
		"id":                   e.ID,
		"opportunityId":        e.OpportunityID,
		"pipelineId":           e.PipelineID,
		"stageId":              e.StageID,
		"stageName":            e.StageName,
		"category":             string(e.Category),
		"adId":                 e.AdID,
		"monetaryValue":        e.MonetaryValue,
		"opportunityCreatedAt": docstore.Timestamp(e.OpportunityCreatedAt),
		"firstObservedAt":      docstore.Timestamp(e.FirstObservedAt),
		"lastObservedAt":       docstore.Timestamp(e.LastObservedAt),
	}
}

func checkpointDocument(c *domain.SyncCheckpoint) docstore.Document {
	return docstore.Document{
		"name":              c.Name,
		"lastCampaignIndex": c.LastCampaignIndex,
		"lastAdIndex":       c.LastAdIndex,
		"totalProcessed":    c.TotalProcessed,
		"updatedAt":         docstore.Timestamp(c.UpdatedAt),
	}
}
