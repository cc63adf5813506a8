package domain

import "time"

// ContentType discriminates the kinds of content a campaign produces.
type ContentType string

const (
	ContentSocialPost ContentType = "social_post"
	ContentBlogPost   ContentType = "blog_post"
)

// SocialPlatform is a publishing destination for social content.
type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformX         SocialPlatform = "x"
)

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign groups content produced for one client over a date range.
type Campaign struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Name       string          `json:"name"`
	Status     CampaignStatus  `json:"status"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Budget     float64         `json:"budget"`
	Metrics    CampaignMetrics `json:"metrics"`
}

// CampaignMetrics carries the engagement numbers shown on dashboards.
type CampaignMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Engagement  float64 `json:"engagement"`
}

// SocialPost is a single scheduled piece of social content.
type SocialPost struct {
	ID          string         `json:"id"`
	CampaignID  string         `json:"campaign_id"`
	ClientID    string         `json:"client_id"`
	Platform    SocialPlatform `json:"platform"`
	Caption     string         `json:"caption"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Published   bool           `json:"published"`
	Likes       int64          `json:"likes"`
	Shares      int64          `json:"shares"`
}

// BlogPost is a long-form piece of content tied to a client.
type BlogPost struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	WordCount   int       `json:"word_count"`
	PublishedAt time.Time `json:"published_at,omitzero"`
	Draft       bool      `json:"draft"`
}
