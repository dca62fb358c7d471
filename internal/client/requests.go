package client

// Request payloads for the write endpoints. Field names match the upstream
// JSON contract; optional fields are omitted from the body when unset.

// CreateCampaignRequest is the body of POST /api/reddit/ads/create-campaign.
type CreateCampaignRequest struct {
	AdAccountID         string   `json:"adAccountId"`
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	FundingInstrumentID string   `json:"fundingInstrumentId"`
	ConfiguredStatus    string   `json:"configuredStatus,omitempty"`
	SpendCap            *float64 `json:"spendCap,omitempty"`
	GoalValue           *float64 `json:"goalValue,omitempty"`
	GoalType            string   `json:"goalType,omitempty"`
	AppID               string   `json:"appId,omitempty"`
	AgeRestriction      string   `json:"ageRestriction,omitempty"`
}

// CreateAdGroupRequest is the body of POST /api/reddit/ads/create-ad-group.
type CreateAdGroupRequest struct {
	AdAccountID      string     `json:"adAccountId"`
	CampaignID       string     `json:"campaignId"`
	Name             string     `json:"name"`
	ConfiguredStatus string     `json:"configuredStatus,omitempty"`
	BidType          string     `json:"bidType,omitempty"`
	BidValue         *float64   `json:"bidValue,omitempty"`
	BidStrategy      string     `json:"bidStrategy,omitempty"`
	GoalValue        *float64   `json:"goalValue,omitempty"`
	GoalType         string     `json:"goalType,omitempty"`
	StartTime        string     `json:"startTime,omitempty"`
	EndTime          string     `json:"endTime,omitempty"`
	OptimizationGoal string     `json:"optimizationGoal,omitempty"`
	Targeting        *Targeting `json:"targeting,omitempty"`
	AppID            string     `json:"appId,omitempty"`
}

// Targeting narrows who an ad group reaches.
type Targeting struct {
	Communities  []string      `json:"communities,omitempty"`
	Geolocations []string      `json:"geolocations,omitempty"`
	AgeTargeting *AgeTargeting `json:"age_targeting,omitempty"`
}

// AgeTargeting bounds the audience age, both ends within 13..65.
type AgeTargeting struct {
	MinAge *float64 `json:"min_age,omitempty"`
	MaxAge *float64 `json:"max_age,omitempty"`
}

// CreatePostRequest is the body of POST /api/reddit/ads/create-post.
type CreatePostRequest struct {
	ProfileID        string        `json:"profileId"`
	Type             string        `json:"type"`
	Headline         string        `json:"headline"`
	AllowComments    *bool         `json:"allowComments,omitempty"`
	Body             string        `json:"body,omitempty"`
	ThumbnailURL     string        `json:"thumbnailUrl,omitempty"`
	Content          []PostContent `json:"content,omitempty"`
	IsRichtext       *bool         `json:"isRichtext,omitempty"`
	ImageDescription string        `json:"imageDescription,omitempty"`
}

// PostContent is one card of a post (up to six for carousels).
type PostContent struct {
	CallToAction   string `json:"call_to_action,omitempty"`
	DestinationURL string `json:"destination_url,omitempty"`
	DisplayURL     string `json:"display_url,omitempty"`
	MediaURL       string `json:"media_url,omitempty"`
}

// CreateAdRequest is the body of POST /api/reddit/ads/create-ad.
type CreateAdRequest struct {
	AdAccountID           string            `json:"adAccountId"`
	Name                  string            `json:"name"`
	ConfiguredStatus      string            `json:"configuredStatus"`
	AdGroupID             string            `json:"adGroupId,omitempty"`
	CampaignID            string            `json:"campaignId,omitempty"`
	ClickURL              string            `json:"clickUrl,omitempty"`
	PostID                string            `json:"postId,omitempty"`
	CampaignObjectiveType string            `json:"campaignObjectiveType,omitempty"`
	ProfileID             string            `json:"profileId,omitempty"`
	ProfileUsername       string            `json:"profileUsername,omitempty"`
	ClickURLQueryParams   []QueryParam      `json:"clickUrlQueryParams,omitempty"`
	EventTrackers         []EventTracker    `json:"eventTrackers,omitempty"`
	ShoppingCreative      *ShoppingCreative `json:"shoppingCreative,omitempty"`
	Products              []Product         `json:"products,omitempty"`
	PreviewExpiry         string            `json:"previewExpiry,omitempty"`
}

// QueryParam is a UTM parameter appended to an ad's click URL.
type QueryParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EventTracker is a third-party tracking pixel.
type EventTracker struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// ShoppingCreative carries catalog-sales creative settings.
type ShoppingCreative struct {
	AllowComments   *bool  `json:"allow_comments,omitempty"`
	CallToAction    string `json:"call_to_action,omitempty"`
	DestinationURL  string `json:"destination_url,omitempty"`
	Headline        string `json:"headline,omitempty"`
	SecondLineCTA   string `json:"second_line_cta,omitempty"`
	DPACarouselMode string `json:"dpa_carousel_mode,omitempty"`
}

// Product references a catalog product promoted by an ad.
type Product struct {
	ProductID string `json:"product_id"`
}

// GenerateImageRequest is the body of POST /api/reddit/ads/generate-image.
type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style,omitempty"`
}
