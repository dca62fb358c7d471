package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names published for discovery.
const (
	ToolGetAdAccounts         = "getAdAccounts"
	ToolGetFundingInstruments = "getFundingInstruments"
	ToolGetCampaigns          = "getCampaigns"
	ToolGetAdGroups           = "getAdGroups"
	ToolGetProfiles           = "getProfiles"
	ToolGetPosts              = "getPosts"
	ToolGetPost               = "getPost"
	ToolGetAds                = "getAds"
	ToolCreateCampaign        = "createCampaign"
	ToolCreateAdGroup         = "createAdGroup"
	ToolCreatePost            = "createPost"
	ToolCreateAd              = "createAd"
	ToolGenerateImage         = "generateImage"
)

var (
	objectives = []string{
		"APP_INSTALLS",
		"CATALOG_SALES",
		"CLICKS",
		"CONVERSIONS",
		"IMPRESSIONS",
		"LEAD_GENERATION",
		"VIDEO_VIEWABLE_IMPRESSIONS",
	}
	configuredStatuses = []string{"ACTIVE", "ARCHIVED", "DELETED", "PAUSED"}
	ageRestrictions    = []string{"ABOVE_18", "ABOVE_21", "NO_AGE_RESTRICTION"}
	goalTypes          = []string{"LIFETIME_SPEND", "DAILY_SPEND"}
	bidTypes           = []string{"CPC", "CPM", "CPV", "CPV6"}
	bidStrategies      = []string{"BIDLESS", "MANUAL_BIDDING", "MAXIMIZE_VOLUME", "TARGET_CPX"}
	postTypes          = []string{"CAROUSEL", "IMAGE", "TEXT", "VIDEO"}
	imageStyles        = []string{"photorealistic", "illustration", "minimalist", "artistic"}
	optimizationGoals  = []string{
		"PAGE_VISIT", "VIEW_CONTENT", "SEARCH", "ADD_TO_CART", "ADD_TO_WISHLIST",
		"PURCHASE", "LEAD", "SIGN_UP", "CLICKS", "MOBILE_CONVERSION_INSTALL",
		"MOBILE_CONVERSION_SIGN_UP", "MOBILE_CONVERSION_ADD_PAYMENT_INFO",
		"MOBILE_CONVERSION_ADD_TO_CART", "MOBILE_CONVERSION_PURCHASE",
		"MOBILE_CONVERSION_COMPLETED_TUTORIAL", "MOBILE_CONVERSION_LEVEL_ACHIEVED",
		"MOBILE_CONVERSION_SPEND_CREDITS", "MOBILE_CONVERSION_REINSTALL",
		"MOBILE_CONVERSION_UNLOCK_ACHIEVEMENT", "MOBILE_CONVERSION_START_TRIAL",
		"MOBILE_CONVERSION_SUBSCRIBE", "MOBILE_CONVERSION_ONBOARD_STARTED",
		"MOBILE_CONVERSION_FIRST_TIME_PURCHASE",
	}
)

// uriFormat marks a string property as an absolute URI.
func uriFormat() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["format"] = "uri"
	}
}

func readOnly(title string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func creating(title string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func newTool(name string, base []mcp.ToolOption, opts ...mcp.ToolOption) mcp.Tool {
	return mcp.NewTool(name, append(base, opts...)...)
}

func adAccountIDParam() mcp.ToolOption {
	return mcp.WithString("adAccountId", mcp.Required(), mcp.Description("Reddit ad account ID"))
}

func getAdAccountsTool() mcp.Tool {
	return newTool(ToolGetAdAccounts, readOnly("Get Ad Accounts"),
		mcp.WithDescription("Get all available Reddit ad accounts for a business"),
		mcp.WithString("businessId", mcp.Description("Reddit Business ID (optional if REDDIT_BUSINESS_ID env var is set)")),
	)
}

func getFundingInstrumentsTool() mcp.Tool {
	return newTool(ToolGetFundingInstruments, readOnly("Get Funding Instruments"),
		mcp.WithDescription("Get all payment methods/funding instruments for an ad account"),
		adAccountIDParam(),
	)
}

func getCampaignsTool() mcp.Tool {
	return newTool(ToolGetCampaigns, readOnly("Get Campaigns"),
		mcp.WithDescription("Get all campaigns for an ad account"),
		adAccountIDParam(),
	)
}

func getAdGroupsTool() mcp.Tool {
	return newTool(ToolGetAdGroups, readOnly("Get Ad Groups"),
		mcp.WithDescription("Get all ad groups for an ad account"),
		adAccountIDParam(),
	)
}

func getProfilesTool() mcp.Tool {
	return newTool(ToolGetProfiles, readOnly("Get Profiles"),
		mcp.WithDescription("Get all Reddit profiles/accounts available for an ad account"),
		adAccountIDParam(),
	)
}

func getPostsTool() mcp.Tool {
	return newTool(ToolGetPosts, readOnly("Get Posts"),
		mcp.WithDescription("Get all posts for a specific Reddit profile"),
		mcp.WithString("profileId", mcp.Required(), mcp.Description("Reddit profile ID")),
	)
}

func getPostTool() mcp.Tool {
	return newTool(ToolGetPost, readOnly("Get Post"),
		mcp.WithDescription("Get details for a specific Reddit post"),
		mcp.WithString("postId", mcp.Required(), mcp.Description("Reddit post ID")),
	)
}

func getAdsTool() mcp.Tool {
	return newTool(ToolGetAds, readOnly("Get All Ads"),
		mcp.WithDescription("Get all ads from a Reddit ad account"),
		adAccountIDParam(),
	)
}

func createCampaignTool() mcp.Tool {
	return newTool(ToolCreateCampaign, creating("Create Campaign"),
		mcp.WithDescription("Create a new Reddit advertising campaign"),
		adAccountIDParam(),
		mcp.WithString("name", mcp.Required(), mcp.MinLength(3), mcp.MaxLength(200),
			mcp.Description("Campaign name (3-200 characters)")),
		mcp.WithString("objective", mcp.Required(), mcp.Enum(objectives...),
			mcp.Description("Campaign objective type")),
		mcp.WithString("fundingInstrumentId", mcp.Required(),
			mcp.Description("Funding instrument ID for payment")),
		mcp.WithString("configuredStatus", mcp.Enum(configuredStatuses...), mcp.DefaultString(DefaultConfiguredStatus),
			mcp.Description("Campaign status")),
		mcp.WithNumber("spendCap", mcp.Description("Campaign lifetime spend cap in microcurrency")),
		mcp.WithNumber("goalValue", mcp.Description("Campaign level goal value in micros (requires CBO)")),
		mcp.WithString("goalType", mcp.Enum(goalTypes...),
			mcp.Description("Campaign goal type (requires CBO)")),
		mcp.WithString("appId", mcp.Description("App ID for app installs campaigns (Apple App Store or Google Play)")),
		mcp.WithString("ageRestriction", mcp.Enum(ageRestrictions...), mcp.DefaultString(DefaultAgeRestriction),
			mcp.Description("Age restriction for campaign")),
	)
}

func createAdGroupTool() mcp.Tool {
	age := map[string]any{"type": "number", "minimum": 13, "maximum": 65}
	return newTool(ToolCreateAdGroup, creating("Create Ad Group"),
		mcp.WithDescription("Create a new Reddit ad group with targeting and bidding options"),
		adAccountIDParam(),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("Campaign ID this ad group belongs to")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Ad group name")),
		mcp.WithString("configuredStatus", mcp.Enum(configuredStatuses...), mcp.DefaultString(DefaultConfiguredStatus),
			mcp.Description("Ad group status")),
		mcp.WithString("bidType", mcp.Enum(bidTypes...), mcp.Description("Bidding strategy type")),
		mcp.WithNumber("bidValue", mcp.Min(0), mcp.Description("Bid amount in microcurrency per event")),
		mcp.WithString("bidStrategy", mcp.Enum(bidStrategies...), mcp.Description("Bid strategy")),
		mcp.WithNumber("goalValue", mcp.Min(0), mcp.Description("Goal value in microcurrency")),
		mcp.WithString("goalType", mcp.Enum(goalTypes...), mcp.Description("Type of goal")),
		mcp.WithString("startTime", mcp.Description("ISO 8601 timestamp when ad group starts (e.g., 2025-09-18T22:27:10Z)")),
		mcp.WithString("endTime", mcp.Description("ISO 8601 timestamp when ad group ends")),
		mcp.WithString("optimizationGoal", mcp.Enum(optimizationGoals...),
			mcp.Description("Optimization goal for conversions")),
		mcp.WithObject("targeting",
			mcp.Description("Targeting options"),
			mcp.Properties(map[string]any{
				"communities":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"geolocations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"age_targeting": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"min_age": age,
						"max_age": age,
					},
				},
			}),
		),
		mcp.WithString("appId", mcp.Description("App ID for app install campaigns")),
	)
}

func createPostTool() mcp.Tool {
	return newTool(ToolCreatePost, creating("Create Post"),
		mcp.WithDescription("Create a new Reddit post for advertising"),
		mcp.WithString("profileId", mcp.Required(), mcp.Description("Reddit profile ID (format: t2_xxxxx)")),
		mcp.WithString("type", mcp.Required(), mcp.Enum(postTypes...), mcp.Description("Post type")),
		mcp.WithString("headline", mcp.Required(), mcp.Description("Post title/headline")),
		mcp.WithBoolean("allowComments", mcp.DefaultBool(DefaultAllowComments),
			mcp.Description("Enable comments on the post")),
		mcp.WithString("body", mcp.MaxLength(40000),
			mcp.Description("Text content for text posts (max 40,000 characters)")),
		mcp.WithString("thumbnailUrl", uriFormat(),
			mcp.Description("Thumbnail image URL (required for video posts)")),
		mcp.WithArray("content",
			mcp.MaxItems(6),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"call_to_action":  map[string]any{"type": "string", "description": "Call to action text (e.g., 'Learn More')"},
					"destination_url": map[string]any{"type": "string", "format": "uri", "description": "Destination URL when clicked"},
					"display_url":     map[string]any{"type": "string", "description": "Display URL shown to users"},
					"media_url":       map[string]any{"type": "string", "format": "uri", "description": "Image/video media URL"},
				},
			}),
			mcp.Description("Post content array (max 6 items for carousel, 1 for others)"),
		),
		mcp.WithBoolean("isRichtext", mcp.Description("Whether text post body is in richtext format")),
		mcp.WithString("imageDescription", mcp.Description("Description for AI image generation")),
	)
}

func createAdTool() mcp.Tool {
	str := map[string]any{"type": "string"}
	uri := map[string]any{"type": "string", "format": "uri"}
	return newTool(ToolCreateAd, creating("Create Reddit Ad"),
		mcp.WithDescription("Create a Reddit ad using the official Reddit Ads API"),
		adAccountIDParam(),
		mcp.WithString("name", mcp.Required(), mcp.MinLength(1), mcp.MaxLength(500),
			mcp.Description("Ad name (1-500 characters)")),
		mcp.WithString("configuredStatus", mcp.Required(), mcp.Enum(configuredStatuses...),
			mcp.Description("Ad status")),
		mcp.WithString("adGroupId", mcp.Description("Ad group ID this ad belongs to")),
		mcp.WithString("campaignId", mcp.Description("Campaign ID this ad belongs to")),
		mcp.WithString("clickUrl", mcp.MaxLength(5000),
			mcp.Description("Destination URL when ad is clicked (max 5000 characters)")),
		mcp.WithString("postId", mcp.Pattern("^t3_.*"),
			mcp.Description("Reddit post ID to promote (format: t3_xxxxx)")),
		mcp.WithString("campaignObjectiveType", mcp.Enum(objectives...),
			mcp.Description("Campaign objective type")),
		mcp.WithString("profileId", mcp.Description("Profile ID for catalog sales campaigns")),
		mcp.WithString("profileUsername", mcp.Description("Profile username for catalog sales campaigns")),
		mcp.WithArray("clickUrlQueryParams",
			mcp.MaxItems(14),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":  map[string]any{"type": "string", "description": "Query parameter name"},
					"value": map[string]any{"type": "string", "description": "Query parameter value"},
				},
				"required": []string{"name", "value"},
			}),
			mcp.Description("UTM parameters for click URL (max 14 items)"),
		),
		mcp.WithArray("eventTrackers",
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{"type": "string", "description": "Event type (e.g., CLICK)"},
					"url":  map[string]any{"type": "string", "format": "uri", "description": "Tracking URL"},
				},
				"required": []string{"type", "url"},
			}),
			mcp.Description("Event tracking pixels from approved providers"),
		),
		mcp.WithObject("shoppingCreative",
			mcp.Properties(map[string]any{
				"allow_comments":    map[string]any{"type": "boolean"},
				"call_to_action":    str,
				"destination_url":   uri,
				"headline":          str,
				"second_line_cta":   str,
				"dpa_carousel_mode": str,
			}),
			mcp.Description("Shopping creative settings"),
		),
		mcp.WithArray("products",
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product_id": map[string]any{"type": "string", "description": "Product ID"},
				},
				"required": []string{"product_id"},
			}),
			mcp.Description("Products associated with the ad"),
		),
		mcp.WithString("previewExpiry", mcp.Description("ISO 8601 timestamp for preview URL expiry")),
	)
}

func generateImageTool() mcp.Tool {
	return newTool(ToolGenerateImage, creating("Generate Image"),
		mcp.WithDescription("Generate an image from a text description using Google's Gemini Flash Image Preview"),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("Text description of the image to generate")),
		mcp.WithString("style", mcp.Enum(imageStyles...), mcp.DefaultString(DefaultImageStyle),
			mcp.Description("Style of the generated image")),
	)
}
