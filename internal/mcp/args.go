package mcp

import (
	"github.com/bobmcallan/reddable-mcp/internal/client"
)

// Defaults applied when the caller omits the field.
const (
	DefaultConfiguredStatus = "ACTIVE"
	DefaultAgeRestriction   = "NO_AGE_RESTRICTION"
	DefaultAllowComments    = true
	DefaultImageStyle       = "photorealistic"
)

// BusinessArgs are the arguments of getAdAccounts.
type BusinessArgs struct {
	BusinessID string `json:"businessId,omitempty"`
}

// AdAccountArgs are the arguments of the read tools keyed by ad account.
type AdAccountArgs struct {
	AdAccountID string `json:"adAccountId"`
}

// ProfileArgs are the arguments of getPosts.
type ProfileArgs struct {
	ProfileID string `json:"profileId"`
}

// PostArgs are the arguments of getPost.
type PostArgs struct {
	PostID string `json:"postId"`
}

func noDefaults[A any](args A) A { return args }

func campaignDefaults(req client.CreateCampaignRequest) client.CreateCampaignRequest {
	if req.ConfiguredStatus == "" {
		req.ConfiguredStatus = DefaultConfiguredStatus
	}
	if req.AgeRestriction == "" {
		req.AgeRestriction = DefaultAgeRestriction
	}
	return req
}

func adGroupDefaults(req client.CreateAdGroupRequest) client.CreateAdGroupRequest {
	if req.ConfiguredStatus == "" {
		req.ConfiguredStatus = DefaultConfiguredStatus
	}
	return req
}

func postDefaults(req client.CreatePostRequest) client.CreatePostRequest {
	if req.AllowComments == nil {
		allow := DefaultAllowComments
		req.AllowComments = &allow
	}
	return req
}

func imageDefaults(req client.GenerateImageRequest) client.GenerateImageRequest {
	if req.Style == "" {
		req.Style = DefaultImageStyle
	}
	return req
}
