package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Any identifier passed to a read operation arrives upstream unchanged as a
// single query parameter, on a GET, with the bearer credential attached.
func TestProperty_ReadRequestsCarryIdentifierVerbatim(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	properties.Property("GetCampaigns sends adAccountId verbatim", prop.ForAll(
		func(id string) bool {
			captured = nil
			if _, err := c.GetCampaigns(context.Background(), id); err != nil {
				return false
			}
			return captured != nil &&
				captured.Method == http.MethodGet &&
				captured.URL.Path == "/api/reddit/ads/get-campaigns" &&
				captured.URL.Query().Get("adAccountId") == id &&
				len(captured.URL.Query()) == 1 &&
				captured.Header.Get("Authorization") == "Bearer "+testKey
		},
		gen.AnyString(),
	))

	properties.Property("GetPost sends postId verbatim", prop.ForAll(
		func(suffix string) bool {
			id := "t3_" + suffix
			captured = nil
			if _, err := c.GetPost(context.Background(), id); err != nil {
				return false
			}
			return captured != nil && captured.URL.Query().Get("postId") == id
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
