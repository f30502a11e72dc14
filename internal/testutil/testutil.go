// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/juju/clock/testclock"

	"searchportal/internal/models"
	"searchportal/internal/store"
)

// Epoch is the time every test store starts at.
var Epoch = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

// TestStore creates an empty store on a test clock.
func TestStore(t *testing.T) (*store.Store, *testclock.Clock) {
	t.Helper()

	clk := testclock.NewClock(Epoch)
	return store.New(store.WithClock(clk)), clk
}

// SeededStore creates a test store holding the given webpages in order.
func SeededStore(t *testing.T, inputs ...models.WebpageInput) *store.Store {
	t.Helper()

	s, _ := TestStore(t)
	for _, input := range inputs {
		if _, err := s.CreateWebpage(context.Background(), input); err != nil {
			t.Fatalf("failed to create test webpage %s: %v", input.URL, err)
		}
	}
	return s
}

// CreateTestWebpage returns a valid webpage input whose fields are derived
// from name.
func CreateTestWebpage(name string) models.WebpageInput {
	return models.WebpageInput{
		URL:         fmt.Sprintf("https://example.com/%s", name),
		Title:       fmt.Sprintf("Test page %s", name),
		Description: fmt.Sprintf("Description of %s", name),
		Content:     fmt.Sprintf("Content about %s", name),
	}
}

// Filler returns n webpages that match no realistic query.
func Filler(n int) []models.WebpageInput {
	inputs := make([]models.WebpageInput, n)
	for i := range inputs {
		inputs[i] = models.WebpageInput{
			URL:         fmt.Sprintf("https://filler.example/%d", i+1),
			Title:       fmt.Sprintf("Filler %d", i+1),
			Description: "Placeholder",
			Content:     "Lorem ipsum dolor sit amet",
		}
	}
	return inputs
}
