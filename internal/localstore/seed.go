package localstore

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func ptr(s string) *string { return &s }

// sampleContacts is the first-run seed so a fresh session has a queue to
// work through immediately.
func sampleContacts(now time.Time) []entity.Contact {
	yesterday := now.Add(-24 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)

	return []entity.Contact{
		{
			ID:           uuid.New(),
			Name:         "John Smith",
			Phone:        "+1 (555) 123-4567",
			Email:        ptr("john.smith@techcorp.com"),
			Company:      ptr("TechCorp Solutions"),
			PropertyType: ptr("retail strip center"),
			Notes:        ptr("Interested in enterprise solutions, prefers morning calls"),
			Status:       entity.StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Name:         "Sarah Johnson",
			Phone:        "+1 (555) 234-5678",
			Email:        ptr("sarah@retailplus.com"),
			Company:      ptr("Retail Plus"),
			PropertyType: ptr("shopping mall"),
			Notes:        ptr("Owner of 3 properties, very busy schedule"),
			CallCount:    1,
			LastCalled:   &yesterday,
			Status:       entity.StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Name:         "Mike Chen",
			Phone:        "+1 (555) 345-6789",
			Email:        ptr("m.chen@propertygroup.com"),
			Company:      ptr("Property Investment Group"),
			PropertyType: ptr("office building"),
			Notes:        ptr("Looking to expand portfolio, interested in REITs"),
			Status:       entity.StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Name:         "Lisa Rodriguez",
			Phone:        "+1 (555) 456-7890",
			Email:        ptr("lisa.r@commercialwest.com"),
			Company:      ptr("Commercial West"),
			PropertyType: ptr("warehouse complex"),
			Notes:        ptr("Prefers email first, then phone follow-up"),
			CallCount:    2,
			LastCalled:   &twoDaysAgo,
			Status:       entity.StatusContacted,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Name:         "David Wilson",
			Phone:        "+1 (555) 567-8901",
			Email:        ptr("dwilson@investcorp.com"),
			Company:      ptr("Invest Corp"),
			PropertyType: ptr("mixed-use development"),
			Notes:        ptr("High-value client, decision maker"),
			Status:       entity.StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
