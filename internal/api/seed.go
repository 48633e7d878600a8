package api

import (
	"context"
	"net/url"
)

// SeedAPI exposes the reference datasets the preference picker draws from:
// schools and the subject combinations each school offers.
type SeedAPI struct {
	client *Client
}

func NewSeedAPI(client *Client) *SeedAPI {
	return &SeedAPI{client: client}
}

// School is one selectable institution.
type School struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	District string `json:"district,omitempty"`
}

// Combination is one subject combination offered at a school.
type Combination struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Subjects string `json:"subjects,omitempty"`
}

// Schools lists institutions, optionally filtered by district.
func (s *SeedAPI) Schools(ctx context.Context, district string) ([]School, error) {
	query := url.Values{}
	if district != "" {
		query.Set("district", district)
	}
	var schools []School
	if err := s.client.getJSON(ctx, "/seed/schools", query, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

// Combinations lists the combinations a school offers.
func (s *SeedAPI) Combinations(ctx context.Context, schoolCode string) ([]Combination, error) {
	query := url.Values{}
	query.Set("schoolCode", schoolCode)
	var combos []Combination
	if err := s.client.getJSON(ctx, "/seed/combinations", query, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}
