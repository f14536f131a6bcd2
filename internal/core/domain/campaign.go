package domain

import (
	"fmt"
	"strings"
)

// CampaignStatus switches a campaign on or off.
type CampaignStatus string

const (
	StatusOn  CampaignStatus = "ON"
	StatusOff CampaignStatus = "OFF"
)

// ParseCampaignStatus accepts "ON" or "OFF", case-insensitively.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusOn:
		return StatusOn, nil
	case StatusOff:
		return StatusOff, nil
	default:
		return "", invalid("status", fmt.Sprintf("unknown status %q", s))
	}
}

// CampaignFields is everything a campaign carries except its identifier.
// It is the body of both create and update requests.
type CampaignFields struct {
	Name         string         `json:"campaignName"`
	Keywords     []string       `json:"keywords"`
	BidAmount    Amount         `json:"bidAmount"`
	CampaignFund Amount         `json:"campaignFund"`
	Status       CampaignStatus `json:"status"`
	TownID       *int64         `json:"townId,omitempty"`
	RadiusKm     int            `json:"radiusKm"`
}

// Campaign is a targeted advertising configuration for one product.
type Campaign struct {
	ID int64 `json:"id"`
	CampaignFields
}

// DefaultCampaignFields are the values of an empty creation form.
func DefaultCampaignFields() CampaignFields {
	return CampaignFields{
		Keywords:     []string{},
		BidAmount:    MinCampaignAmount,
		CampaignFund: MinCampaignAmount,
		Status:       StatusOn,
		RadiusKm:     1,
	}
}

// Validate enforces the form constraints: a name, bid and fund of at least
// 0.01, a radius of at least 1 km and distinct keywords. Business rules such
// as bid <= fund belong to the API.
func (f CampaignFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return invalid("campaignName", "campaign name is required")
	}
	if f.BidAmount.LessThan(MinCampaignAmount.Decimal) {
		return invalid("bidAmount", "bid amount must be at least 0.01")
	}
	if !isCents(f.BidAmount) {
		return invalid("bidAmount", "bid amount must be a multiple of 0.01")
	}
	if f.CampaignFund.LessThan(MinCampaignAmount.Decimal) {
		return invalid("campaignFund", "campaign fund must be at least 0.01")
	}
	if !isCents(f.CampaignFund) {
		return invalid("campaignFund", "campaign fund must be a multiple of 0.01")
	}
	if f.RadiusKm < 1 {
		return invalid("radiusKm", "radius must be at least 1 km")
	}
	if f.Status != StatusOn && f.Status != StatusOff {
		return invalid("status", fmt.Sprintf("unknown status %q", f.Status))
	}
	if NewKeywordSet(f.Keywords...).Len() != len(f.Keywords) {
		return invalid("keywords", "keywords must be distinct")
	}
	return nil
}

func isCents(a Amount) bool {
	return a.Equal(a.Round(2))
}

// KeywordSet is an insertion-ordered set of keyword values. The newest
// addition is always last.
type KeywordSet struct {
	values []string
}

// NewKeywordSet builds a set from values, dropping duplicates and empty
// strings.
func NewKeywordSet(values ...string) KeywordSet {
	var s KeywordSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add appends v unless it is empty or already present. It reports whether
// the set changed.
func (s *KeywordSet) Add(v string) bool {
	if v == "" || s.Contains(v) {
		return false
	}
	s.values = append(s.values, v)
	return true
}

// Remove deletes v and reports whether it was present.
func (s *KeywordSet) Remove(v string) bool {
	for i, existing := range s.values {
		if existing == v {
			s.values = append(s.values[:i:i], s.values[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether v is in the set.
func (s KeywordSet) Contains(v string) bool {
	for _, existing := range s.values {
		if existing == v {
			return true
		}
	}
	return false
}

// Len returns the number of keywords.
func (s KeywordSet) Len() int {
	return len(s.values)
}

// Values returns a copy of the keywords in insertion order. It never
// returns nil so the JSON body always carries an array.
func (s KeywordSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}
