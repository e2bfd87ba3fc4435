// Package types contains common read shapes used across the application.
package types

import "time"

// Match represents a user's persisted match record.
type Match struct {
	UserID    string    `json:"user_id"`
	Clubs     []string  `json:"clubs"`
	Timestamp time.Time `json:"timestamp"`
}

// ScoredClub pairs a club with its compatibility score for preview responses.
type ScoredClub struct {
	ClubID       string   `json:"club_id"`
	ClubName     string   `json:"club_name"`
	Score        int      `json:"score"`
	MatchReasons []string `json:"match_reasons"`
}

// Club is the API projection of a catalog entry.
type Club struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	FullName         string   `json:"full_name"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Description      string   `json:"description"`
	Activities       []string `json:"activities"`
	SkillsOffered    []string `json:"skills_offered"`
	MeetingFrequency string   `json:"meeting_frequency"`
	MembershipLevel  string   `json:"membership_level"`
	TimeCommitment   string   `json:"time_commitment"`
	ClubSize         string   `json:"club_size"`
	KeyPrograms      []string `json:"key_programs"`
}

// ClubFilter narrows catalog listings.
type ClubFilter struct {
	Category string
	Tag      string
	Query    string
}
