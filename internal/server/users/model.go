package users

import "time"

// User is the dev server's account record. PasswordHash is bcrypt;
// VerificationToken is empty once the email has been verified.
type User struct {
	ID                string
	FullName          string
	Username          string
	Email             string
	PasswordHash      []byte
	Role              string
	IsVerified        bool
	VerificationToken string
	CreatedAt         time.Time

	Profile ProfileData
}

// ProfileData is the extended profile stored alongside the account. The
// server does not interpret it; the client round-trips it wholesale.
type ProfileData struct {
	PhoneNumber  string            `json:"phoneNumber,omitempty"`
	Location     string            `json:"location,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	Achievements []map[string]any  `json:"achievements,omitempty"`
	Education    []map[string]any  `json:"education,omitempty"`
	Experience   []map[string]any  `json:"experience,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	Recruiter    map[string]any    `json:"recruiterInfo,omitempty"`
}
