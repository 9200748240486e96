// Package models defines the client-side data types: the session user held by
// the session store, and the extended profile owned by the profile subsystem.
package models

// Role classifies an account. The set is closed: anything outside the two
// known values is a data-integrity problem, not a third variant.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// Known reports whether r is one of the two recognized roles.
func (r Role) Known() bool {
	return r == RoleStudent || r == RoleRecruiter
}

// SessionUser is the authenticated identity known to the current context.
// It carries only the core session fields; extended profile data lives in
// Profile and is fetched independently.
//
// A SessionUser is replaced wholesale, never partially updated.
type SessionUser struct {
	UserID     string `json:"userId"`
	FullName   string `json:"fullname"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// Achievement is a single profile achievement entry.
type Achievement struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
}

// Experience is a single work experience entry.
type Experience struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// RecruiterInfo holds the recruiter-specific company fields.
type RecruiterInfo struct {
	CompanyName        string `json:"companyName,omitempty"`
	Designation        string `json:"designation,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
}

// Profile is the full, loosely structured user profile. The session core never
// inspects these fields; they are round-tripped to the backend as a whole.
type Profile struct {
	SessionUser

	PhoneNumber  string            `json:"phoneNumber,omitempty"`
	Location     string            `json:"location,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	Achievements []Achievement     `json:"achievements,omitempty"`
	Education    []Education       `json:"education,omitempty"`
	Experience   []Experience      `json:"experience,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	Recruiter    *RecruiterInfo    `json:"recruiterInfo,omitempty"`
}
