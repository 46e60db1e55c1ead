package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section documents. Singleton sections (About, Portfolio, Skills) hold at
// most one document per user and are upserted by user_id. Multi-record
// sections (Education, Experience, Project, Certification) carry their own
// ObjectID and are listed newest first.

type About struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Content   string    `bson:"content" json:"content"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type Portfolio struct {
	UserID      string    `bson:"user_id" json:"user_id"`
	WebsiteURL  string    `bson:"website_url" json:"website_url"`
	LinkedinURL string    `bson:"linkedin_url" json:"linkedin_url"`
	GithubURL   string    `bson:"github_url" json:"github_url"`
	TwitterURL  string    `bson:"twitter_url" json:"twitter_url"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type Skills struct {
	UserID     string    `bson:"user_id" json:"user_id"`
	HardSkills []string  `bson:"hard_skills" json:"hard_skills"`
	SoftSkills []string  `bson:"soft_skills" json:"soft_skills"`
	Interests  []string  `bson:"interests" json:"interests"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

type Education struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Level      string             `bson:"level" json:"level"`
	SchoolName string             `bson:"school_name" json:"school_name"`
	Board      string             `bson:"board" json:"board"`
	Grade      string             `bson:"grade" json:"grade"`
	StartMonth string             `bson:"start_month" json:"start_month"`
	StartYear  int                `bson:"start_year" json:"start_year"`
	EndMonth   string             `bson:"end_month" json:"end_month"`
	EndYear    int                `bson:"end_year" json:"end_year"`
	Summary    string             `bson:"summary" json:"summary"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

type Experience struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string             `bson:"user_id" json:"user_id"`
	JobTitle         string             `bson:"job_title" json:"job_title"`
	Company          string             `bson:"company" json:"company"`
	EmploymentType   string             `bson:"employment_type" json:"employment_type"`
	Location         string             `bson:"location" json:"location"`
	StartMonth       string             `bson:"start_month" json:"start_month"`
	StartYear        int                `bson:"start_year" json:"start_year"`
	EndMonth         string             `bson:"end_month" json:"end_month"`
	EndYear          int                `bson:"end_year" json:"end_year"`
	CurrentlyWorking bool               `bson:"currently_working" json:"currently_working"`
	Summary          string             `bson:"summary" json:"summary"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	ProjectName string             `bson:"project_name" json:"project_name"`
	Role        string             `bson:"role" json:"role"`
	ProjectLink string             `bson:"project_link" json:"project_link"`
	Summary     string             `bson:"summary" json:"summary"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type Certification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Name           string             `bson:"name" json:"name"`
	IssuingOrg     string             `bson:"issuing_org" json:"issuing_org"`
	CredentialID   string             `bson:"credential_id" json:"credential_id"`
	CredentialLink string             `bson:"credential_link" json:"credential_link"`
	IssueYear      int                `bson:"issue_year" json:"issue_year"`
	ExpiryYear     *int               `bson:"expiry_year,omitempty" json:"expiry_year"`
	NoExpiry       bool               `bson:"no_expiry" json:"no_expiry"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// AggregateProfile is the single-page-load shape: the core profile plus all
// seven sections. Empty sections come back as their zero shapes, never as an
// error.
type AggregateProfile struct {
	Profile        Profile         `json:"profile"`
	About          About           `json:"about"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Portfolio      Portfolio       `json:"portfolio"`
	Projects       []Project       `json:"projects"`
	Skills         Skills          `json:"skills"`
	Certifications []Certification `json:"certifications"`
}
