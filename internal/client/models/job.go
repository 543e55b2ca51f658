package models

import "time"

// Job type and experience level enums as published by the API.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"

	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

// Job is a posting as returned by the API listing and detail endpoints.
type Job struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	CompanyName         string    `json:"company_name"`
	CategoryName        string    `json:"category_name"`
	JobType             string    `json:"job_type"`
	ExperienceLevel     string    `json:"experience_level"`
	Location            string    `json:"location"`
	SalaryMin           string    `json:"salary_min"`
	SalaryMax           string    `json:"salary_max"`
	IsActive            bool      `json:"is_active"`
	IsExpired           bool      `json:"is_expired"`
	ApplicationsCount   int       `json:"applications_count"`
	CreatedAt           time.Time `json:"created_at"`
	ApplicationDeadline string    `json:"application_deadline,omitempty"`
}

// JobFilter narrows a job search. Zero-value fields are left out of the
// query string.
type JobFilter struct {
	Search          string
	JobType         string
	ExperienceLevel string
	Location        string
}

// JobPosting is the employer-side payload for creating a posting.
type JobPosting struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	JobType         string `json:"job_type" validate:"required,oneof=full_time part_time contract internship remote"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=entry mid senior executive"`
	Location        string `json:"location" validate:"required"`
	SalaryMin       string `json:"salary_min,omitempty"`
	SalaryMax       string `json:"salary_max,omitempty"`
}

// ApplicationForm is the job-seeker payload for applying to a posting.
type ApplicationForm struct {
	CoverLetter string `json:"cover_letter" validate:"required"`
}

// JobApplication is an application record, visible to the applicant and to
// the posting employer.
type JobApplication struct {
	ID            int64     `json:"id"`
	JobTitle      string    `json:"job_title"`
	CompanyName   string    `json:"company_name"`
	ApplicantName string    `json:"applicant_name"`
	CoverLetter   string    `json:"cover_letter"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// SavedJob is a bookmark entry with the full posting embedded.
type SavedJob struct {
	ID         int64     `json:"id"`
	JobDetails Job       `json:"job_details"`
	SavedAt    time.Time `json:"saved_at"`
}
