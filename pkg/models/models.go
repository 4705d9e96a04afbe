package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Account struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}

// JobPosting is an immutable listing record. Deadline is a calendar day in
// YYYY-MM-DD form; Created is unix milliseconds assigned at insert time.
type JobPosting struct {
	ID           string `json:"id" db:"id"`
	Company      string `json:"company" db:"company"`
	Position     string `json:"position" db:"position"`
	Description  string `json:"description" db:"description"`
	WorkLocation string `json:"workLocation" db:"work_location"`
	Salary       string `json:"salary" db:"salary"`
	WorkType     string `json:"workType" db:"work_type"`
	PosterEmail  string `json:"posterEmail" db:"poster_email"`
	Deadline     string `json:"deadline" db:"deadline"`
	CreatedBy    string `json:"createdBy" db:"created_by"`
	Created      int64  `json:"created" db:"created"`
}

type Contact struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
	Institution string `json:"institution,omitempty"`
}

type Experience struct {
	Role        string `json:"role,omitempty"`
	Institution string `json:"institution,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// CVRecord is a stored résumé document plus its rendered PDF. The service
// treats the résumé fields as opaque: whatever was saved comes back verbatim
// from the latest query.
type CVRecord struct {
	ID                     string       `json:"id"`
	UserID                 string       `json:"userId"`
	ProfilePic             string       `json:"profilePic,omitempty"`
	Name                   string       `json:"name,omitempty"`
	Title                  string       `json:"title,omitempty"`
	ProfileSummaryHeading  string       `json:"profileSummaryHeading,omitempty"`
	ProfileSummary         string       `json:"profileSummary,omitempty"`
	ContactHeading         string       `json:"contactHeading,omitempty"`
	Contact                Contact      `json:"contact,omitzero"`
	KeySkillsHeading       string       `json:"keySkillsHeading,omitempty"`
	KeySkills              []string     `json:"keySkills,omitempty"`
	TechnicalSkillsHeading string       `json:"technicalSkillsHeading,omitempty"`
	TechnicalSkills        []string     `json:"technicalSkills,omitempty"`
	EducationHeading       string       `json:"educationHeading,omitempty"`
	Education              []Education  `json:"education,omitempty"`
	ExperienceHeading      string       `json:"experienceHeading,omitempty"`
	Experience             []Experience `json:"experience,omitempty"`
	PDFBase64              string       `json:"pdfBase64,omitempty"`
	Created                int64        `json:"created"`
}
