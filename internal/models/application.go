package models

// Application links one candidate submission to one job. The applications
// table is the single authoritative store; a job's applicant list is always a
// query over it, never an embedded copy.
type Application struct {
	BaseModel
	JobID string `gorm:"not null;index" json:"job_id"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"-"`

	// Nullable: public submissions are attributable by name+email only.
	CandidateID *string `gorm:"index" json:"candidate_id,omitempty"`
	Candidate   *User   `gorm:"foreignKey:CandidateID" json:"-"`

	Name        string `json:"name"`
	Email       string `json:"email"`
	CoverLetter string `json:"cover_letter,omitempty"`

	// Resume metadata; Path points into the storage backend.
	ResumeName string `json:"resume_name,omitempty"`
	ResumeMime string `json:"resume_mime,omitempty"`
	ResumeSize int64  `json:"resume_size,omitempty"`
	ResumePath string `json:"resume_path,omitempty"`

	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
