package models

import "gorm.io/datatypes"

// CandidateProfile holds the candidate-facing profile fields. Skills and
// education keep their document shape as JSONB.
type CandidateProfile struct {
	BaseModel
	UserID     string         `gorm:"not null;uniqueIndex" json:"user_id"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`    // []string
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education"` // []EducationEntry
	ResumePath string         `json:"resume"`                      // storage path of the uploaded resume
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}
