package entity

import (
	"strings"

	"growguard/internal/errors"
)

var (
	// ErrReportIDAssigned is returned when a durable report would receive a different identifier.
	ErrReportIDAssigned = errors.New("report identifier already assigned")
	// ErrEmptyReportID is returned when an empty identifier is assigned.
	ErrEmptyReportID = errors.New("report identifier is empty")
)

// Report is a diagnosis result. Without an ID it is transient and exists only in the
// current view; once the backend assigns an ID it is durable and the ID never changes.
type Report struct {
	ID              string   `json:"id,omitempty"`
	Image           string   `json:"image"`
	ImagePath       string   `json:"imagePath,omitempty"`
	IsHealthy       bool     `json:"isHealthy"`
	DiseaseName     string   `json:"diseaseName"`
	Confidence      float64  `json:"confidence"`
	DiagnosisPoints []string `json:"diagnosisPoints"`
	TipsPoints      []string `json:"tipsPoints"`
	Date            string   `json:"date"`
}

// Durable reports whether the backend has assigned an identifier.
func (r *Report) Durable() bool {
	return r != nil && r.ID != ""
}

// AssignID sets the backend identifier. Reassigning the same ID is a no-op.
func (r *Report) AssignID(id string) error {
	if id == "" {
		return errors.WithStack(ErrEmptyReportID)
	}
	if r.ID != "" && r.ID != id {
		return errors.Wrapf(ErrReportIDAssigned, "report %s", r.ID)
	}
	r.ID = id

	return nil
}

// DiseaseKey is the backend key of the disease, e.g. "Tomato Late Blight" -> "tomato_late_blight".
func (r *Report) DiseaseKey() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(r.DiseaseName)), " ", "_")
}

// ImageFilename returns the text after the last '/' of the image reference.
func (r *Report) ImageFilename() string {
	return ImageFilename(r.Image)
}

// Clone returns a deep copy.
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	c := *r
	c.DiagnosisPoints = append([]string(nil), r.DiagnosisPoints...)
	c.TipsPoints = append([]string(nil), r.TipsPoints...)

	return &c
}

// ImageFilename returns the text after the last '/' of an image path or URL.
func ImageFilename(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}

	return path
}

// Image is one picture submitted for diagnosis.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}
