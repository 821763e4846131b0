package model

import (
	"time"

	"github.com/google/uuid"
)

// AttackType is the coarse category a KDD record is assigned to.
type AttackType string

const (
	AttackDOS    AttackType = "DOS"
	AttackProbe  AttackType = "Probe"
	AttackR2L    AttackType = "R2L"
	AttackU2R    AttackType = "U2R"
	AttackNormal AttackType = "normal"
)

// AttackTypes returns the four attack categories in priority order.
func AttackTypes() []AttackType {
	return []AttackType{AttackDOS, AttackProbe, AttackR2L, AttackU2R}
}

// Valid reports whether t belongs to the closed set of categories.
func (t AttackType) Valid() bool {
	switch t {
	case AttackDOS, AttackProbe, AttackR2L, AttackU2R, AttackNormal:
		return true
	}
	return false
}

// IsAttack reports whether t is one of the non-normal categories.
func (t AttackType) IsAttack() bool {
	return t != AttackNormal && t.Valid()
}

// DetectionResult is one classified KDD connection record.
type DetectionResult struct {
	Timestamp  string     `json:"timestamp"`
	Protocol   string     `json:"protocol"`
	Flag       string     `json:"flag"`
	AttackType AttackType `json:"attackType"`
	Confidence float64    `json:"confidence"`
	// RawLabel is the trailing field of the input line before category mapping.
	RawLabel string `json:"rawLabel,omitempty"`
}

// DetectionBatch holds every record classified from one input text plus the
// aggregate counts derived from them.
type DetectionBatch struct {
	ID              uuid.UUID          `json:"id"`
	CreatedAt       time.Time          `json:"createdAt"`
	Results         []DetectionResult  `json:"results"`
	TotalPackets    int                `json:"totalPackets"`
	AttacksDetected int                `json:"attacksDetected"`
	ProcessingTime  string             `json:"processingTime"`
	ByAttackType    map[AttackType]int `json:"byAttackType"`
}

// Recommendation is a canned remediation entry for one attack category.
type Recommendation struct {
	ID         int        `json:"id"`
	AttackType AttackType `json:"attackType"`
	Text       string     `json:"recommendation"`
}
