package domain

import "time"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectReview     ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// projectTransitions defines the allowed state machine transitions.
// Cancellation is reachable from any non-terminal state.
var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectPlanning:   {ProjectInProgress, ProjectCancelled},
	ProjectInProgress: {ProjectReview, ProjectCancelled},
	ProjectReview:     {ProjectInProgress, ProjectCompleted, ProjectCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Project is a unit of agency work owned by exactly one client.
type Project struct {
	ID          string        `json:"id" bson:"_id"`
	ClientID    string        `json:"client_id" bson:"client_id"`
	ClientName  string        `json:"client_name" bson:"client_name"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Status      ProjectStatus `json:"status" bson:"status"`
	Budget      float64       `json:"budget" bson:"budget"`
	Deadline    time.Time     `json:"deadline" bson:"deadline"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
