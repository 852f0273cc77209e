// Package domain defines the types and interfaces for the intake service
package domain

// Flow identifies which conversation a chat is in
type Flow string

// Conversation flows
const (
	FlowNone     Flow = ""
	FlowRegister Flow = "register"
	FlowPlan     Flow = "plan"
)

// Step identifies the question currently pending in a flow
type Step string

// Registration steps
const (
	StepName    Step = "name"
	StepCountry Step = "country"
	StepAge     Step = "age"
	StepTags    Step = "tags"
)

// Plan steps
const (
	StepPickModel    Step = "pick_model"
	StepPickType     Step = "pick_type"
	StepPickCategory Step = "pick_category"
)

// Session is the per chat conversation state. Scratch fields only live
// while a flow is active and are wiped on commit or cancel.
type Session struct {
	Flow Flow
	Step Step

	// register scratch
	Name    string
	Country string
	AgeRaw  string

	// plan scratch
	PlanModelID string
	PlanType    string
}
