package entities

// SubmissionStatus is the lifecycle status of an intake submission.
type SubmissionStatus string

const (
	SubmissionStatusInProgress SubmissionStatus = "in_progress"
	SubmissionStatusSubmitted  SubmissionStatus = "submitted"
	SubmissionStatusArchived   SubmissionStatus = "archived"
)

// Finalized reports whether the wizard may no longer write to the submission.
func (s SubmissionStatus) Finalized() bool {
	return s == SubmissionStatusSubmitted || s == SubmissionStatusArchived
}

// Grouping attributes holding fields without a dedicated column.
const (
	GroupPropertyData       = "property_data"
	GroupUsageIntent        = "usage_intent"
	GroupFinancialBreakdown = "financial_breakdown"
)

// Submission is the persisted record of a customer's multi-step intake answers.
//
// Storage model:
//   - PK: id
//   - unique: access_code (immutable once set)
//
// The grouping attributes are open mappings; the wizard fills them either
// through individually named fields or by sending the nested object directly.
type Submission struct {
	ID          string           `json:"id"`
	Status      SubmissionStatus `json:"status,omitempty"`
	CurrentStep int              `json:"current_step,omitempty"`
	AccessCode  string           `json:"access_code,omitempty"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	PropertyAddress string `json:"property_address,omitempty"`
	PropertyCity    string `json:"property_city,omitempty"`
	PropertyState   string `json:"property_state,omitempty"`
	PropertyZip     string `json:"property_zip,omitempty"`

	VisionStatement string `json:"vision_statement,omitempty"`
	BudgetRange     string `json:"budget_range,omitempty"`
	Timeline        string `json:"timeline,omitempty"`

	HouseholdSize int  `json:"household_size,omitempty"`
	HasChildren   bool `json:"has_children,omitempty"`
	HasPets       bool `json:"has_pets,omitempty"`

	PropertyData       map[string]any `json:"property_data,omitempty"`
	UsageIntent        map[string]any `json:"usage_intent,omitempty"`
	FinancialBreakdown map[string]any `json:"financial_breakdown,omitempty"`

	DesiredFeatures    []string         `json:"desired_features,omitempty"`
	MustHaveFeatures   []string         `json:"must_have_features,omitempty"`
	NiceToHaveFeatures []string         `json:"nice_to_have_features,omitempty"`
	InspirationImages  []string         `json:"inspiration_images,omitempty"`
	MaterialSelections []map[string]any `json:"material_selections,omitempty"`
	Consents           []string         `json:"consents,omitempty"`

	SubmittedDate string `json:"submitted_date,omitempty"`
	CreatedDate   string `json:"created_date,omitempty"`
	UpdatedDate   string `json:"updated_date,omitempty"`
}
