package dto

// AdviceRequest is the JSON body accepted by POST /api/farmer/advice.
//
// Crop is mandatory; Location and Season refine the prompt sent to the
// completion API and are free-form.
type AdviceRequest struct {
	Crop     string `json:"crop" binding:"required" example:"wheat"`
	Location string `json:"location,omitempty" example:"Punjab"`
	Season   string `json:"season,omitempty" example:"rabi"`
}

// TimingRequest is the JSON body accepted by POST /api/buyer/timing.
type TimingRequest struct {
	Crop     string `json:"crop" binding:"required" example:"maize"`
	Quantity string `json:"quantity,omitempty" example:"20 tons"`
}

// AdviceResponse is the envelope returned by the advice and timing
// endpoints.
//
// Fields match the API contract and may differ from internal domain
// models. This keeps the API surface decoupled from business logic.
type AdviceResponse struct {
	Crop        string `json:"crop" example:"wheat"`
	Advice      string `json:"advice"`
	Source      string `json:"source" example:"llm"`
	GeneratedAt string `json:"generated_at" example:"2026-08-30T12:00:00Z"`
}
