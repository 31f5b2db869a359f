package models

// BeachSearchParams represents the arguments of the search_beaches tool
type BeachSearchParams struct {
	Region      string `json:"region"`
	BBQRequired bool   `json:"bbq_required"`
}

// ForecastParams represents the arguments of the get_forecast tool
type ForecastParams struct {
	Location string `json:"location"`
	Date     string `json:"date"`
}

// ToolCall mirrors the function-call payload handed back by the model
type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}
