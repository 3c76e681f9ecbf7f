package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AdviceResponse struct {
	Query     string `json:"query"`
	Advice    string `json:"advice"`
	Timestamp string `json:"timestamp"`
}

type GuidanceResponse struct {
	Query     string `json:"query"`
	Guidance  string `json:"guidance"`
	Timestamp string `json:"timestamp"`
}

type AnalysisResponse struct {
	ProjectID string `json:"project_id"`
	Query     string `json:"query"`
	Analysis  string `json:"analysis"`
	Timestamp string `json:"timestamp"`
}
