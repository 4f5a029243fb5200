package dto

type HealthResponse struct {
	Status    string `json:"status"`
	Cache     string `json:"cache"`
	Database  string `json:"database"`
	WSClients int    `json:"wsClients"`
}
