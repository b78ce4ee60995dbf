package model

type ServiceInstance struct {
	ID          string `json:"id"`
	ServiceName string `json:"service_name"`
	BaseURL     string `json:"base_url"`
}
