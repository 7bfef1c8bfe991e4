package dto

import "levelup/utils"

type HealthResponse struct {
	Status   string          `json:"status"`
	Database string          `json:"database"`
	Host     utils.HostStats `json:"host"`
}
