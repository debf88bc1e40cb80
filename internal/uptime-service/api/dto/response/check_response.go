package response

type Response struct {
	Message string `json:"message"`
}

type ServerCheckResponse struct {
	Name        string `json:"name"`
	Online      bool   `json:"online"`
	PlayerCount int    `json:"player_count"`
	MethodUsed  string `json:"method_used"`
}

type CheckSummaryResponse struct {
	CycleID   string                `json:"cycle_id"`
	Checked   int                   `json:"checked"`
	Online    int                   `json:"online"`
	Offline   int                   `json:"offline"`
	Skipped   int                   `json:"skipped"`
	Threshold int                   `json:"threshold"`
	Servers   []ServerCheckResponse `json:"servers"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}
